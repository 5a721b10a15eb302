package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/handlers"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/jwt"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/middlewares"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/repositories"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title event-management-system API
// @version 1.0.0
// @description Backend service for managing events, registrations and tickets
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExpSecond,
		otpCleanupSecond, cacheTTLSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExpSecond,
		otpCleanupSecond, cacheTTLSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, JWT and scheduling configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers []string, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	otpCleanupSecond, cacheTTLSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "events")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config
	kafkaBrokers = strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	kafkaTopic = getEnv("KAFKA_NOTIFICATION_TOPIC", "notification-topic")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	// Background jobs
	if otpCleanupSecond, err = strconv.Atoi(getEnv("OTP_CLEANUP_SECOND", "3600")); err != nil {
		return
	}
	if cacheTTLSecond, err = strconv.Atoi(getEnv("EVENT_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer and HTTP
// server. It wires the route tiers, starts the OTP cleanup job and
// handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers []string, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	otpCleanupSecond, cacheTTLSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for outgoing email notifications
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaBrokers...),
		Topic:    kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}

	// Initialize JWT service
	tokener := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	registrationRepo := repositories.NewRegistrationRepository(db)
	ticketRepo := repositories.NewTicketRepository(db)
	otpRepo := repositories.NewEmailOtpRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	eventCache := repositories.NewEventCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)

	// Initialize services
	notifier := services.NewEmailNotifier(kafkaWriter, notificationRepo)
	defer notifier.Close()

	otpService := services.NewOtpService(otpRepo)
	authService := services.NewAuthService(userRepo, otpService, tokener, notifier)
	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	eventService := services.NewEventService(eventRepo, categoryRepo, registrationRepo, eventCache)
	registrationService := services.NewRegistrationService(registrationRepo, userRepo, eventRepo, notifier)
	ticketService := services.NewTicketService(ticketRepo, registrationRepo)
	summaryService := services.NewSummaryService(userRepo, eventRepo, categoryRepo)

	// Expired verification codes are swept in the background.
	cleanupCtx, stopCleanup := context.WithCancel(ctx)
	defer stopCleanup()
	go otpService.RunCleanup(cleanupCtx, time.Duration(otpCleanupSecond)*time.Second)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authenticate := middlewares.AuthMiddleware(tokener)
	maybeAuthenticate := middlewares.OptionalAuthMiddleware(tokener)
	requireAdmin := middlewares.RequireAdmin()

	r.Get("/health", handlers.NewHealthHandler(db))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", handlers.NewRegisterHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService))
		r.Post("/auth/verify-email", handlers.NewVerifyEmailHandler(authService))
		r.Post("/auth/resend-otp", handlers.NewResendOtpHandler(authService))
		r.Get("/categories", handlers.NewListCategoriesHandler(categoryService))
		r.Get("/categories/{id}", handlers.NewGetCategoryHandler(categoryService))

		// Event reads are public; a token enriches them with the
		// caller's registration flag.
		r.Group(func(r chi.Router) {
			r.Use(maybeAuthenticate)
			r.Get("/events", handlers.NewListEventsHandler(eventService, registrationService))
			r.Get("/events/{id}", handlers.NewGetEventHandler(eventService, registrationService))
		})

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Post("/auth/change-password", handlers.NewChangePasswordHandler(authService))

			r.Post("/registrations", handlers.NewCreateRegistrationHandler(registrationService))
			r.Get("/registrations", handlers.NewListRegistrationsHandler(registrationService))
			r.Get("/registrations/my", handlers.NewListMyRegistrationsHandler(registrationService))
			r.Get("/registrations/check/{eventId}", handlers.NewCheckRegistrationHandler(registrationService))
			r.Get("/registrations/event/{eventId}", handlers.NewListRegistrationsByEventHandler(registrationService))
			r.Get("/registrations/{id}", handlers.NewGetRegistrationHandler(registrationService))
			r.Put("/registrations/{id}", handlers.NewUpdateRegistrationHandler(registrationService))
			r.Put("/registrations/{id}/cancel", handlers.NewCancelRegistrationHandler(registrationService))

			r.Post("/tickets/generate/{registrationId}", handlers.NewGenerateTicketHandler(ticketService))
			r.Get("/tickets", handlers.NewListTicketsHandler(ticketService))
			r.Get("/tickets/qr/{code}", handlers.NewGetTicketByQrHandler(ticketService))
			r.Get("/tickets/registration/{registrationId}", handlers.NewGetTicketByRegistrationHandler(ticketService))
			r.Get("/tickets/{id}", handlers.NewGetTicketHandler(ticketService))
			r.Put("/tickets/{id}/invalidate", handlers.NewInvalidateTicketHandler(ticketService))

			r.Get("/summary", handlers.NewSummaryHandler(summaryService))
		})

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(authenticate, requireAdmin)

			r.Post("/events", handlers.NewCreateEventHandler(eventService))
			r.Put("/events/{id}", handlers.NewUpdateEventHandler(eventService))
			r.Put("/events/{id}/category", handlers.NewAssignEventCategoryHandler(eventService))
			r.Delete("/events/{id}", handlers.NewDeleteEventHandler(eventService))

			r.Post("/categories", handlers.NewCreateCategoryHandler(categoryService))
			r.Put("/categories/{id}", handlers.NewUpdateCategoryHandler(categoryService))
			r.Delete("/categories/{id}", handlers.NewDeleteCategoryHandler(categoryService))

			r.Post("/users", handlers.NewCreateUserHandler(userService))
			r.Get("/users", handlers.NewListUsersHandler(userService))
			r.Get("/users/{id}", handlers.NewGetUserHandler(userService))
			r.Put("/users/{id}", handlers.NewUpdateUserHandler(userService))
			r.Put("/users/{id}/reset-password", handlers.NewResetUserPasswordHandler(userService))
			r.Delete("/users/{id}", handlers.NewDeleteUserHandler(userService))
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
