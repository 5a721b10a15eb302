package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/repositories"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmailNotVerified   = errors.New("email address is not verified")
	ErrInvalidOtp         = errors.New("invalid or expired OTP code")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordUnchanged  = errors.New("new password must be different from current password")
)

// AuthUserStore defines the user persistence operations auth needs.
type AuthUserStore interface {
	Save(ctx context.Context, user models.UserDB) (*models.UserDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// OtpManager issues and verifies email verification codes.
type OtpManager interface {
	Generate(ctx context.Context, email string) (string, error)
	Verify(ctx context.Context, email, code string) (bool, error)
}

// TokenGenerator defines an interface for generating JWT tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, role string) (string, error)
}

// OtpMailer dispatches a verification-code email, best-effort.
type OtpMailer interface {
	OtpRequested(ctx context.Context, email, code, firstName string)
}

// AuthService handles registration, login and email verification.
// Accounts start unverified; a successful OTP check flips the user's
// verified flag and unlocks login.
type AuthService struct {
	users  AuthUserStore
	otp    OtpManager
	jwt    TokenGenerator
	mailer OtpMailer
}

func NewAuthService(users AuthUserStore, otp OtpManager, jwt TokenGenerator, mailer OtpMailer) *AuthService {
	return &AuthService{
		users:  users,
		otp:    otp,
		jwt:    jwt,
		mailer: mailer,
	}
}

// Register creates a new unverified USER account, issues an OTP to its
// email and returns the stored user.
func (svc *AuthService) Register(ctx context.Context, username, password, email, firstName, lastName string) (*models.UserDB, error) {
	if password == "" {
		return nil, ErrPasswordRequired
	}

	exists, err := svc.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.users.Save(ctx, models.UserDB{
		Username:      username,
		Email:         email,
		FirstName:     firstName,
		LastName:      lastName,
		Role:          models.RoleUser,
		PasswordHash:  string(hashedPassword),
		EmailVerified: false,
	})
	if err != nil {
		// Concurrent registration with the same username/email.
		if repositories.IsUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	code, err := svc.otp.Generate(ctx, user.Email)
	if err != nil {
		// The account exists; the user can request a resend.
		logger.Log.Errorw("failed to generate otp after registration", "email", user.Email, "err", err)
	} else {
		svc.mailer.OtpRequested(ctx, user.Email, code, user.FirstName)
	}

	return user, nil
}

// Login authenticates a verified user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, *models.UserDB, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return "", nil, ErrEmailNotVerified
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// VerifyEmail consumes an OTP and marks the account's email verified.
// Already-verified accounts succeed without touching the OTP store.
func (svc *AuthService) VerifyEmail(ctx context.Context, email, code string) error {
	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Same signal as a wrong code: no account enumeration.
			return ErrInvalidOtp
		}
		return err
	}
	if user.EmailVerified {
		return nil
	}

	ok, err := svc.otp.Verify(ctx, email, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidOtp
	}

	return svc.users.MarkEmailVerified(ctx, user.ID)
}

// ResendOtp issues a fresh code for an existing unverified account.
func (svc *AuthService) ResendOtp(ctx context.Context, email string) error {
	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	code, err := svc.otp.Generate(ctx, email)
	if err != nil {
		return err
	}
	svc.mailer.OtpRequested(ctx, email, code, user.FirstName)
	return nil
}

// ChangePassword replaces the caller's password after checking the
// current one.
func (svc *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return ErrPasswordRequired
	}
	if currentPassword == newPassword {
		return ErrPasswordUnchanged
	}

	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return svc.users.UpdatePasswordHash(ctx, userID, string(hashedPassword))
}
