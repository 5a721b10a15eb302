package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/middlewares"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, email, firstName, lastName string) (*models.UserDB, error)
}

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, *models.UserDB, error)
}

// EmailVerifier defines the interface that the service must implement.
type EmailVerifier interface {
	VerifyEmail(ctx context.Context, email, code string) error
	ResendOtp(ctx context.Context, email string) error
}

// PasswordChanger defines the interface that the service must implement.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	Username string `json:"username"`

	// Password
	// required: true
	Password string `json:"password"`

	// Email
	// required: true
	Email string `json:"email"`

	// Given name
	FirstName string `json:"first_name"`

	// Family name
	LastName string `json:"last_name"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully, please verify your email
	Message string `json:"message"`

	// The created user
	User *models.UserDB `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new unverified account, hashes the password and emails a verification code.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already exists"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Username == "" || req.Password == "" || req.Email == "" {
			writeError(w, http.StatusBadRequest, "Username, password and email are required")
			return
		}

		user, err := svc.Register(r.Context(), req.Username, req.Password, req.Email, req.FirstName, req.LastName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "Username or email already exists")
			case errors.Is(err, services.ErrPasswordRequired):
				writeError(w, http.StatusBadRequest, "Password is required")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "User registered successfully, please verify your email",
			User:    user,
		})
	}
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	Username string `json:"username"`

	// Password
	// required: true
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT access token
	Token string `json:"token"`

	// The authenticated user
	User *models.UserDB `json:"user"`
}

// NewLoginHandler returns an HTTP handler for login.
// @Summary Authenticate a user
// @Description Checks credentials and returns a JWT token. Unverified emails are rejected.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Authenticated"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Failure 403 {object} handlers.ErrorResponse "Email not verified"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, user, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid username or password")
			case errors.Is(err, services.ErrEmailNotVerified):
				writeError(w, http.StatusForbidden, "Email address is not verified")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token, User: user})
	}
}

// VerifyEmailRequest represents the JSON body for email verification
// swagger:model VerifyEmailRequest
type VerifyEmailRequest struct {
	// Email
	// required: true
	Email string `json:"email"`

	// Six-digit verification code
	// required: true
	Code string `json:"code"`
}

// NewVerifyEmailHandler returns an HTTP handler for OTP verification.
// @Summary Verify an email address
// @Description Consumes a verification code and marks the account's email verified.
// @Tags auth
// @Accept json
// @Produce json
// @Param verifyEmailRequest body handlers.VerifyEmailRequest true "Verification request"
// @Success 200 {object} handlers.MessageResponse "Email verified"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired OTP code"
// @Router /auth/verify-email [post]
func NewVerifyEmailHandler(svc EmailVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyEmailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := svc.VerifyEmail(r.Context(), req.Email, req.Code); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidOtp):
				writeError(w, http.StatusBadRequest, "Invalid or expired OTP code")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Email verified successfully"})
	}
}

// ResendOtpRequest represents the JSON body for requesting a fresh code
// swagger:model ResendOtpRequest
type ResendOtpRequest struct {
	// Email
	// required: true
	Email string `json:"email"`
}

// NewResendOtpHandler returns an HTTP handler for re-sending a code.
// @Summary Resend the verification code
// @Tags auth
// @Accept json
// @Produce json
// @Param resendOtpRequest body handlers.ResendOtpRequest true "Resend request"
// @Success 200 {object} handlers.MessageResponse "Code sent"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /auth/resend-otp [post]
func NewResendOtpHandler(svc EmailVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResendOtpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := svc.ResendOtp(r.Context(), req.Email); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Verification code sent"})
	}
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	// required: true
	CurrentPassword string `json:"current_password"`

	// New password
	// required: true
	NewPassword string `json:"new_password"`
}

// NewChangePasswordHandler returns an HTTP handler for changing the
// caller's password.
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "Password change request"
// @Success 200 {object} handlers.MessageResponse "Password changed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Wrong current password"
// @Router /auth/change-password [post]
// @Security BearerAuth
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := svc.ChangePassword(r.Context(), claims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Current password is incorrect")
			case errors.Is(err, services.ErrPasswordRequired), errors.Is(err, services.ErrPasswordUnchanged):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password changed successfully"})
	}
}
