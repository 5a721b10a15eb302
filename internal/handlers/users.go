package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/services"
)

// UserManager defines the interface that the service must implement.
type UserManager interface {
	Create(ctx context.Context, user models.UserDB, password string) (*models.UserDB, error)
	Get(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	List(ctx context.Context, search, role string) ([]models.UserDB, error)
	Update(ctx context.Context, id uuid.UUID, user models.UserDB) (*models.UserDB, error)
	ResetPassword(ctx context.Context, id uuid.UUID, newPassword string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateUserRequest represents the JSON body for admin user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
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

	// Role, ADMIN or USER
	// required: true
	Role string `json:"role"`
}

// NewCreateUserHandler returns an HTTP handler for admin user creation.
// Accounts created here are verified immediately.
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User"
// @Success 201 {object} models.UserDB "Created user"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already exists"
// @Router /users [post]
// @Security BearerAuth
func NewCreateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := svc.Create(r.Context(), models.UserDB{
			Username:  req.Username,
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Role:      req.Role,
		}, req.Password)
		if err != nil {
			writeUserError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, user)
	}
}

// NewListUsersHandler returns an HTTP handler for listing users with
// optional search and role filters.
// @Summary List users
// @Tags users
// @Produce json
// @Param search query string false "Matches username, email and names"
// @Param role query string false "Exact role filter"
// @Success 200 {array} models.UserDB "Users"
// @Router /users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context(), r.URL.Query().Get("search"), r.URL.Query().Get("role"))
		if err != nil {
			logger.Log.Errorw("failed to list users", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// NewGetUserHandler returns an HTTP handler for a single user.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.UserDB "User"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			writeUserError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// UpdateUserRequest represents the JSON body for a profile update
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// Email; omitted keeps the current one
	Email string `json:"email"`

	// Given name
	FirstName string `json:"first_name"`

	// Family name
	LastName string `json:"last_name"`

	// Role; omitted keeps the current one
	Role string `json:"role"`
}

// NewUpdateUserHandler returns an HTTP handler for updating a user's
// profile and role.
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param updateUserRequest body handlers.UpdateUserRequest true "Update request"
// @Success 200 {object} models.UserDB "Updated user"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [put]
// @Security BearerAuth
func NewUpdateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := svc.Update(r.Context(), id, models.UserDB{
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Role:      req.Role,
		})
		if err != nil {
			writeUserError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// ResetPasswordRequest represents the JSON body for an admin password reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// New password
	// required: true
	NewPassword string `json:"new_password"`
}

// NewResetUserPasswordHandler returns an HTTP handler for the admin
// password reset. The current password is not required.
// @Summary Reset a user's password
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Reset request"
// @Success 200 {object} handlers.MessageResponse "Password reset"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id}/reset-password [put]
// @Security BearerAuth
func NewResetUserPasswordHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		var req ResetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := svc.ResetPassword(r.Context(), id, req.NewPassword); err != nil {
			writeUserError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password reset successfully"})
	}
}

// NewDeleteUserHandler returns an HTTP handler for deleting users.
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} handlers.MessageResponse "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeUserError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "User deleted successfully"})
	}
}

func writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrUserAlreadyExists):
		writeError(w, http.StatusConflict, "Username or email already exists")
	case errors.Is(err, services.ErrInvalidUserData), errors.Is(err, services.ErrPasswordRequired):
		writeError(w, http.StatusBadRequest, "Invalid user data")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
