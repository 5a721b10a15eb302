package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/repositories"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

// Error variables
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUserData = errors.New("invalid user data")
)

// UserStore defines the persistence operations admin user management needs.
type UserStore interface {
	Save(ctx context.Context, user models.UserDB) (*models.UserDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	List(ctx context.Context, search, role string) ([]models.UserDB, error)
	Update(ctx context.Context, user models.UserDB) (*models.UserDB, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserService exposes admin-side account management. Accounts created
// here are verified immediately; only self-registration goes through
// the OTP flow.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Create provisions an account with an explicit role, pre-verified.
func (svc *UserService) Create(ctx context.Context, user models.UserDB, password string) (*models.UserDB, error) {
	if strings.TrimSpace(user.Username) == "" || strings.TrimSpace(user.Email) == "" || password == "" {
		return nil, ErrInvalidUserData
	}
	if user.Role != models.RoleAdmin && user.Role != models.RoleUser {
		return nil, ErrInvalidUserData
	}

	exists, err := svc.users.ExistsByUsernameOrEmail(ctx, user.Username, user.Email)
	if err != nil {
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
	user.PasswordHash = string(hashedPassword)
	now := time.Now().UTC()
	user.EmailVerified = true
	user.EmailVerifiedAt = &now

	saved, err := svc.users.Save(ctx, user)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	return saved, nil
}

func (svc *UserService) Get(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	user, err := svc.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (svc *UserService) List(ctx context.Context, search, role string) ([]models.UserDB, error) {
	return svc.users.List(ctx, search, role)
}

// Update overwrites profile fields. Username, password hash and the
// verification flag are preserved from the stored row.
func (svc *UserService) Update(ctx context.Context, id uuid.UUID, user models.UserDB) (*models.UserDB, error) {
	current, err := svc.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.Role != "" && user.Role != models.RoleAdmin && user.Role != models.RoleUser {
		return nil, ErrInvalidUserData
	}

	current.FirstName = user.FirstName
	current.LastName = user.LastName
	if user.Email != "" {
		current.Email = user.Email
	}
	if user.Role != "" {
		current.Role = user.Role
	}

	updated, err := svc.users.Update(ctx, *current)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		if repositories.IsUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	return updated, nil
}

// ResetPassword sets a new password without checking the old one.
func (svc *UserService) ResetPassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	if newPassword == "" {
		return ErrPasswordRequired
	}
	if _, err := svc.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return svc.users.UpdatePasswordHash(ctx, id, string(hashedPassword))
}

func (svc *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := svc.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return svc.users.Delete(ctx, id)
}
