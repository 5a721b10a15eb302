package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/repositories"
)

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockUserStore(ctrl)
	svc := NewUserService(store)

	store.EXPECT().ExistsByUsernameOrEmail(ctx, "bob", "bob@example.com").Return(false, nil)
	store.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.UserDB) (*models.UserDB, error) {
			// Admin-created accounts skip the OTP flow entirely.
			assert.True(t, u.EmailVerified)
			assert.NotNil(t, u.EmailVerifiedAt)
			assert.WithinDuration(t, time.Now().UTC(), *u.EmailVerifiedAt, time.Minute)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
			u.ID = uuid.New()
			return &u, nil
		})

	user, err := svc.Create(ctx, models.UserDB{
		Username: "bob",
		Email:    "bob@example.com",
		Role:     models.RoleAdmin,
	}, "secret123")

	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestUserService_Create_Invalid(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewUserService(NewMockUserStore(ctrl))

	_, err := svc.Create(ctx, models.UserDB{Username: "", Email: "x@y.z", Role: models.RoleUser}, "pw")
	assert.ErrorIs(t, err, ErrInvalidUserData)

	_, err = svc.Create(ctx, models.UserDB{Username: "bob", Email: "x@y.z", Role: "SUPERUSER"}, "pw")
	assert.ErrorIs(t, err, ErrInvalidUserData)
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockUserStore(ctrl)
	svc := NewUserService(store)

	store.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{
		ID:            userID,
		Username:      "bob",
		Email:         "bob@example.com",
		Role:          models.RoleUser,
		PasswordHash:  "hash",
		EmailVerified: true,
	}, nil)
	store.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.UserDB) (*models.UserDB, error) {
			// Credentials and verification survive profile edits.
			assert.Equal(t, "bob", u.Username)
			assert.Equal(t, "hash", u.PasswordHash)
			assert.True(t, u.EmailVerified)
			assert.Equal(t, "Robert", u.FirstName)
			assert.Equal(t, models.RoleAdmin, u.Role)
			return &u, nil
		})

	_, err := svc.Update(ctx, userID, models.UserDB{FirstName: "Robert", Role: models.RoleAdmin})
	assert.NoError(t, err)

	store.EXPECT().GetByID(ctx, userID).Return(nil, repositories.ErrNotFound)
	_, err = svc.Update(ctx, userID, models.UserDB{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockUserStore(ctrl)
	svc := NewUserService(store)

	store.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{ID: userID}, nil)
	store.EXPECT().UpdatePasswordHash(ctx, userID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, hash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("fresh-pass")))
			return nil
		})
	assert.NoError(t, svc.ResetPassword(ctx, userID, "fresh-pass"))

	assert.ErrorIs(t, svc.ResetPassword(ctx, userID, ""), ErrPasswordRequired)
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockUserStore(ctrl)
	svc := NewUserService(store)

	store.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{ID: userID}, nil)
	store.EXPECT().Delete(ctx, userID).Return(nil)
	assert.NoError(t, svc.Delete(ctx, userID))

	store.EXPECT().GetByID(ctx, userID).Return(nil, repositories.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, userID), ErrUserNotFound)
}
