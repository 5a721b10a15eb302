package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/repositories"
)

//go:generate mockgen -source=otp.go -destination=otp_mock.go -package=services

const (
	otpExpiry   = 10 * time.Minute
	otpCodeSpan = 1000000 // codes are 000000..999999
)

// OtpStore defines persistence operations for one-time email codes.
type OtpStore interface {
	Save(ctx context.Context, email, code string, expiresAt time.Time) (*models.EmailOtpDB, error)
	FindUsable(ctx context.Context, email, code string) (*models.EmailOtpDB, error)
	MarkVerified(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// OtpService issues and verifies one-time email verification codes.
type OtpService struct {
	store OtpStore
}

func NewOtpService(store OtpStore) *OtpService {
	return &OtpService{store: store}
}

// Generate creates a fresh 6-digit code for the email, valid for ten
// minutes. Earlier unverified codes stay usable until they expire.
func (s *OtpService) Generate(ctx context.Context, email string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpCodeSpan))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", n.Int64())

	if _, err := s.store.Save(ctx, email, code, time.Now().UTC().Add(otpExpiry)); err != nil {
		logger.Log.Errorw("failed to save otp", "email", email, "err", err)
		return "", err
	}

	logger.Log.Infow("otp generated", "email", email)
	return code, nil
}

// Verify consumes a code. It returns false for a wrong code, an expired
// code, and a code that was already used; callers cannot tell these apart.
func (s *OtpService) Verify(ctx context.Context, email, code string) (bool, error) {
	otp, err := s.store.FindUsable(ctx, email, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Warnw("invalid or expired otp attempt", "email", email)
			return false, nil
		}
		return false, err
	}

	if err := s.store.MarkVerified(ctx, otp.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Lost the race against another verification of the same row.
			return false, nil
		}
		return false, err
	}

	logger.Log.Infow("otp verified", "email", email)
	return true, nil
}

// RunCleanup deletes expired codes every interval until ctx is cancelled.
// Sweep failures are logged and the next run proceeds normally.
func (s *OtpService) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := s.store.DeleteExpired(ctx)
			if err != nil {
				logger.Log.Errorw("otp cleanup failed", "err", err)
				continue
			}
			logger.Log.Infow("expired otps cleaned up", "deleted", deleted)
		}
	}
}
