package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
)

// EmailOtpRepository handles persistence for one-time email codes.
type EmailOtpRepository struct {
	db *sqlx.DB
}

func NewEmailOtpRepository(db *sqlx.DB) *EmailOtpRepository {
	return &EmailOtpRepository{db: db}
}

// Save inserts a fresh unverified code. Prior codes for the same email are
// left untouched; any unexpired one remains usable.
func (r *EmailOtpRepository) Save(ctx context.Context, email, code string, expiresAt time.Time) (*models.EmailOtpDB, error) {
	otp := models.EmailOtpDB{
		Email:     email,
		OtpCode:   code,
		ExpiresAt: expiresAt,
		Verified:  false,
		CreatedAt: time.Now().UTC(),
	}

	const query = `
		INSERT INTO email_otps (email, otp_code, expires_at, verified, created_at)
		VALUES ($1, $2, $3, FALSE, $4)
		RETURNING id
	`
	err := r.db.GetContext(ctx, &otp.ID, query, otp.Email, otp.OtpCode, otp.ExpiresAt, otp.CreatedAt)

	logger.Log.Infow("exec", "query", "insert email_otp", "email", email, "error", err)
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

// FindUsable returns an unverified, unexpired row matching (email, code),
// or ErrNotFound. Wrong code, expired code and already-consumed code are
// indistinguishable here on purpose.
func (r *EmailOtpRepository) FindUsable(ctx context.Context, email, code string) (*models.EmailOtpDB, error) {
	const query = `
		SELECT id, email, otp_code, expires_at, verified, verified_at, created_at
		FROM email_otps
		WHERE email = $1 AND otp_code = $2 AND verified = FALSE AND expires_at > $3
		ORDER BY created_at DESC
		LIMIT 1
	`
	var otp models.EmailOtpDB
	if err := r.db.GetContext(ctx, &otp, query, email, code, time.Now().UTC()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &otp, nil
}

// MarkVerified consumes the code: flips verified and stamps verified_at.
// The verified = FALSE guard makes consumption single-use even if two
// verification calls race on the same row.
func (r *EmailOtpRepository) MarkVerified(ctx context.Context, id int64) error {
	const query = `
		UPDATE email_otps
		SET verified = TRUE, verified_at = $2
		WHERE id = $1 AND verified = FALSE
	`
	res, err := r.db.ExecContext(ctx, query, id, time.Now().UTC())
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExpired hard-deletes every row past its expiry, verified or not.
// Returns the number of rows removed.
func (r *EmailOtpRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM email_otps WHERE expires_at < $1`, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
