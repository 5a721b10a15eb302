package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
)

const userColumns = `id, username, email, first_name, last_name, role, password_hash,
	email_verified, email_verified_at, created_at, updated_at`

// UserRepository handles persistence for users.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Save inserts a new user. The id and timestamps are set here.
func (r *UserRepository) Save(ctx context.Context, user models.UserDB) (*models.UserDB, error) {
	now := time.Now().UTC()
	user.ID = uuid.New()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (:id, :username, :email, :first_name, :last_name, :role, :password_hash,
			:email_verified, :email_verified_at, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, user)

	logger.Log.Infow("exec",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", user.ID,
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.UserDB
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var user models.UserDB
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.UserDB
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByUsernameOrEmail reports whether any user already holds the given
// username or email.
func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	const query = `SELECT COUNT(*) FROM users WHERE username = $1 OR email = $2`

	var n int
	if err := r.db.GetContext(ctx, &n, query, username, email); err != nil {
		return false, err
	}
	return n > 0, nil
}

// List returns users matching an optional case-insensitive search over
// username/email/name and an optional role filter.
func (r *UserRepository) List(ctx context.Context, search, role string) ([]models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1 = '' OR username ILIKE '%' || $1 || '%'
			OR email ILIKE '%' || $1 || '%'
			OR first_name ILIKE '%' || $1 || '%'
			OR last_name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR role = $2)
		ORDER BY created_at DESC
	`
	users := []models.UserDB{}
	if err := r.db.SelectContext(ctx, &users, query, search, role); err != nil {
		return nil, err
	}
	return users, nil
}

// Update overwrites the mutable user fields and bumps updated_at.
func (r *UserRepository) Update(ctx context.Context, user models.UserDB) (*models.UserDB, error) {
	user.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE users
		SET username = :username,
			email = :email,
			first_name = :first_name,
			last_name = :last_name,
			role = :role,
			password_hash = :password_hash,
			email_verified = :email_verified,
			email_verified_at = :email_verified_at,
			updated_at = :updated_at
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, user)

	logger.Log.Infow("exec",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", user.ID,
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return &user, nil
}

// MarkEmailVerified sets the verified flag and timestamp together, keeping
// the email_verified/email_verified_at invariant.
func (r *UserRepository) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE users
		SET email_verified = TRUE, email_verified_at = $2, updated_at = $2
		WHERE id = $1
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

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $2, updated_at = $3 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, passwordHash, time.Now().UTC())
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

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM users WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)

	logger.Log.Infow("exec", "query", query, "user_id", id, "error", err)
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

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`)
	return n, err
}
