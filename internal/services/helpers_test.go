package services

import "github.com/jackc/pgx/v5/pgconn"

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
}
