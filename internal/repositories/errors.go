package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. Services treat it as the conflict signal for the
// check-then-act paths (duplicate registration, duplicate ticket,
// username/email in use), so concurrent inserts cannot slip past the
// preceding existence check.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
