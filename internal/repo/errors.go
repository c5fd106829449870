package repo

import (
	"errors"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/trip-registry/internal/domain"
)

// foreignKeyViolation is the Postgres SQLSTATE for a failed REFERENCES check.
const foreignKeyViolation = "23503"

// keyInRange reports whether id fits an INTEGER key column. pgx refuses to
// encode anything wider, and no row can carry such a key, so callers treat
// an out-of-range id as a missing row without querying.
func keyInRange(id int) bool {
	return id >= math.MinInt32 && id <= math.MaxInt32
}

// mapNoRows converts pgx.ErrNoRows into domain.ErrNotFound and passes every
// other error through unchanged.
func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// isForeignKeyViolation reports whether err is a Postgres foreign-key failure.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
