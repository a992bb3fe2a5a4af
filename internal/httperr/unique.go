package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the SQLSTATE Postgres reports for a unique
// constraint conflict.
const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique-constraint conflict,
// either translated by GORM or raw from the Postgres driver.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
