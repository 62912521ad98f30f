package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de violación de constraint único.
const codeUniqueViolation = "23505"

// isUniqueViolation reporta si err proviene de un constraint UNIQUE
// (username o nombre de categoría duplicado). Los repos lo traducen a
// domain.ErrDuplicate.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
