package apperror

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// IsUniqueViolation reports a postgres unique violation, optionally on a named constraint.
func IsUniqueViolation(err error, constraint string) bool {
	return isPgViolation(err, pgUniqueViolation, "duplicate key value", constraint)
}

// IsCheckViolation reports a postgres CHECK violation, optionally on a named constraint.
func IsCheckViolation(err error, constraint string) bool {
	return isPgViolation(err, pgCheckViolation, "violates check constraint", constraint)
}

func isPgViolation(err error, code, text, constraint string) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code && (constraint == "" || pgErr.ConstraintName == constraint)
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, text) && (constraint == "" || strings.Contains(errMsg, constraint))
}
