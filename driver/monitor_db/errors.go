package monitor_db

import (
	"errors"

	"intmon/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgCodeUniqueViolation       = "23505"
	pgCodeInsufficientPrivilege = "42501"
)

// classifyPersistence wraps a store failure, marking it benign when the
// rows in question already exist: a concurrent writer won the insert
// race, so the store already holds the data and the cycle may report
// soft success. A refused write (42501) is not benign on its own; the
// insert path classifies it only after confirming the rows exist.
func classifyPersistence(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgCodeUniqueViolation {
		return &domain.PersistenceError{Op: op, Cause: err, Benign: true}
	}
	return &domain.PersistenceError{Op: op, Cause: err}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCodeUniqueViolation
}

func isInsufficientPrivilege(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCodeInsufficientPrivilege
}
