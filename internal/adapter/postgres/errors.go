package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"adpilot/internal/core/domain"
)

const (
	uniqueViolation = "23505"
	invalidTextRepr = "22P02"
)

// mapErr translates driver errors into domain errors. what names the
// record for the message.
func mapErr(err error, what string) error {
	var pgErr *pgconn.PgError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolation:
		return fmt.Errorf("%s already exists: %w", what, domain.ErrInvalidInput)
	case errors.As(err, &pgErr) && pgErr.Code == invalidTextRepr:
		// A malformed UUID cannot name an existing record.
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}
