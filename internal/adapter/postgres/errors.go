package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

// SQLSTATE codes mapped onto domain sentinels.
var pgCodeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
	"23502": domain.ErrValidation,    // not_null_violation
	"22001": domain.ErrValidation,    // string_data_right_truncation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
}

// MapError wraps err with "<entity> <key>" and, where possible, a domain
// sentinel. Context cancellation and unknown errors keep their original chain.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	wrap := func(target error) error { return fmt.Errorf("%s %v: %w", entity, key, target) }

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return wrap(err)
	case errors.Is(err, pgx.ErrNoRows):
		return wrap(domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel, ok := pgCodeErrors[pgErr.Code]; ok {
			return wrap(sentinel)
		}
	}

	return wrap(err)
}
