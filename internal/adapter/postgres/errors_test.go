package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	assert.NoError(t, MapError(nil, "report", uuid.New()))
}

func TestMapError_Mapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, domain.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), domain.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, domain.ErrAlreadyExists},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, domain.ErrNotFound},
		{"check violation", &pgconn.PgError{Code: "23514"}, domain.ErrValidation},
		{"not null violation", &pgconn.PgError{Code: "23502"}, domain.ErrValidation},
		{"value too long", &pgconn.PgError{Code: "22001"}, domain.ErrValidation},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, domain.ErrConflict},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, domain.ErrConflict},
		{"wrapped pg error", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}), domain.ErrAlreadyExists},
		{"deadline", context.DeadlineExceeded, context.DeadlineExceeded},
		{"canceled", context.Canceled, context.Canceled},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := MapError(tt.err, "report", "k")
			require.Error(t, got)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapError_UnknownErrorPassesThrough(t *testing.T) {
	t.Parallel()

	base := errors.New("connection reset")
	got := MapError(base, "user", "a@b.c")

	assert.ErrorIs(t, got, base)
	assert.Equal(t, "user a@b.c: connection reset", got.Error())
	for _, sentinel := range []error{domain.ErrNotFound, domain.ErrAlreadyExists, domain.ErrValidation} {
		assert.NotErrorIs(t, got, sentinel)
	}
}

func TestMapError_UnknownPgCode(t *testing.T) {
	t.Parallel()

	got := MapError(&pgconn.PgError{Code: "42P01"}, "report", uuid.Nil)

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(got, &pgErr))
	assert.NotErrorIs(t, got, domain.ErrNotFound)
}

func TestContainsPattern_EscapesWildcards(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "%smith%", ContainsPattern("smith"))
	assert.Equal(t, `%50\%\_off\\%`, ContainsPattern(`50%_off\`))
}
