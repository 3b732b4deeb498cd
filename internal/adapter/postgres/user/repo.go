// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/travelpath-backend/internal/adapter/postgres"
	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "email", "name", "password_hash", "role", "store", "is_verified",
	"verification_token", "reset_token", "reset_token_expiry", "created_at", "updated_at",
}

// row mirrors the users table for scanning.
type row struct {
	ID                uuid.UUID  `db:"id"`
	Email             string     `db:"email"`
	Name              string     `db:"name"`
	PasswordHash      string     `db:"password_hash"`
	Role              string     `db:"role"`
	Store             *string    `db:"store"`
	IsVerified        bool       `db:"is_verified"`
	VerificationToken *string    `db:"verification_token"`
	ResetToken        *string    `db:"reset_token"`
	ResetTokenExpiry  *time.Time `db:"reset_token_expiry"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

func (r row) toDomain() *domain.User {
	u := &domain.User{
		ID:                r.ID,
		Email:             r.Email,
		Name:              r.Name,
		PasswordHash:      r.PasswordHash,
		Role:              domain.UserRole(r.Role),
		IsVerified:        r.IsVerified,
		VerificationToken: r.VerificationToken,
		ResetToken:        r.ResetToken,
		ResetTokenExpiry:  r.ResetTokenExpiry,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	if r.Store != nil {
		s := domain.Store(*r.Store)
		u.Store = &s
	}
	return u
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func (r *Repo) getOne(ctx context.Context, key any, where sq.Sqlizer) (*domain.User, error) {
	query, args, err := postgres.Builder().Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, r.q(ctx), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return dst.toDomain(), nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, id, sq.Eq{"id": id})
}

// GetByEmail returns a user by email address, case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, email, sq.Expr("lower(email) = lower(?)", email))
}

// GetByVerificationToken returns the user holding the given token hash.
func (r *Repo) GetByVerificationToken(ctx context.Context, tokenHash string) (*domain.User, error) {
	return r.getOne(ctx, "verification_token", sq.Eq{"verification_token": tokenHash})
}

// GetByResetToken returns the user holding the given reset token hash.
// Expiry is checked by the caller.
func (r *Repo) GetByResetToken(ctx context.Context, tokenHash string) (*domain.User, error) {
	return r.getOne(ctx, "reset_token", sq.Eq{"reset_token": tokenHash})
}

// Create inserts a new user and returns the persisted row.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	var store *string
	if u.Store != nil {
		s := u.Store.String()
		store = &s
	}
	role := u.Role
	if role == "" {
		role = domain.UserRoleUser
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "email", "name", "password_hash", "role", "store", "is_verified", "verification_token").
		Values(u.ID, u.Email, u.Name, u.PasswordHash, role.String(), store, u.IsVerified, u.VerificationToken).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, r.q(ctx), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return dst.toDomain(), nil
}

// MarkVerified sets is_verified and clears the verification token.
func (r *Repo) MarkVerified(ctx context.Context, id uuid.UUID) error {
	return r.update(ctx, id, map[string]any{
		"is_verified":        true,
		"verification_token": nil,
	})
}

// SetResetToken stores a password reset token hash with its expiry.
func (r *Repo) SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiry time.Time) error {
	return r.update(ctx, id, map[string]any{
		"reset_token":        tokenHash,
		"reset_token_expiry": expiry,
	})
}

// UpdatePassword replaces the password hash and clears any reset token.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return r.update(ctx, id, map[string]any{
		"password_hash":      passwordHash,
		"reset_token":        nil,
		"reset_token_expiry": nil,
	})
}

// ClearExpiredResetTokens removes reset tokens whose expiry is before now.
func (r *Repo) ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("reset_token", nil).
		Set("reset_token_expiry", nil).
		Where(sq.Lt{"reset_token_expiry": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "user", "reset_token_expiry")
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) update(ctx context.Context, id uuid.UUID, set map[string]any) error {
	query, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns all users ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	query, args, err := postgres.Builder().Select(columns...).From(table).OrderBy("name ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", "list")
	}

	users := make([]domain.User, 0, len(rows))
	for _, rw := range rows {
		users = append(users, *rw.toDomain())
	}
	return users, nil
}

// Delete removes a user; reports, locations and check items cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CountEmployees counts accounts with the USER role, optionally within one store.
func (r *Repo) CountEmployees(ctx context.Context, store *domain.Store) (int, error) {
	b := postgres.Builder().Select("count(*)").From(table).Where(sq.Eq{"role": domain.UserRoleUser.String()})
	if store != nil {
		b = b.Where(sq.Eq{"store": store.String()})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "user", "count")
	}
	return n, nil
}
