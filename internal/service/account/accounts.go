package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
	"github.com/heartmarshall/travelpath-backend/pkg/ctxutil"
)

// authorizeSelfOrAdmin allows the owner of id or any admin.
func authorizeSelfOrAdmin(ctx context.Context, id uuid.UUID) error {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if callerID != id && !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// GetAccount returns a profile visible to its owner and to admins.
func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := authorizeSelfOrAdmin(ctx, id); err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("account.GetAccount: %w", err)
	}
	return u, nil
}

// ListAccounts returns every account. Admin only.
func (s *Service) ListAccounts(ctx context.Context) ([]domain.User, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("account.ListAccounts: %w", err)
	}
	return users, nil
}

// DeleteAccount removes an account with all its reports.
func (s *Service) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := authorizeSelfOrAdmin(ctx, id); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("account.DeleteAccount: %w", err)
	}

	callerID, _ := ctxutil.UserIDFromCtx(ctx)
	s.log.InfoContext(ctx, "account deleted",
		slog.String("user_id", id.String()),
		slog.String("deleted_by", callerID.String()))
	return nil
}
