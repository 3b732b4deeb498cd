package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
	"github.com/heartmarshall/travelpath-backend/pkg/ctxutil"
)

// GetReport returns a report with its owner and nested checks.
func (s *Service) GetReport(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	r, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("report.GetReport: %w", err)
	}
	return r, nil
}

// ListUserReports returns a user's reports, newest first. Only the owner or
// an admin may list them.
func (s *Service) ListUserReports(ctx context.Context, userID uuid.UUID, store *domain.Store) ([]domain.Report, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if callerID != userID && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrUnauthorized
	}

	reports, err := s.reports.ListWithChecks(ctx, domain.ReportFilter{
		UserID: &userID,
		Store:  store,
		Newest: true,
	})
	if err != nil {
		return nil, fmt.Errorf("report.ListUserReports: %w", err)
	}
	return reports, nil
}

// ListAllReports returns every report, newest first (admin only).
func (s *Service) ListAllReports(ctx context.Context, store *domain.Store) ([]domain.Report, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	reports, err := s.reports.ListWithChecks(ctx, domain.ReportFilter{Store: store, Newest: true})
	if err != nil {
		return nil, fmt.Errorf("report.ListAllReports: %w", err)
	}
	return reports, nil
}
