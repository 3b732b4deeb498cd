package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

// CreateReport validates and persists a report with all its locations and
// checks in one transaction. Nothing is stored if any insert fails.
func (s *Service) CreateReport(ctx context.Context, userID uuid.UUID, input CreateReportInput) (*domain.Report, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	report := input.toDomain(userID)

	var created *domain.Report
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.reports.Create(txCtx, report)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("report.CreateReport: %w", err)
	}

	s.metrics.observeCreated(created)

	s.log.InfoContext(ctx, "report created",
		slog.String("report_id", created.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("locations", len(created.Locations)),
		slog.Int("issues", created.IssueCount()),
	)

	return created, nil
}
