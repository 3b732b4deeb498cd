// Package analytics projects stored reports into leaderboard, statistics,
// location and listing views. It never writes.
package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

// reportReader defines the report queries the engine needs.
type reportReader interface {
	List(ctx context.Context, f domain.ReportFilter) ([]domain.Report, error)
	ListWithChecks(ctx context.Context, f domain.ReportFilter) ([]domain.Report, error)
	Count(ctx context.Context, f domain.ReportFilter) (int, error)
	CountByUser(ctx context.Context, f domain.ReportFilter) (map[uuid.UUID]int, error)
}

// employeeCounter counts USER-role accounts.
type employeeCounter interface {
	CountEmployees(ctx context.Context, store *domain.Store) (int, error)
}

// Service implements the read-only aggregation queries.
type Service struct {
	log     *slog.Logger
	reports reportReader
	users   employeeCounter
	loc     *time.Location
	now     func() time.Time
}

// NewService creates a new analytics service. Period bounds are computed in loc.
func NewService(logger *slog.Logger, reports reportReader, users employeeCounter, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:     logger.With("service", "analytics"),
		reports: reports,
		users:   users,
		loc:     loc,
		now:     time.Now,
	}
}

// reference returns the parsed reference date, or now when date is empty.
func (s *Service) reference(date string) (time.Time, error) {
	if date == "" {
		return s.now().In(s.loc), nil
	}
	return ParseDate(date, s.loc)
}
