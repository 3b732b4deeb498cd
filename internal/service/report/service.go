// Package report manages travel path report creation and retrieval.
package report

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

// reportRepo defines the report repository interface needed by the report service.
type reportRepo interface {
	Create(ctx context.Context, r *domain.Report) (*domain.Report, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	ListWithChecks(ctx context.Context, f domain.ReportFilter) ([]domain.Report, error)
}

// txManager defines the transaction manager interface needed by the report service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements report lifecycle operations.
type Service struct {
	log     *slog.Logger
	reports reportRepo
	tx      txManager
	metrics *Metrics
}

// NewService creates a new report service instance. metrics may be nil.
func NewService(logger *slog.Logger, reports reportRepo, tx txManager, metrics *Metrics) *Service {
	return &Service{
		log:     logger.With("service", "report"),
		reports: reports,
		tx:      tx,
		metrics: metrics,
	}
}
