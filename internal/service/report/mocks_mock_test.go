package report

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	CreateFunc         func(ctx context.Context, r *domain.Report) (*domain.Report, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	ListWithChecksFunc func(ctx context.Context, f domain.ReportFilter) ([]domain.Report, error)

	calls struct {
		Create         []*domain.Report
		GetByID        []uuid.UUID
		ListWithChecks []domain.ReportFilter
	}
	lock sync.RWMutex
}

func (mock *reportRepoMock) Create(ctx context.Context, r *domain.Report) (*domain.Report, error) {
	if mock.CreateFunc == nil {
		panic("reportRepoMock.CreateFunc: method is nil but reportRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, r)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, r)
}

func (mock *reportRepoMock) CreateCalls() []*domain.Report {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *reportRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	if mock.GetByIDFunc == nil {
		panic("reportRepoMock.GetByIDFunc: method is nil but reportRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, id)
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *reportRepoMock) GetByIDCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *reportRepoMock) ListWithChecks(ctx context.Context, f domain.ReportFilter) ([]domain.Report, error) {
	if mock.ListWithChecksFunc == nil {
		panic("reportRepoMock.ListWithChecksFunc: method is nil but reportRepo.ListWithChecks was just called")
	}
	mock.lock.Lock()
	mock.calls.ListWithChecks = append(mock.calls.ListWithChecks, f)
	mock.lock.Unlock()
	return mock.ListWithChecksFunc(ctx, f)
}

func (mock *reportRepoMock) ListWithChecksCalls() []domain.ReportFilter {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListWithChecks
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx int
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.lock.Lock()
	mock.calls.RunInTx++
	mock.lock.Unlock()
	if mock.RunInTxFunc == nil {
		return fn(ctx)
	}
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() int {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}
