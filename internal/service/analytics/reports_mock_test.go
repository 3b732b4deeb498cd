package analytics

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

var _ reportReader = &reportReaderMock{}

type reportReaderMock struct {
	ListFunc           func(ctx context.Context, f domain.ReportFilter) ([]domain.Report, error)
	ListWithChecksFunc func(ctx context.Context, f domain.ReportFilter) ([]domain.Report, error)
	CountFunc          func(ctx context.Context, f domain.ReportFilter) (int, error)
	CountByUserFunc    func(ctx context.Context, f domain.ReportFilter) (map[uuid.UUID]int, error)

	calls struct {
		List           []domain.ReportFilter
		ListWithChecks []domain.ReportFilter
		Count          []domain.ReportFilter
		CountByUser    []domain.ReportFilter
	}
	lock sync.RWMutex
}

func (mock *reportReaderMock) List(ctx context.Context, f domain.ReportFilter) ([]domain.Report, error) {
	if mock.ListFunc == nil {
		panic("reportReaderMock.ListFunc: method is nil but reportReader.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, f)
	mock.lock.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *reportReaderMock) ListCalls() []domain.ReportFilter {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *reportReaderMock) ListWithChecks(ctx context.Context, f domain.ReportFilter) ([]domain.Report, error) {
	if mock.ListWithChecksFunc == nil {
		panic("reportReaderMock.ListWithChecksFunc: method is nil but reportReader.ListWithChecks was just called")
	}
	mock.lock.Lock()
	mock.calls.ListWithChecks = append(mock.calls.ListWithChecks, f)
	mock.lock.Unlock()
	return mock.ListWithChecksFunc(ctx, f)
}

func (mock *reportReaderMock) ListWithChecksCalls() []domain.ReportFilter {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListWithChecks
}

func (mock *reportReaderMock) Count(ctx context.Context, f domain.ReportFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("reportReaderMock.CountFunc: method is nil but reportReader.Count was just called")
	}
	mock.lock.Lock()
	mock.calls.Count = append(mock.calls.Count, f)
	mock.lock.Unlock()
	return mock.CountFunc(ctx, f)
}

func (mock *reportReaderMock) CountCalls() []domain.ReportFilter {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Count
}

func (mock *reportReaderMock) CountByUser(ctx context.Context, f domain.ReportFilter) (map[uuid.UUID]int, error) {
	if mock.CountByUserFunc == nil {
		panic("reportReaderMock.CountByUserFunc: method is nil but reportReader.CountByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, f)
	mock.lock.Unlock()
	return mock.CountByUserFunc(ctx, f)
}

func (mock *reportReaderMock) CountByUserCalls() []domain.ReportFilter {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountByUser
}

var _ employeeCounter = &employeeCounterMock{}

type employeeCounterMock struct {
	CountEmployeesFunc func(ctx context.Context, store *domain.Store) (int, error)

	calls struct {
		CountEmployees []*domain.Store
	}
	lock sync.RWMutex
}

func (mock *employeeCounterMock) CountEmployees(ctx context.Context, store *domain.Store) (int, error) {
	if mock.CountEmployeesFunc == nil {
		panic("employeeCounterMock.CountEmployeesFunc: method is nil but employeeCounter.CountEmployees was just called")
	}
	mock.lock.Lock()
	mock.calls.CountEmployees = append(mock.calls.CountEmployees, store)
	mock.lock.Unlock()
	return mock.CountEmployeesFunc(ctx, store)
}

func (mock *employeeCounterMock) CountEmployeesCalls() []*domain.Store {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountEmployees
}
