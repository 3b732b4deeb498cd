package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
	"github.com/heartmarshall/travelpath-backend/internal/service/account"
	"github.com/heartmarshall/travelpath-backend/internal/service/analytics"
	"github.com/heartmarshall/travelpath-backend/internal/service/report"
)

var _ analyticsService = &analyticsServiceMock{}

type analyticsServiceMock struct {
	LeaderboardFunc      func(ctx context.Context, in analytics.PeriodInput) ([]domain.LeaderboardEntry, error)
	LeaderboardStatsFunc func(ctx context.Context, in analytics.PeriodInput) (*domain.LeaderboardStats, error)
	DailyStatsFunc       func(ctx context.Context, in analytics.DayInput) (*domain.DailyStats, error)
	IssuesByLocationFunc func(ctx context.Context, in analytics.DayInput) (*domain.LocationIssues, error)
	RecentReportsFunc    func(ctx context.Context, in analytics.RecentInput) ([]domain.RecentReport, error)
	ListReportsFunc      func(ctx context.Context, in analytics.ListInput) (*domain.ReportPage, error)
}

func (m *analyticsServiceMock) Leaderboard(ctx context.Context, in analytics.PeriodInput) ([]domain.LeaderboardEntry, error) {
	return m.LeaderboardFunc(ctx, in)
}

func (m *analyticsServiceMock) LeaderboardStats(ctx context.Context, in analytics.PeriodInput) (*domain.LeaderboardStats, error) {
	return m.LeaderboardStatsFunc(ctx, in)
}

func (m *analyticsServiceMock) DailyStats(ctx context.Context, in analytics.DayInput) (*domain.DailyStats, error) {
	return m.DailyStatsFunc(ctx, in)
}

func (m *analyticsServiceMock) IssuesByLocation(ctx context.Context, in analytics.DayInput) (*domain.LocationIssues, error) {
	return m.IssuesByLocationFunc(ctx, in)
}

func (m *analyticsServiceMock) RecentReports(ctx context.Context, in analytics.RecentInput) ([]domain.RecentReport, error) {
	return m.RecentReportsFunc(ctx, in)
}

func (m *analyticsServiceMock) ListReports(ctx context.Context, in analytics.ListInput) (*domain.ReportPage, error) {
	return m.ListReportsFunc(ctx, in)
}

var _ reportService = &reportServiceMock{}

type reportServiceMock struct {
	CreateReportFunc    func(ctx context.Context, userID uuid.UUID, input report.CreateReportInput) (*domain.Report, error)
	GetReportFunc       func(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	ListUserReportsFunc func(ctx context.Context, userID uuid.UUID, store *domain.Store) ([]domain.Report, error)
	ListAllReportsFunc  func(ctx context.Context, store *domain.Store) ([]domain.Report, error)

	mu          sync.Mutex
	createCalls []report.CreateReportInput
}

func (m *reportServiceMock) CreateReport(ctx context.Context, userID uuid.UUID, input report.CreateReportInput) (*domain.Report, error) {
	m.mu.Lock()
	m.createCalls = append(m.createCalls, input)
	m.mu.Unlock()
	return m.CreateReportFunc(ctx, userID, input)
}

func (m *reportServiceMock) CreateReportCalls() []report.CreateReportInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

func (m *reportServiceMock) GetReport(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	return m.GetReportFunc(ctx, id)
}

func (m *reportServiceMock) ListUserReports(ctx context.Context, userID uuid.UUID, store *domain.Store) ([]domain.Report, error) {
	return m.ListUserReportsFunc(ctx, userID, store)
}

func (m *reportServiceMock) ListAllReports(ctx context.Context, store *domain.Store) ([]domain.Report, error) {
	return m.ListAllReportsFunc(ctx, store)
}

var _ accountService = &accountServiceMock{}

type accountServiceMock struct {
	RegisterFunc       func(ctx context.Context, input account.RegisterInput) (string, error)
	VerifyEmailFunc    func(ctx context.Context, token string) (string, error)
	LoginFunc          func(ctx context.Context, input account.LoginInput) (string, error)
	ForgotPasswordFunc func(ctx context.Context, email string) (string, error)
	ResetPasswordFunc  func(ctx context.Context, input account.ResetPasswordInput) (string, error)
	GetAccountFunc     func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListAccountsFunc   func(ctx context.Context) ([]domain.User, error)
	DeleteAccountFunc  func(ctx context.Context, id uuid.UUID) error
}

func (m *accountServiceMock) Register(ctx context.Context, input account.RegisterInput) (string, error) {
	return m.RegisterFunc(ctx, input)
}

func (m *accountServiceMock) VerifyEmail(ctx context.Context, token string) (string, error) {
	return m.VerifyEmailFunc(ctx, token)
}

func (m *accountServiceMock) Login(ctx context.Context, input account.LoginInput) (string, error) {
	return m.LoginFunc(ctx, input)
}

func (m *accountServiceMock) ForgotPassword(ctx context.Context, email string) (string, error) {
	return m.ForgotPasswordFunc(ctx, email)
}

func (m *accountServiceMock) ResetPassword(ctx context.Context, input account.ResetPasswordInput) (string, error) {
	return m.ResetPasswordFunc(ctx, input)
}

func (m *accountServiceMock) GetAccount(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.GetAccountFunc(ctx, id)
}

func (m *accountServiceMock) ListAccounts(ctx context.Context) ([]domain.User, error) {
	return m.ListAccountsFunc(ctx)
}

func (m *accountServiceMock) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return m.DeleteAccountFunc(ctx, id)
}
