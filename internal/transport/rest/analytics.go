package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
	"github.com/heartmarshall/travelpath-backend/internal/service/analytics"
)

// analyticsService defines the read-side operations needed by AnalyticsHandler.
type analyticsService interface {
	Leaderboard(ctx context.Context, in analytics.PeriodInput) ([]domain.LeaderboardEntry, error)
	LeaderboardStats(ctx context.Context, in analytics.PeriodInput) (*domain.LeaderboardStats, error)
	DailyStats(ctx context.Context, in analytics.DayInput) (*domain.DailyStats, error)
	IssuesByLocation(ctx context.Context, in analytics.DayInput) (*domain.LocationIssues, error)
	RecentReports(ctx context.Context, in analytics.RecentInput) ([]domain.RecentReport, error)
	ListReports(ctx context.Context, in analytics.ListInput) (*domain.ReportPage, error)
}

// AnalyticsHandler serves the dashboard endpoints.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

func (h *AnalyticsHandler) periodInput(r *http.Request) (analytics.PeriodInput, error) {
	store, err := storeParam(r)
	if err != nil {
		return analytics.PeriodInput{}, err
	}
	return analytics.PeriodInput{
		Period: domain.Period(r.URL.Query().Get("period")),
		Store:  store,
	}, nil
}

func (h *AnalyticsHandler) dayInput(r *http.Request) (analytics.DayInput, error) {
	store, err := storeParam(r)
	if err != nil {
		return analytics.DayInput{}, err
	}
	return analytics.DayInput{Date: r.URL.Query().Get("date"), Store: store}, nil
}

// Leaderboard handles GET /leaderboard.
func (h *AnalyticsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	in, err := h.periodInput(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.svc.Leaderboard(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLeaderboardResponse(entries))
}

// LeaderboardStats handles GET /leaderboard/stats.
func (h *AnalyticsHandler) LeaderboardStats(w http.ResponseWriter, r *http.Request) {
	in, err := h.periodInput(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	stats, err := h.svc.LeaderboardStats(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, leaderboardStatsResponse{
		TotalPaths:          stats.TotalPaths,
		AvgPathsPerEmployee: stats.AvgPathsPerEmployee,
		MostActiveDay:       stats.MostActiveDay,
	})
}

// DailyStats handles GET /travelpath/data/dailystats.
func (h *AnalyticsHandler) DailyStats(w http.ResponseWriter, r *http.Request) {
	in, err := h.dayInput(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	stats, err := h.svc.DailyStats(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDailyStatsResponse(stats))
}

// IssuesByLocation handles GET /travelpath/data/issues-by-location.
func (h *AnalyticsHandler) IssuesByLocation(w http.ResponseWriter, r *http.Request) {
	in, err := h.dayInput(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	issues, err := h.svc.IssuesByLocation(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	counts := issues.LocationCounts
	if counts == nil {
		counts = map[string]int{}
	}
	writeJSON(w, http.StatusOK, locationIssuesResponse{
		Date:           issues.Date,
		TotalIssues:    issues.TotalIssues,
		LocationCounts: counts,
	})
}

// Recent handles GET /travelpath/data/recent.
func (h *AnalyticsHandler) Recent(w http.ResponseWriter, r *http.Request) {
	store, err := storeParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := intParam(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.RecentReports(r.Context(), analytics.RecentInput{Limit: limit, Store: store})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecentResponse(items))
}

// Reports handles GET /travelpath/data/reports.
func (h *AnalyticsHandler) Reports(w http.ResponseWriter, r *http.Request) {
	store, err := storeParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	page, err := intParam(r, "page")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	pageSize, err := intParam(r, "pageSize")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	q := r.URL.Query()
	result, err := h.svc.ListReports(r.Context(), analytics.ListInput{
		Period:   domain.Period(q.Get("period")),
		Date:     q.Get("date"),
		Page:     page,
		PageSize: pageSize,
		Search:   q.Get("search"),
		Store:    store,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportPageResponse(result))
}
