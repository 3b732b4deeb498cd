package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/travelpath-backend/internal/transport/middleware"
)

// RouterDeps carries everything NewRouter mounts.
type RouterDeps struct {
	Logger      *slog.Logger
	Health      *HealthHandler
	Analytics   *AnalyticsHandler
	Reports     *ReportHandler
	Accounts    *AccountHandler
	Global      middleware.Middleware
	Auth        middleware.Middleware
	RateLimit   middleware.Middleware
	MetricsPath string
	Metrics     http.Handler
}

// NewRouter builds the HTTP API.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	if d.Global != nil {
		r.Use(d.Global)
	}
	if d.Auth != nil {
		r.Use(d.Auth)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Metrics != nil {
		r.Handle(d.MetricsPath, d.Metrics)
	}

	r.Route("/leaderboard", func(r chi.Router) {
		r.Get("/", d.Analytics.Leaderboard)
		r.Get("/stats", d.Analytics.LeaderboardStats)
	})

	r.Route("/travelpath", func(r chi.Router) {
		r.Route("/data", func(r chi.Router) {
			r.Get("/dailystats", d.Analytics.DailyStats)
			r.Get("/issues-by-location", d.Analytics.IssuesByLocation)
			r.Get("/recent", d.Analytics.Recent)
			r.Get("/reports", d.Analytics.Reports)
			r.Get("/reports/{id}", d.Reports.Get)
		})
		r.With(middleware.RequireAuth).Post("/createreport", d.Reports.Create)
		r.With(middleware.RequireAdmin).Get("/getall", d.Reports.ListAll)
		r.With(middleware.RequireAuth).Get("/user/{userId}", d.Reports.ListByUser)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if d.RateLimit != nil {
				r.Use(d.RateLimit)
			}
			r.Post("/signup", d.Accounts.SignUp)
			r.Post("/signin", d.Accounts.SignIn)
			r.Post("/forgot-password", d.Accounts.ForgotPassword)
			r.Post("/reset-password", d.Accounts.ResetPassword)
		})
		r.Get("/verify", d.Accounts.Verify)
		r.With(middleware.RequireAuth).Post("/jwt/verify-token", d.Accounts.VerifyToken)
		r.With(middleware.RequireAdmin).Get("/", d.Accounts.List)
		r.With(middleware.RequireAuth).Get("/search/{id}", d.Accounts.Get)
	})

	r.With(middleware.RequireAuth).Delete("/account/{id}", d.Accounts.Delete)

	return r
}
