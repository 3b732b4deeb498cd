package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/travelpath-backend/internal/adapter/mail"
	postgres "github.com/heartmarshall/travelpath-backend/internal/adapter/postgres"
	reportrepo "github.com/heartmarshall/travelpath-backend/internal/adapter/postgres/report"
	userrepo "github.com/heartmarshall/travelpath-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/travelpath-backend/internal/auth"
	"github.com/heartmarshall/travelpath-backend/internal/config"
	"github.com/heartmarshall/travelpath-backend/internal/service/account"
	"github.com/heartmarshall/travelpath-backend/internal/service/analytics"
	"github.com/heartmarshall/travelpath-backend/internal/service/report"
	"github.com/heartmarshall/travelpath-backend/internal/transport/middleware"
	"github.com/heartmarshall/travelpath-backend/internal/transport/rest"
	"github.com/heartmarshall/travelpath-backend/migrations"
)

// Run wires the application and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.InfoContext(ctx, "starting travelpath",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("mail_provider", cfg.Mail.Provider),
		slog.String("timezone", cfg.Analytics.Location.String()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("app.Run: %w", err)
		}
	}

	mailer, err := mail.NewSender(cfg.Mail, logger)
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}

	c, err := wire(cfg, pool, mailer, logger)
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}
	defer c.limiter.Stop()

	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	go runResetTokenJanitor(janitorCtx, c.accounts, cfg.Auth.ResetCleanupInterval, logger)

	return serve(ctx, cfg.Server, c.handler, logger)
}

type components struct {
	handler  http.Handler
	accounts *account.Service
	tokens   *auth.JWTManager
	limiter  *middleware.RateLimiter
}

// wire builds repositories, services and the HTTP handler on top of pool.
// The caller owns limiter.Stop.
func wire(cfg *config.Config, pool *pgxpool.Pool, mailer mail.Sender, logger *slog.Logger) (*components, error) {
	users := userrepo.New(pool)
	reports := reportrepo.New(pool)
	tx := postgres.NewTxManager(pool)
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	composer, err := mail.NewComposer(cfg.Mail.AppURL)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	accountSvc := account.NewService(logger, users, tx, tokens, composer, mailer, cfg.Auth)
	reportSvc := report.NewService(logger, reports, tx, report.NewMetrics(reg))
	analyticsSvc := analytics.NewService(logger, reports, users, cfg.Analytics.Location)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.AuthPerMinute, cfg.RateLimit.CleanupInterval)
	httpMetrics := middleware.NewHTTPMetrics(reg)

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:    logger,
		Health:    rest.NewHealthHandler(pool, Version),
		Analytics: rest.NewAnalyticsHandler(analyticsSvc, logger),
		Reports:   rest.NewReportHandler(reportSvc, logger),
		Accounts:  rest.NewAccountHandler(accountSvc, logger),
		Global: middleware.Chain(
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.Logger(logger),
			httpMetrics.Instrument(),
			middleware.CORS(cfg.CORS),
		),
		Auth:        middleware.Auth(accountSvc),
		RateLimit:   limiter.Limit,
		MetricsPath: cfg.Server.MetricsPath,
		Metrics:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	})

	return &components{
		handler:  handler,
		accounts: accountSvc,
		tokens:   tokens,
		limiter:  limiter,
	}, nil
}
