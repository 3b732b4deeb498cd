// Command cleanup-tokens clears password-reset tokens whose expiry has passed.
// It is meant to run from an external scheduler.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	postgres "github.com/heartmarshall/travelpath-backend/internal/adapter/postgres"
	"github.com/heartmarshall/travelpath-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/travelpath-backend/internal/app"
	"github.com/heartmarshall/travelpath-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now()
	cleared, err := user.New(pool).ClearExpiredResetTokens(ctx, now)
	if err != nil {
		logger.Error("clear expired reset tokens", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("expired reset tokens cleared",
		slog.Int64("cleared", cleared),
		slog.Time("before", now),
	)
}
