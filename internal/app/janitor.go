package app

import (
	"context"
	"log/slog"
	"time"
)

type resetTokenCleaner interface {
	CleanupExpiredResetTokens(ctx context.Context) (int64, error)
}

// runResetTokenJanitor clears expired reset tokens every interval until ctx
// is done. A non-positive interval disables the sweep.
func runResetTokenJanitor(ctx context.Context, cleaner resetTokenCleaner, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := cleaner.CleanupExpiredResetTokens(ctx)
			if err != nil {
				logger.WarnContext(ctx, "reset token sweep failed", slog.String("error", err.Error()))
				continue
			}
			if n > 0 {
				logger.InfoContext(ctx, "reset token sweep", slog.Int64("cleared", n))
			}
		}
	}
}
