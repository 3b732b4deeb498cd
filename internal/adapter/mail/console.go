package mail

import (
	"context"
	"log/slog"
)

// ConsoleSender writes emails to the log instead of delivering them.
// Used in development and when no provider is configured.
type ConsoleSender struct {
	log  *slog.Logger
	from string
}

// NewConsoleSender creates a ConsoleSender.
func NewConsoleSender(logger *slog.Logger, from string) *ConsoleSender {
	return &ConsoleSender{log: logger.With("sender", "console"), from: from}
}

// Send logs msg and never fails.
func (s *ConsoleSender) Send(ctx context.Context, msg *Message) error {
	s.log.InfoContext(ctx, "email",
		slog.String("from", s.from),
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Text),
	)
	return nil
}
