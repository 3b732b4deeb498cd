package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/travelpath-backend/internal/config"
)

// Sender delivers a rendered message.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// NewSender returns the sender selected by cfg.Provider.
func NewSender(cfg config.MailConfig, logger *slog.Logger) (Sender, error) {
	switch cfg.Provider {
	case config.MailProviderConsole:
		return NewConsoleSender(logger, cfg.FromAddress), nil
	case config.MailProviderSendGrid:
		return NewSendGridSender(cfg.SendGridAPIKey, cfg.FromName, cfg.FromAddress, ""), nil
	default:
		return nil, fmt.Errorf("mail.NewSender: unknown provider %q", cfg.Provider)
	}
}
