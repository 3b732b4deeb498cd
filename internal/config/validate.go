package config

import (
	"fmt"
	"strings"
	"time"
)

// Mail providers.
const (
	MailProviderConsole  = "console"
	MailProviderSendGrid = "sendgrid"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0")
	}

	if err := c.Mail.validate(); err != nil {
		return fmt.Errorf("mail: %w", err)
	}

	if err := c.Analytics.validate(); err != nil {
		return fmt.Errorf("analytics: %w", err)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}

func (m *MailConfig) validate() error {
	m.Provider = strings.ToLower(strings.TrimSpace(m.Provider))
	switch m.Provider {
	case MailProviderConsole:
	case MailProviderSendGrid:
		if m.SendGridAPIKey == "" {
			return fmt.Errorf("sendgrid_api_key is required for provider %q", m.Provider)
		}
	default:
		return fmt.Errorf("unknown provider %q", m.Provider)
	}
	if !strings.Contains(m.FromAddress, "@") {
		return fmt.Errorf("from_address %q is not an email address", m.FromAddress)
	}
	m.AppURL = strings.TrimRight(m.AppURL, "/")
	return nil
}

func (a *AnalyticsConfig) validate() error {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", a.Timezone, err)
	}
	a.Location = loc
	return nil
}
