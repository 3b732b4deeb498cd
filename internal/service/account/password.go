package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/travelpath-backend/internal/auth"
	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

var hashToken = auth.HashToken

// ForgotPassword emails a reset link when the address belongs to an account.
// The returned message is the same either way.
func (s *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if errs := validateEmail(email); len(errs) > 0 {
		return "", domain.NewValidationErrors(errs)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return MsgResetRequested, nil
		}
		return "", fmt.Errorf("account.ForgotPassword get user: %w", err)
	}

	rawToken, tokenHash, err := s.tokens.GenerateOneTimeToken()
	if err != nil {
		return "", fmt.Errorf("account.ForgotPassword generate token: %w", err)
	}

	expiry := s.now().Add(s.cfg.ResetTokenTTL)
	if err := s.users.SetResetToken(ctx, u.ID, tokenHash, expiry); err != nil {
		return "", fmt.Errorf("account.ForgotPassword store token: %w", err)
	}

	msg, err := s.composer.PasswordReset(u.Email, u.Name, rawToken, s.cfg.ResetTokenTTL)
	if err != nil {
		return "", fmt.Errorf("account.ForgotPassword compose: %w", err)
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return "", fmt.Errorf("account.ForgotPassword send: %w", err)
	}

	s.log.InfoContext(ctx, "password reset requested", slog.String("user_id", u.ID.String()))
	return MsgResetRequested, nil
}

// ResetPassword replaces the password of the account holding a valid reset token.
func (s *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) (string, error) {
	input.Token = strings.TrimSpace(input.Token)

	if err := input.Validate(); err != nil {
		return "", err
	}

	u, err := s.users.GetByResetToken(ctx, hashToken(input.Token))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.NewValidationError("token", "invalid or expired reset token")
		}
		return "", fmt.Errorf("account.ResetPassword get user: %w", err)
	}
	if !u.HasValidResetToken(s.now()) {
		return "", domain.NewValidationError("token", "invalid or expired reset token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("account.ResetPassword hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, u.ID, string(hash)); err != nil {
		return "", fmt.Errorf("account.ResetPassword: %w", err)
	}

	s.log.InfoContext(ctx, "password reset", slog.String("user_id", u.ID.String()))
	return MsgPasswordReset, nil
}

// CleanupExpiredResetTokens clears reset tokens whose expiry has passed.
// Returns the number of accounts touched.
func (s *Service) CleanupExpiredResetTokens(ctx context.Context) (int64, error) {
	n, err := s.users.ClearExpiredResetTokens(ctx, s.now())
	if err != nil {
		s.log.ErrorContext(ctx, "reset token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("account.CleanupExpiredResetTokens: %w", err)
	}

	if n > 0 {
		s.log.InfoContext(ctx, "cleared expired reset tokens", slog.Int64("count", n))
	}
	return n, nil
}
