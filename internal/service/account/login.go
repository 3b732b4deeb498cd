package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

// Login authenticates with email and password and returns a signed access token.
// Returns ErrUnauthorized if the email is unknown or the password is wrong,
// ErrForbidden if the account has not been verified.
func (s *Service) Login(ctx context.Context, input LoginInput) (string, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return "", err
	}

	u, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", fmt.Errorf("account.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return "", domain.ErrUnauthorized
	}

	if !u.IsVerified {
		return "", fmt.Errorf("account.Login: email not verified: %w", domain.ErrForbidden)
	}

	token, err := s.tokens.GenerateAccessToken(u.ID, u.Email, u.Role.String())
	if err != nil {
		return "", fmt.Errorf("account.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", u.ID.String()))
	return token, nil
}

// ValidateToken validates an access token and returns the user ID and role.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	userID, role, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return userID, role, nil
}
