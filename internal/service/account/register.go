package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

// Register creates an unverified account and emails its verification link.
// The user row and the email share one transaction, so a failed send leaves
// no account behind. Returns ErrAlreadyExists if the email is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (string, error) {
	input.normalize()

	if err := input.Validate(); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("account.Register hash password: %w", err)
	}

	rawToken, tokenHash, err := s.tokens.GenerateOneTimeToken()
	if err != nil {
		return "", fmt.Errorf("account.Register generate token: %w", err)
	}

	newUser := &domain.User{
		ID:                uuid.New(),
		Email:             input.Email,
		Name:              input.Name,
		PasswordHash:      string(hash),
		Role:              domain.UserRoleUser,
		VerificationToken: &tokenHash,
	}
	if input.Store != "" {
		store := domain.Store(input.Store)
		newUser.Store = &store
	}

	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.users.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		msg, err := s.composer.Verification(u.Email, u.Name, rawToken)
		if err != nil {
			return fmt.Errorf("compose verification: %w", err)
		}
		if err := s.mailer.Send(txCtx, msg); err != nil {
			return fmt.Errorf("send verification: %w", err)
		}

		created = u
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return "", fmt.Errorf("account.Register: %w", domain.ErrAlreadyExists)
		}
		return "", fmt.Errorf("account.Register: %w", err)
	}

	s.log.InfoContext(ctx, "account registered",
		slog.String("user_id", created.ID.String()))

	return MsgVerificationSent, nil
}

// VerifyEmail marks the account owning token as verified.
func (s *Service) VerifyEmail(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.NewValidationError("token", "required")
	}

	u, err := s.users.GetByVerificationToken(ctx, hashToken(token))
	if err != nil {
		return "", fmt.Errorf("account.VerifyEmail: %w", err)
	}

	if err := s.users.MarkVerified(ctx, u.ID); err != nil {
		return "", fmt.Errorf("account.VerifyEmail: %w", err)
	}

	s.log.InfoContext(ctx, "account verified", slog.String("user_id", u.ID.String()))
	return MsgVerified, nil
}
