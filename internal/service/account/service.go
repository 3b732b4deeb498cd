// Package account implements registration, authentication and account
// administration.
package account

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelpath-backend/internal/adapter/mail"
	"github.com/heartmarshall/travelpath-backend/internal/config"
	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

// Response messages returned to clients.
const (
	MsgVerificationSent = "Verification email sent! please activate your account"
	MsgVerified         = "User is now verified"
	MsgResetRequested   = "If an account with that email exists, we sent a password reset link."
	MsgPasswordReset    = "Password has been successfully reset"
)

// userRepo defines the user repository interface needed by the account service.
type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByVerificationToken(ctx context.Context, tokenHash string) (*domain.User, error)
	GetByResetToken(ctx context.Context, tokenHash string) (*domain.User, error)
	MarkVerified(ctx context.Context, id uuid.UUID) error
	SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiry time.Time) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// txManager defines the transaction manager interface needed by the account service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// tokenManager issues access tokens and one-time email tokens.
type tokenManager interface {
	GenerateAccessToken(userID uuid.UUID, email, role string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
	GenerateOneTimeToken() (raw string, hash string, err error)
}

// composer renders account emails.
type composer interface {
	Verification(to, name, token string) (*mail.Message, error)
	PasswordReset(to, name, token string, ttl time.Duration) (*mail.Message, error)
}

// sender delivers rendered email.
type sender interface {
	Send(ctx context.Context, msg *mail.Message) error
}

// Service implements account operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	tx       txManager
	tokens   tokenManager
	composer composer
	mailer   sender
	cfg      config.AuthConfig
	now      func() time.Time
}

// NewService creates a new account service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tx txManager,
	tokens tokenManager,
	composer composer,
	mailer sender,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "account"),
		users:    users,
		tx:       tx,
		tokens:   tokens,
		composer: composer,
		mailer:   mailer,
		cfg:      cfg,
		now:      time.Now,
	}
}
