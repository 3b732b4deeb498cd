package account

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/travelpath-backend/internal/adapter/mail"
	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc                  func(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByIDFunc                 func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc              func(ctx context.Context, email string) (*domain.User, error)
	GetByVerificationTokenFunc  func(ctx context.Context, tokenHash string) (*domain.User, error)
	GetByResetTokenFunc         func(ctx context.Context, tokenHash string) (*domain.User, error)
	MarkVerifiedFunc            func(ctx context.Context, id uuid.UUID) error
	SetResetTokenFunc           func(ctx context.Context, id uuid.UUID, tokenHash string, expiry time.Time) error
	UpdatePasswordFunc          func(ctx context.Context, id uuid.UUID, passwordHash string) error
	ClearExpiredResetTokensFunc func(ctx context.Context, now time.Time) (int64, error)
	ListFunc                    func(ctx context.Context) ([]domain.User, error)
	DeleteFunc                  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create        []*domain.User
		MarkVerified  []uuid.UUID
		SetResetToken []struct {
			ID        uuid.UUID
			TokenHash string
			Expiry    time.Time
		}
		UpdatePassword []struct {
			ID           uuid.UUID
			PasswordHash string
		}
		Delete []uuid.UUID
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, u)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []*domain.User {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByVerificationToken(ctx context.Context, tokenHash string) (*domain.User, error) {
	if mock.GetByVerificationTokenFunc == nil {
		panic("userRepoMock.GetByVerificationTokenFunc: method is nil but userRepo.GetByVerificationToken was just called")
	}
	return mock.GetByVerificationTokenFunc(ctx, tokenHash)
}

func (mock *userRepoMock) GetByResetToken(ctx context.Context, tokenHash string) (*domain.User, error) {
	if mock.GetByResetTokenFunc == nil {
		panic("userRepoMock.GetByResetTokenFunc: method is nil but userRepo.GetByResetToken was just called")
	}
	return mock.GetByResetTokenFunc(ctx, tokenHash)
}

func (mock *userRepoMock) MarkVerified(ctx context.Context, id uuid.UUID) error {
	if mock.MarkVerifiedFunc == nil {
		panic("userRepoMock.MarkVerifiedFunc: method is nil but userRepo.MarkVerified was just called")
	}
	mock.lock.Lock()
	mock.calls.MarkVerified = append(mock.calls.MarkVerified, id)
	mock.lock.Unlock()
	return mock.MarkVerifiedFunc(ctx, id)
}

func (mock *userRepoMock) MarkVerifiedCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.MarkVerified
}

func (mock *userRepoMock) SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiry time.Time) error {
	if mock.SetResetTokenFunc == nil {
		panic("userRepoMock.SetResetTokenFunc: method is nil but userRepo.SetResetToken was just called")
	}
	mock.lock.Lock()
	mock.calls.SetResetToken = append(mock.calls.SetResetToken, struct {
		ID        uuid.UUID
		TokenHash string
		Expiry    time.Time
	}{id, tokenHash, expiry})
	mock.lock.Unlock()
	return mock.SetResetTokenFunc(ctx, id, tokenHash, expiry)
}

func (mock *userRepoMock) SetResetTokenCalls() []struct {
	ID        uuid.UUID
	TokenHash string
	Expiry    time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetResetToken
}

func (mock *userRepoMock) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	if mock.UpdatePasswordFunc == nil {
		panic("userRepoMock.UpdatePasswordFunc: method is nil but userRepo.UpdatePassword was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, struct {
		ID           uuid.UUID
		PasswordHash string
	}{id, passwordHash})
	mock.lock.Unlock()
	return mock.UpdatePasswordFunc(ctx, id, passwordHash)
}

func (mock *userRepoMock) UpdatePasswordCalls() []struct {
	ID           uuid.UUID
	PasswordHash string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdatePassword
}

func (mock *userRepoMock) ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	if mock.ClearExpiredResetTokensFunc == nil {
		panic("userRepoMock.ClearExpiredResetTokensFunc: method is nil but userRepo.ClearExpiredResetTokens was just called")
	}
	return mock.ClearExpiredResetTokensFunc(ctx, now)
}

func (mock *userRepoMock) List(ctx context.Context) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	return mock.ListFunc(ctx)
}

func (mock *userRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, id)
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *userRepoMock) DeleteCalls() []uuid.UUID {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	GenerateAccessTokenFunc  func(userID uuid.UUID, email, role string) (string, error)
	ValidateAccessTokenFunc  func(token string) (uuid.UUID, string, error)
	GenerateOneTimeTokenFunc func() (string, string, error)
}

func (mock *tokenManagerMock) GenerateAccessToken(userID uuid.UUID, email, role string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("tokenManagerMock.GenerateAccessTokenFunc: method is nil but tokenManager.GenerateAccessToken was just called")
	}
	return mock.GenerateAccessTokenFunc(userID, email, role)
}

func (mock *tokenManagerMock) ValidateAccessToken(token string) (uuid.UUID, string, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("tokenManagerMock.ValidateAccessTokenFunc: method is nil but tokenManager.ValidateAccessToken was just called")
	}
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *tokenManagerMock) GenerateOneTimeToken() (string, string, error) {
	if mock.GenerateOneTimeTokenFunc == nil {
		panic("tokenManagerMock.GenerateOneTimeTokenFunc: method is nil but tokenManager.GenerateOneTimeToken was just called")
	}
	return mock.GenerateOneTimeTokenFunc()
}

var _ sender = &senderMock{}

type senderMock struct {
	SendFunc func(ctx context.Context, msg *mail.Message) error

	calls struct {
		Send []*mail.Message
	}
	lock sync.RWMutex
}

func (mock *senderMock) Send(ctx context.Context, msg *mail.Message) error {
	mock.lock.Lock()
	mock.calls.Send = append(mock.calls.Send, msg)
	mock.lock.Unlock()
	if mock.SendFunc == nil {
		return nil
	}
	return mock.SendFunc(ctx, msg)
}

func (mock *senderMock) SendCalls() []*mail.Message {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Send
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls int
	lock  sync.Mutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.lock.Lock()
	mock.calls++
	mock.lock.Unlock()
	if mock.RunInTxFunc == nil {
		return fn(ctx)
	}
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() int {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls
}
