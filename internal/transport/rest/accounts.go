package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
	"github.com/heartmarshall/travelpath-backend/internal/service/account"
	"github.com/heartmarshall/travelpath-backend/pkg/ctxutil"
)

// accountService defines the account operations needed by AccountHandler.
type accountService interface {
	Register(ctx context.Context, input account.RegisterInput) (string, error)
	VerifyEmail(ctx context.Context, token string) (string, error)
	Login(ctx context.Context, input account.LoginInput) (string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, input account.ResetPasswordInput) (string, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListAccounts(ctx context.Context) ([]domain.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

// AccountHandler serves authentication and account endpoints.
type AccountHandler struct {
	svc accountService
	log *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc accountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: logger.With("handler", "account")}
}

type signupRequest struct {
	Email           string `json:"email"`
	Name            string `json:"name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	StoreID         string `json:"storeId"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type verifyTokenResponse struct {
	Valid bool              `json:"valid"`
	User  tokenUserResponse `json:"user"`
}

type tokenUserResponse struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// SignUp handles POST /auth/signup.
func (h *AccountHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	msg, err := h.svc.Register(r.Context(), account.RegisterInput{
		Email:           req.Email,
		Name:            req.Name,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Store:           req.StoreID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: msg})
}

// SignIn handles POST /auth/signin.
func (h *AccountHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	token, err := h.svc.Login(r.Context(), account.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// Verify handles GET /auth/verify?token=.
func (h *AccountHandler) Verify(w http.ResponseWriter, r *http.Request) {
	msg, err := h.svc.VerifyEmail(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

// ForgotPassword handles POST /auth/forgot-password.
func (h *AccountHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	msg, err := h.svc.ForgotPassword(r.Context(), req.Email)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

// ResetPassword handles POST /auth/reset-password.
func (h *AccountHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	msg, err := h.svc.ResetPassword(r.Context(), account.ResetPasswordInput{
		Token:           req.Token,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

// VerifyToken handles POST /auth/jwt/verify-token. The auth middleware has
// already validated the bearer token.
func (h *AccountHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	writeJSON(w, http.StatusOK, verifyTokenResponse{
		Valid: true,
		User:  tokenUserResponse{ID: userID.String(), Role: ctxutil.UserRoleFromCtx(r.Context())},
	})
}

// List handles GET /auth.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListAccounts(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]accountResponse, 0, len(users))
	for i := range users {
		out = append(out, toAccountResponse(&users[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /auth/search/{id}.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(chi.URLParam(r, "id"), "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u, err := h.svc.GetAccount(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(u))
}

// Delete handles DELETE /account/{id}.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(chi.URLParam(r, "id"), "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteAccount(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
