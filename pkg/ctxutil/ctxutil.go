// Package ctxutil carries request-scoped identity through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

// AdminRole is the role claim that grants cross-account access.
const AdminRole = "ADMIN"

// Caller is the authenticated principal behind a request.
type Caller struct {
	ID   uuid.UUID
	Role string
}

type (
	callerKey    struct{}
	requestIDKey struct{}
)

// WithCaller attaches the authenticated caller to ctx.
func WithCaller(ctx context.Context, id uuid.UUID, role string) context.Context {
	return context.WithValue(ctx, callerKey{}, Caller{ID: id, Role: role})
}

// CallerFromCtx returns the caller, or false when none is attached or its ID is nil.
func CallerFromCtx(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(Caller)
	if !ok || c.ID == uuid.Nil {
		return Caller{}, false
	}
	return c, true
}

// UserIDFromCtx returns the caller's ID.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	c, ok := CallerFromCtx(ctx)
	return c.ID, ok
}

// UserRoleFromCtx returns the caller's role claim, or "".
func UserRoleFromCtx(ctx context.Context) string {
	c, _ := CallerFromCtx(ctx)
	return c.Role
}

// IsAdminCtx reports whether the caller holds AdminRole.
func IsAdminCtx(ctx context.Context) bool {
	return UserRoleFromCtx(ctx) == AdminRole
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request ID, or "".
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
