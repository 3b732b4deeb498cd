package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an employee or administrator account.
type User struct {
	ID                uuid.UUID
	Email             string
	Name              string
	PasswordHash      string
	Role              UserRole
	Store             *Store
	IsVerified        bool
	VerificationToken *string // SHA-256 hex of the emailed token
	ResetToken        *string // SHA-256 hex of the emailed token
	ResetTokenExpiry  *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CanAccess reports whether the user may act on resources owned by ownerID.
func (u *User) CanAccess(ownerID uuid.UUID) bool {
	return u.Role.IsAdmin() || u.ID == ownerID
}

// HasValidResetToken returns true if a reset token is set and not expired at now.
func (u *User) HasValidResetToken(now time.Time) bool {
	return u.ResetToken != nil && u.ResetTokenExpiry != nil && u.ResetTokenExpiry.After(now)
}
