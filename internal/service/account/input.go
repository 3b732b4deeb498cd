package account

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit
	maxNameLength     = 100
	maxEmailLength    = 254
)

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Email           string
	Name            string
	Password        string
	ConfirmPassword string
	Store           string
}

func (i *RegisterInput) normalize() {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.Name = strings.TrimSpace(i.Name)
	i.Store = domain.NormalizeStore(i.Store).String()
}

// Validate validates the registration input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateEmail(i.Email)...)

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	errs = append(errs, validatePassword(i.Password, i.ConfirmPassword)...)

	if i.Store != "" && !domain.Store(i.Store).IsValid() {
		errs = append(errs, domain.FieldError{Field: "store", Message: "must be an upper-case code of letters, digits or underscores"})
	}

	return domain.CheckFields(errs)
}

// LoginInput holds credentials for sign-in.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	return domain.CheckFields(errs)
}

// ResetPasswordInput holds parameters for completing a password reset.
type ResetPasswordInput struct {
	Token           string
	Password        string
	ConfirmPassword string
}

// Validate validates the reset password input.
func (i ResetPasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.Token == "" {
		errs = append(errs, domain.FieldError{Field: "token", Message: "required"})
	}
	errs = append(errs, validatePassword(i.Password, i.ConfirmPassword)...)

	return domain.CheckFields(errs)
}

func validateEmail(email string) []domain.FieldError {
	if email == "" {
		return []domain.FieldError{{Field: "email", Message: "required"}}
	}
	if len(email) > maxEmailLength {
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return []domain.FieldError{{Field: "email", Message: "invalid email format"}}
	}
	return nil
}

func validatePassword(password, confirm string) []domain.FieldError {
	var errs []domain.FieldError
	switch {
	case password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(password) < minPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	case len(password) > maxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at most 72 bytes"})
	}
	if password != confirm {
		errs = append(errs, domain.FieldError{Field: "confirmPassword", Message: "passwords do not match"})
	}
	return errs
}
