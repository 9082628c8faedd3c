package auth

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

const (
	minNameLen     = 2
	maxNameLen     = 50
	maxEmailLen    = 254
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt input limit
)

// RegisterInput holds parameters for signing up with email and password.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

func (i *RegisterInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if n := utf8.RuneCountInString(i.Name); n < minNameLen || n > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must be 2-50 characters"})
	}
	errs = validateEmail(errs, i.Email)

	if len(i.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "at least 6 characters"})
	} else if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for email + password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	errs = validateEmail(errs, i.Email)
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(errs []domain.FieldError, email string) []domain.FieldError {
	if email == "" {
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if len(email) > maxEmailLen {
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return errs
}
