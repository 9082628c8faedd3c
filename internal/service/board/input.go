package board

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

const (
	maxTitleLen       = 100
	maxDescriptionLen = 500
	maxEmailLen       = 254
)

var colorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func validateTitle(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len([]rune(title)) > maxTitleLen {
		return append(errs, domain.FieldError{Field: "title", Message: "max 100 characters"})
	}
	return errs
}

func validateDescription(errs []domain.FieldError, description string) []domain.FieldError {
	if len([]rune(description)) > maxDescriptionLen {
		return append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}
	return errs
}

func validateColor(errs []domain.FieldError, color string) []domain.FieldError {
	if !colorRe.MatchString(color) {
		return append(errs, domain.FieldError{Field: "color", Message: "must be a hex color like #0052CC"})
	}
	return errs
}

func asError(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateBoardInput holds the parameters for creating a board.
type CreateBoardInput struct {
	Title       string
	Description string
	Color       *string // nil = domain.DefaultBoardColor
}

// Validate checks all fields and collects all errors.
func (i CreateBoardInput) Validate() error {
	var errs []domain.FieldError
	errs = validateTitle(errs, i.Title)
	errs = validateDescription(errs, i.Description)
	if i.Color != nil {
		errs = validateColor(errs, *i.Color)
	}
	return asError(errs)
}

// UpdateBoardInput holds a partial board update.
type UpdateBoardInput struct {
	BoardID     uuid.UUID
	Title       *string
	Description *string
	Color       *string
}

// Validate checks all fields and collects all errors.
func (i UpdateBoardInput) Validate() error {
	var errs []domain.FieldError
	if i.BoardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "boardId", Message: "required"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	if i.Description != nil {
		errs = validateDescription(errs, *i.Description)
	}
	if i.Color != nil {
		errs = validateColor(errs, *i.Color)
	}
	return asError(errs)
}

func (i UpdateBoardInput) params() domain.BoardUpdateParams {
	p := domain.BoardUpdateParams{Description: i.Description, Color: i.Color}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		p.Title = &title
	}
	return p
}

// AddMemberInput invites an existing user to a board by email.
type AddMemberInput struct {
	BoardID uuid.UUID
	Email   string
	Role    *domain.Role // nil = member
}

// Validate checks all fields and collects all errors.
func (i AddMemberInput) Validate() error {
	var errs []domain.FieldError
	if i.BoardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "boardId", Message: "required"})
	}
	email := normalizeEmail(i.Email)
	switch {
	case email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > maxEmailLen || !strings.Contains(email, "@"):
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be admin or member"})
	}
	return asError(errs)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
