package list

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

const maxTitleLen = 100

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

func requireID(errs []domain.FieldError, field string, id uuid.UUID) []domain.FieldError {
	if id == uuid.Nil {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	return errs
}

func asError(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateListInput holds the parameters for creating a list.
type CreateListInput struct {
	BoardID uuid.UUID
	Title   string
}

// Validate checks all fields and collects all errors.
func (i CreateListInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "boardId", i.BoardID)
	errs = validateTitle(errs, i.Title)
	return asError(errs)
}

// UpdateListInput renames a list. A nil Title leaves the list unchanged.
type UpdateListInput struct {
	BoardID uuid.UUID
	ListID  uuid.UUID
	Title   *string
}

// Validate checks all fields and collects all errors.
func (i UpdateListInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "boardId", i.BoardID)
	errs = requireID(errs, "listId", i.ListID)
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	return asError(errs)
}

// ReorderListsInput assigns positions to a board's lists. Items are applied
// as given: ids not on the board are skipped and duplicate positions are
// accepted.
type ReorderListsInput struct {
	BoardID uuid.UUID
	Items   []domain.ReorderItem
}

// Validate checks all fields and collects all errors.
func (i ReorderListsInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "boardId", i.BoardID)
	if len(i.Items) == 0 {
		errs = append(errs, domain.FieldError{Field: "lists", Message: "required"})
	}
	for _, it := range i.Items {
		if it.ID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "lists.id", Message: "required"})
			break
		}
		if it.Position < 0 {
			errs = append(errs, domain.FieldError{Field: "lists.position", Message: "must be >= 0"})
			break
		}
	}
	return asError(errs)
}
