package task

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 5000
)

func validateTitle(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len([]rune(title)) > maxTitleLen {
		return append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	return errs
}

func validateDescription(errs []domain.FieldError, description string) []domain.FieldError {
	if len([]rune(description)) > maxDescriptionLen {
		return append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	return errs
}

func validatePriority(errs []domain.FieldError, p *domain.Priority) []domain.FieldError {
	if p != nil && !p.IsValid() {
		return append(errs, domain.FieldError{Field: "priority", Message: "must be one of low, medium, high"})
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
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateTaskInput holds the parameters for creating a task.
type CreateTaskInput struct {
	BoardID     uuid.UUID
	ListID      uuid.UUID
	Title       string
	Description string
	Priority    *domain.Priority // nil = medium
	DueDate     *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateTaskInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "boardId", i.BoardID)
	errs = requireID(errs, "listId", i.ListID)
	errs = validateTitle(errs, i.Title)
	errs = validateDescription(errs, i.Description)
	errs = validatePriority(errs, i.Priority)
	return asError(errs)
}

// UpdateTaskInput holds a partial task update. Nil fields keep their value.
type UpdateTaskInput struct {
	BoardID      uuid.UUID
	TaskID       uuid.UUID
	Title        *string
	Description  *string
	Priority     *domain.Priority
	DueDate      *time.Time
	ClearDueDate bool
}

// Validate checks all fields and collects all errors.
func (i UpdateTaskInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "boardId", i.BoardID)
	errs = requireID(errs, "taskId", i.TaskID)
	if i.params().IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	if i.Description != nil {
		errs = validateDescription(errs, *i.Description)
	}
	errs = validatePriority(errs, i.Priority)
	return asError(errs)
}

func (i UpdateTaskInput) params() domain.TaskUpdateParams {
	p := domain.TaskUpdateParams{
		Description:  i.Description,
		Priority:     i.Priority,
		DueDate:      i.DueDate,
		ClearDueDate: i.ClearDueDate,
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		p.Title = &title
	}
	return p
}

// MoveTaskInput places a task at DestIndex within DestListID.
// SourceListID must be the list the task currently belongs to.
type MoveTaskInput struct {
	BoardID      uuid.UUID
	TaskID       uuid.UUID
	SourceListID uuid.UUID
	DestListID   uuid.UUID
	DestIndex    int
}

// Validate checks all fields and collects all errors.
func (i MoveTaskInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "boardId", i.BoardID)
	errs = requireID(errs, "taskId", i.TaskID)
	errs = requireID(errs, "sourceListId", i.SourceListID)
	errs = requireID(errs, "destListId", i.DestListID)
	if i.DestIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "destIndex", Message: "must be >= 0"})
	}
	return asError(errs)
}

// AssignInput names a task and the user to add to or remove from it.
type AssignInput struct {
	BoardID uuid.UUID
	TaskID  uuid.UUID
	UserID  uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i AssignInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "boardId", i.BoardID)
	errs = requireID(errs, "taskId", i.TaskID)
	errs = requireID(errs, "userId", i.UserID)
	return asError(errs)
}

// SearchInput holds task search filters. Zero Page and Limit take defaults.
type SearchInput struct {
	BoardID uuid.UUID
	ListID  *uuid.UUID
	Search  string
	Page    int
	Limit   int
}

func (i SearchInput) filter() domain.TaskFilter {
	f := domain.TaskFilter{BoardID: i.BoardID, ListID: i.ListID, Page: domain.Page{Number: i.Page, Limit: i.Limit}}
	if f.Page.Number < 1 {
		f.Page.Number = 1
	}
	if f.Page.Limit <= 0 {
		f.Page.Limit = DefaultSearchLimit
	}
	if f.Page.Limit > MaxSearchLimit {
		f.Page.Limit = MaxSearchLimit
	}
	if q := strings.TrimSpace(i.Search); q != "" {
		f.Search = &q
	}
	return f
}
