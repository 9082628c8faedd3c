package domain

import (
	"time"

	"github.com/google/uuid"
)

// List is an ordered column on a board.
type List struct {
	ID        uuid.UUID
	BoardID   uuid.UUID
	Title     string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Task is a card inside a list. BoardID always equals the board of ListID.
type Task struct {
	ID          uuid.UUID
	ListID      uuid.UUID
	BoardID     uuid.UUID
	Title       string
	Description string
	Position    int
	Priority    Priority
	DueDate     *time.Time
	CreatedBy   uuid.UUID
	CreatorName string    // hydrated
	Assignees   []UserRef // hydrated
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AssigneeIDs returns the ids of the task's assignees in stored order.
func (t *Task) AssigneeIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(t.Assignees))
	for i, a := range t.Assignees {
		ids[i] = a.ID
	}
	return ids
}

// HasAssignee reports whether userID is assigned to the task.
func (t *Task) HasAssignee(userID uuid.UUID) bool {
	for _, a := range t.Assignees {
		if a.ID == userID {
			return true
		}
	}
	return false
}

// TaskUpdateParams holds a partial task update. Nil fields are left unchanged;
// ClearDueDate removes the due date and takes precedence over DueDate.
type TaskUpdateParams struct {
	Title        *string
	Description  *string
	Priority     *Priority
	DueDate      *time.Time
	ClearDueDate bool
}

// IsEmpty reports whether no field is set.
func (p TaskUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil && p.DueDate == nil && !p.ClearDueDate
}
