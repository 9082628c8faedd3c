package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultBoardColor is used when a board is created without a color.
const DefaultBoardColor = "#0052CC"

// Board is the top-level container of lists and tasks.
type Board struct {
	ID          uuid.UUID
	Title       string
	Description string
	Color       string
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BoardWithRole is a board as seen by one member.
type BoardWithRole struct {
	Board
	MyRole Role
}

// BoardSummary is a row of the caller's board list.
type BoardSummary struct {
	BoardWithRole
	OwnerName string
	ListCount int // computed
	TaskCount int // computed
}

// Member is a user's membership on a board.
type Member struct {
	BoardID   uuid.UUID
	UserID    uuid.UUID
	Name      string
	Email     string
	AvatarURL *string
	Role      Role
	JoinedAt  time.Time
}

// IsAdmin reports whether the member holds the admin role.
func (m Member) IsAdmin() bool { return m.Role == RoleAdmin }

// BoardDetail is the fully hydrated board snapshot returned by a board fetch.
// Lists and Tasks are sorted ascending by position.
type BoardDetail struct {
	BoardWithRole
	Lists   []List
	Tasks   []Task
	Members []Member
}

// BoardUpdateParams holds a partial board update. Nil fields are left unchanged.
type BoardUpdateParams struct {
	Title       *string
	Description *string
	Color       *string
}

// IsEmpty reports whether no field is set.
func (p BoardUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Color == nil
}
