package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityEntry is an immutable record of a mutation on a board.
// EntityTitle is a snapshot taken at the time of the mutation.
type ActivityEntry struct {
	ID          uuid.UUID
	BoardID     uuid.UUID
	UserID      uuid.UUID
	UserName    string // hydrated
	Action      ActivityAction
	EntityType  EntityType
	EntityID    uuid.UUID
	EntityTitle string
	Metadata    map[string]any
	CreatedAt   time.Time
}
