package domain

import "github.com/google/uuid"

// EventName identifies a real-time event exchanged on a board room.
type EventName string

// Server → client entity deltas.
const (
	EventListCreated    EventName = "list:created"
	EventListUpdated    EventName = "list:updated"
	EventListDeleted    EventName = "list:deleted"
	EventListsReordered EventName = "lists:reordered"
	EventTaskCreated    EventName = "task:created"
	EventTaskUpdated    EventName = "task:updated"
	EventTaskDeleted    EventName = "task:deleted"
	EventTaskMoved      EventName = "task:moved"
)

// Presence and room control.
const (
	EventJoinBoard   EventName = "join:board"
	EventLeaveBoard  EventName = "leave:board"
	EventTaskViewing EventName = "task:viewing"
	EventBoardJoined EventName = "board:joined"
	EventUserOnline  EventName = "user:online"
	EventUserOffline EventName = "user:offline"
	EventError       EventName = "error"
)

// BoardEvent is an entity delta produced by a committed mutation.
// Only the fields relevant to Name are set.
type BoardEvent struct {
	Name    EventName
	BoardID uuid.UUID

	Task  *Task
	List  *List
	Lists []List

	// Id of a deleted task or list.
	DeletedID uuid.UUID

	// task:moved only.
	FromListID  uuid.UUID
	ToListID    uuid.UUID
	NewPosition int
}
