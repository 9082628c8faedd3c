package dto

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// Envelope frames every websocket message in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// NewEnvelope marshals data under the given event name.
func NewEnvelope(event domain.EventName, data any) (Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s payload: %w", event, err)
	}
	return Envelope{Event: string(event), Data: raw}, nil
}

// Client → server payloads.

type BoardRef struct {
	BoardID uuid.UUID `json:"boardId"`
}

type TaskViewing struct {
	BoardID  uuid.UUID `json:"boardId"`
	TaskID   uuid.UUID `json:"taskId"`
	UserID   uuid.UUID `json:"userId,omitempty"`
	UserName string    `json:"userName,omitempty"`
}

// Server → client payloads.

type TaskPayload struct {
	Task Task `json:"task"`
}

type TaskMovedPayload struct {
	Task        Task      `json:"task"`
	FromListID  uuid.UUID `json:"fromListId"`
	ToListID    uuid.UUID `json:"toListId"`
	NewPosition int       `json:"newPosition"`
}

type TaskDeletedPayload struct {
	TaskID uuid.UUID `json:"taskId"`
}

type ListPayload struct {
	List List `json:"list"`
}

type ListDeletedPayload struct {
	ListID uuid.UUID `json:"listId"`
}

type ListsReorderedPayload struct {
	Lists []List `json:"lists"`
}

// Presence is one online connection's user.
type Presence struct {
	UserID   uuid.UUID `json:"userId"`
	UserName string    `json:"userName"`
}

type BoardJoinedPayload struct {
	BoardID     uuid.UUID  `json:"boardId"`
	OnlineUsers []Presence `json:"onlineUsers"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// FromBoardEvent renders a committed mutation as a websocket envelope.
func FromBoardEvent(ev domain.BoardEvent) (Envelope, error) {
	var data any
	switch ev.Name {
	case domain.EventTaskCreated, domain.EventTaskUpdated:
		data = TaskPayload{Task: FromTask(ev.Task)}
	case domain.EventTaskMoved:
		data = TaskMovedPayload{
			Task:        FromTask(ev.Task),
			FromListID:  ev.FromListID,
			ToListID:    ev.ToListID,
			NewPosition: ev.NewPosition,
		}
	case domain.EventTaskDeleted:
		data = TaskDeletedPayload{TaskID: ev.DeletedID}
	case domain.EventListCreated, domain.EventListUpdated:
		data = ListPayload{List: FromList(ev.List)}
	case domain.EventListDeleted:
		data = ListDeletedPayload{ListID: ev.DeletedID}
	case domain.EventListsReordered:
		data = ListsReorderedPayload{Lists: FromLists(ev.Lists)}
	default:
		return Envelope{}, fmt.Errorf("unsupported board event %q", ev.Name)
	}
	return NewEnvelope(ev.Name, data)
}
