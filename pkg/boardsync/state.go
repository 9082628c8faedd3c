// Package boardsync keeps a client-side copy of one board in step with the
// server's websocket events.
//
// A State is seeded from the REST board snapshot and then fed every envelope
// received on the board room. Task and list deltas are applied by identity,
// so a redelivered event leaves the state unchanged.
package boardsync

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/transport/dto"
)

// ErrUnknownTask is returned by MoveLocal for a task not held in the state.
var ErrUnknownTask = errors.New("boardsync: unknown task")

// ErrUnknownList is returned by MoveLocal for a destination list not held in the state.
var ErrUnknownList = errors.New("boardsync: unknown list")

// State is a concurrency-safe view of a single board.
type State struct {
	mu      sync.RWMutex
	board   dto.Board
	members []dto.Member
	lists   []dto.List
	tasks   map[uuid.UUID][]dto.Task
	online  []dto.Presence
}

// NewState builds a view from a board snapshot.
func NewState(detail dto.BoardDetail) *State {
	s := &State{
		board:   detail.Board,
		members: append([]dto.Member(nil), detail.Members...),
		lists:   append([]dto.List(nil), detail.Lists...),
		tasks:   make(map[uuid.UUID][]dto.Task, len(detail.Lists)),
	}
	sortLists(s.lists)
	for _, l := range s.lists {
		s.tasks[l.ID] = nil
	}
	for _, t := range detail.Tasks {
		s.tasks[t.ListID] = append(s.tasks[t.ListID], t)
	}
	for id := range s.tasks {
		sortTasks(s.tasks[id])
	}
	return s
}

// Board returns the board header.
func (s *State) Board() dto.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board
}

// Members returns a copy of the board's members.
func (s *State) Members() []dto.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dto.Member(nil), s.members...)
}

// Lists returns a copy of the lists ordered by position.
func (s *State) Lists() []dto.List {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dto.List(nil), s.lists...)
}

// Tasks returns a copy of a list's tasks ordered by position.
func (s *State) Tasks(listID uuid.UUID) []dto.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dto.Task(nil), s.tasks[listID]...)
}

// OnlineUsers returns the users currently present on the board, one entry per user.
func (s *State) OnlineUsers() []dto.Presence {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dto.Presence(nil), s.online...)
}

// MoveLocal places a task at index in the destination list before the server
// confirms the move. The matching task:moved event later overwrites the
// task's position with the authoritative one.
func (s *State) MoveLocal(taskID, destListID uuid.UUID, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[destListID]; !ok {
		return ErrUnknownList
	}
	task, ok := s.removeTask(taskID)
	if !ok {
		return ErrUnknownTask
	}

	dest := s.tasks[destListID]
	if index < 0 {
		index = 0
	}
	if index > len(dest) {
		index = len(dest)
	}
	task.ListID = destListID

	out := make([]dto.Task, 0, len(dest)+1)
	out = append(out, dest[:index]...)
	out = append(out, task)
	out = append(out, dest[index:]...)
	s.tasks[destListID] = out
	return nil
}

// Apply folds one server event into the state. Events the view does not
// track are ignored; a payload that fails to decode is an error.
func (s *State) Apply(env dto.Envelope) error {
	switch domain.EventName(env.Event) {
	case domain.EventTaskCreated, domain.EventTaskUpdated:
		var p dto.TaskPayload
		if err := decode(env, &p); err != nil {
			return err
		}
		s.putTask(p.Task)

	case domain.EventTaskMoved:
		var p dto.TaskMovedPayload
		if err := decode(env, &p); err != nil {
			return err
		}
		s.moveTask(p)

	case domain.EventTaskDeleted:
		var p dto.TaskDeletedPayload
		if err := decode(env, &p); err != nil {
			return err
		}
		s.mu.Lock()
		s.removeTask(p.TaskID)
		s.mu.Unlock()

	case domain.EventListCreated, domain.EventListUpdated:
		var p dto.ListPayload
		if err := decode(env, &p); err != nil {
			return err
		}
		s.putList(p.List)

	case domain.EventListDeleted:
		var p dto.ListDeletedPayload
		if err := decode(env, &p); err != nil {
			return err
		}
		s.deleteList(p.ListID)

	case domain.EventListsReordered:
		var p dto.ListsReorderedPayload
		if err := decode(env, &p); err != nil {
			return err
		}
		for _, l := range p.Lists {
			s.putList(l)
		}

	case domain.EventBoardJoined:
		var p dto.BoardJoinedPayload
		if err := decode(env, &p); err != nil {
			return err
		}
		s.mu.Lock()
		s.online = s.online[:0]
		for _, u := range p.OnlineUsers {
			s.addOnline(u)
		}
		s.mu.Unlock()

	case domain.EventUserOnline:
		var p dto.Presence
		if err := decode(env, &p); err != nil {
			return err
		}
		s.mu.Lock()
		s.addOnline(p)
		s.mu.Unlock()

	case domain.EventUserOffline:
		var p dto.Presence
		if err := decode(env, &p); err != nil {
			return err
		}
		s.mu.Lock()
		out := s.online[:0]
		for _, u := range s.online {
			if u.UserID != p.UserID {
				out = append(out, u)
			}
		}
		s.online = out
		s.mu.Unlock()
	}
	return nil
}

func (s *State) putTask(t dto.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeTask(t.ID)
	s.tasks[t.ListID] = append(s.tasks[t.ListID], t)
	sortTasks(s.tasks[t.ListID])
}

// ConfirmMove folds the server's response to this client's own move request
// into the state. It applies the same placement as the task:moved broadcast,
// so whichever of the two arrives second is a no-op.
func (s *State) ConfirmMove(task dto.Task) {
	s.moveTask(dto.TaskMovedPayload{
		Task:        task,
		ToListID:    task.ListID,
		NewPosition: task.Position,
	})
}

// moveTask mirrors the server's insert: siblings at or after the new position
// in the destination list move up by one. The move is skipped only when the
// task already sits at its final place and no sibling shares that position.
func (s *State) moveTask(p dto.TaskMovedPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := p.Task
	task.ListID = p.ToListID
	task.Position = p.NewPosition

	if s.placed(task) {
		return
	}

	s.removeTask(task.ID)
	dest := s.tasks[p.ToListID]
	for i := range dest {
		if dest[i].Position >= task.Position {
			dest[i].Position++
		}
	}
	s.tasks[p.ToListID] = append(dest, task)
	sortTasks(s.tasks[p.ToListID])
}

// placed reports whether task is already applied at its position with no
// sibling colliding on it. Callers hold mu.
func (s *State) placed(task dto.Task) bool {
	found := false
	for _, cur := range s.tasks[task.ListID] {
		if cur.ID == task.ID {
			if cur.Position != task.Position || !cur.UpdatedAt.Equal(task.UpdatedAt) {
				return false
			}
			found = true
			continue
		}
		if cur.Position == task.Position {
			return false
		}
	}
	return found
}

// removeTask drops a task from whichever list holds it. Callers hold mu.
func (s *State) removeTask(id uuid.UUID) (dto.Task, bool) {
	for listID, tasks := range s.tasks {
		for i, t := range tasks {
			if t.ID != id {
				continue
			}
			s.tasks[listID] = append(tasks[:i:i], tasks[i+1:]...)
			return t, true
		}
	}
	return dto.Task{}, false
}

func (s *State) putList(l dto.List) {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.lists {
		if s.lists[i].ID == l.ID {
			s.lists[i] = l
			replaced = true
			break
		}
	}
	if !replaced {
		s.lists = append(s.lists, l)
	}
	if _, ok := s.tasks[l.ID]; !ok {
		s.tasks[l.ID] = nil
	}
	sortLists(s.lists)
}

func (s *State) deleteList(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.lists[:0]
	for _, l := range s.lists {
		if l.ID != id {
			out = append(out, l)
		}
	}
	s.lists = out
	delete(s.tasks, id)
}

// addOnline appends a user unless already present. Callers hold mu.
func (s *State) addOnline(p dto.Presence) {
	for _, u := range s.online {
		if u.UserID == p.UserID {
			return
		}
	}
	s.online = append(s.online, p)
}

func decode(env dto.Envelope, v any) error {
	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("boardsync: decode %s: %w", env.Event, err)
	}
	return nil
}

func sortTasks(tasks []dto.Task) {
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Position < tasks[j].Position })
}

func sortLists(lists []dto.List) {
	sort.SliceStable(lists, func(i, j int) bool { return lists[i].Position < lists[j].Position })
}
