package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/sequencer"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

// moveOutcome carries what a committed move needs for activity and events.
type moveOutcome struct {
	task     *domain.Task
	noop     bool
	fromList *domain.List
	toList   *domain.List
}

// MoveTask places a task at DestIndex of DestListID, shifting the tail of
// the destination list. The shift and the placement commit together, with
// both lists locked for the duration.
//
// Moving a task to the index it already holds in its own list is a no-op:
// nothing is written, recorded or published.
func (s *Service) MoveTask(ctx context.Context, input MoveTaskInput) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.access.RequireMember(ctx, input.BoardID, userID); err != nil {
		return nil, err
	}

	crossList := input.SourceListID != input.DestListID

	var out moveOutcome
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.lists.Lock(txCtx, input.BoardID, input.SourceListID, input.DestListID); err != nil {
			return fmt.Errorf("lock lists: %w", err)
		}

		current, err := s.tasks.GetByID(txCtx, input.BoardID, input.TaskID)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}
		if current.ListID != input.SourceListID {
			return fmt.Errorf("task %s is not in list %s: %w", input.TaskID, input.SourceListID, domain.ErrNotFound)
		}

		dest, err := s.tasks.Slots(txCtx, input.DestListID)
		if err != nil {
			return fmt.Errorf("read list order: %w", err)
		}

		if !crossList && sequencer.IsNoopMove(dest, input.TaskID, input.DestIndex) {
			out = moveOutcome{task: current, noop: true}
			return nil
		}

		p := sequencer.InsertAt(sequencer.Without(dest, input.TaskID), input.DestIndex)
		if p.Shift {
			if err := s.tasks.ShiftTail(txCtx, input.DestListID, p.ShiftFrom, input.TaskID); err != nil {
				return fmt.Errorf("shift tail: %w", err)
			}
		}
		if err := s.tasks.SetPlacement(txCtx, input.TaskID, input.DestListID, p.Position); err != nil {
			return fmt.Errorf("place task: %w", err)
		}
		if err := s.boards.Touch(txCtx, input.BoardID); err != nil {
			return fmt.Errorf("touch board: %w", err)
		}

		if crossList {
			if out.fromList, err = s.lists.GetByID(txCtx, input.BoardID, input.SourceListID); err != nil {
				return fmt.Errorf("get source list: %w", err)
			}
			if out.toList, err = s.lists.GetByID(txCtx, input.BoardID, input.DestListID); err != nil {
				return fmt.Errorf("get destination list: %w", err)
			}
		}

		out.task, err = s.tasks.GetByID(txCtx, input.BoardID, input.TaskID)
		if err != nil {
			return fmt.Errorf("reload task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if out.noop {
		return out.task, nil
	}

	if crossList {
		s.record(ctx, userID, out.task, domain.ActivityMoved, map[string]any{
			"from": out.fromList.Title,
			"to":   out.toList.Title,
		})
	}
	s.events.PublishEvent(domain.BoardEvent{
		Name:        domain.EventTaskMoved,
		BoardID:     input.BoardID,
		Task:        out.task,
		FromListID:  input.SourceListID,
		ToListID:    input.DestListID,
		NewPosition: out.task.Position,
	})

	s.log.InfoContext(ctx, "task moved",
		slog.String("user_id", userID.String()),
		slog.String("task_id", input.TaskID.String()),
		slog.String("to_list_id", input.DestListID.String()),
		slog.Int("position", out.task.Position),
	)

	return out.task, nil
}
