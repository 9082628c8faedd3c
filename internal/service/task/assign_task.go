package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

// AssignTask adds a board member to a task's assignees. Assigning a user who
// is already assigned changes nothing and returns the current task.
// An assignee who is not a board member is a validation error.
func (s *Service) AssignTask(ctx context.Context, input AssignInput) (*domain.Task, error) {
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

	var (
		task     *domain.Task
		assignee *domain.Member
		inserted bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.tasks.GetByID(txCtx, input.BoardID, input.TaskID); err != nil {
			return fmt.Errorf("get task: %w", err)
		}

		var err error
		assignee, err = s.boards.GetMember(txCtx, input.BoardID, input.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("userId", "user is not a board member")
			}
			return fmt.Errorf("get assignee membership: %w", err)
		}

		inserted, err = s.tasks.Assign(txCtx, input.TaskID, input.UserID)
		if err != nil {
			return fmt.Errorf("assign: %w", err)
		}
		if inserted {
			if err := s.boards.Touch(txCtx, input.BoardID); err != nil {
				return fmt.Errorf("touch board: %w", err)
			}
		}

		task, err = s.tasks.GetByID(txCtx, input.BoardID, input.TaskID)
		if err != nil {
			return fmt.Errorf("reload task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !inserted {
		return task, nil
	}

	s.record(ctx, userID, task, domain.ActivityAssigned, map[string]any{"assignee": assignee.Name})
	s.events.PublishEvent(domain.BoardEvent{Name: domain.EventTaskUpdated, BoardID: task.BoardID, Task: task})

	s.log.InfoContext(ctx, "task assigned",
		slog.String("user_id", userID.String()),
		slog.String("task_id", task.ID.String()),
		slog.String("assignee_id", input.UserID.String()),
	)

	return task, nil
}

// UnassignTask removes a user from a task's assignees. Removing a user who
// is not assigned is not an error.
func (s *Service) UnassignTask(ctx context.Context, input AssignInput) (*domain.Task, error) {
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

	var (
		task    *domain.Task
		removed bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.tasks.GetByID(txCtx, input.BoardID, input.TaskID); err != nil {
			return fmt.Errorf("get task: %w", err)
		}

		var err error
		removed, err = s.tasks.Unassign(txCtx, input.TaskID, input.UserID)
		if err != nil {
			return fmt.Errorf("unassign: %w", err)
		}
		if removed {
			if err := s.boards.Touch(txCtx, input.BoardID); err != nil {
				return fmt.Errorf("touch board: %w", err)
			}
		}

		task, err = s.tasks.GetByID(txCtx, input.BoardID, input.TaskID)
		if err != nil {
			return fmt.Errorf("reload task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if removed {
		s.events.PublishEvent(domain.BoardEvent{Name: domain.EventTaskUpdated, BoardID: task.BoardID, Task: task})
		s.log.InfoContext(ctx, "task unassigned",
			slog.String("user_id", userID.String()),
			slog.String("task_id", task.ID.String()),
			slog.String("assignee_id", input.UserID.String()),
		)
	}

	return task, nil
}
