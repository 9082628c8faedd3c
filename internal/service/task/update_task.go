package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

// UpdateTask applies a partial update. Omitted fields keep their values.
func (s *Service) UpdateTask(ctx context.Context, input UpdateTaskInput) (*domain.Task, error) {
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

	var updated *domain.Task
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.tasks.GetByID(txCtx, input.BoardID, input.TaskID); err != nil {
			return fmt.Errorf("get task: %w", err)
		}
		if err := s.tasks.Update(txCtx, input.TaskID, input.params()); err != nil {
			return fmt.Errorf("update task: %w", err)
		}
		if err := s.boards.Touch(txCtx, input.BoardID); err != nil {
			return fmt.Errorf("touch board: %w", err)
		}

		var err error
		updated, err = s.tasks.GetByID(txCtx, input.BoardID, input.TaskID)
		if err != nil {
			return fmt.Errorf("reload task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, userID, updated, domain.ActivityUpdated, nil)
	s.events.PublishEvent(domain.BoardEvent{Name: domain.EventTaskUpdated, BoardID: updated.BoardID, Task: updated})

	s.log.InfoContext(ctx, "task updated",
		slog.String("user_id", userID.String()),
		slog.String("task_id", updated.ID.String()),
	)

	return updated, nil
}
