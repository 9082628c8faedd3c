package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

// DeleteTask hard-deletes a task and its assignments. The activity entry
// keeps the title the task had at delete time.
func (s *Service) DeleteTask(ctx context.Context, boardID, taskID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if _, err := s.access.RequireMember(ctx, boardID, userID); err != nil {
		return err
	}

	var deleted *domain.Task
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		deleted, err = s.tasks.GetByID(txCtx, boardID, taskID)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}
		if err := s.tasks.Delete(txCtx, taskID); err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		if err := s.boards.Touch(txCtx, boardID); err != nil {
			return fmt.Errorf("touch board: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.record(ctx, userID, deleted, domain.ActivityDeleted, nil)
	s.events.PublishEvent(domain.BoardEvent{Name: domain.EventTaskDeleted, BoardID: boardID, DeletedID: taskID})

	s.log.InfoContext(ctx, "task deleted",
		slog.String("user_id", userID.String()),
		slog.String("task_id", taskID.String()),
	)

	return nil
}
