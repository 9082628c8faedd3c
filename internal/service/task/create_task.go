package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/sequencer"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

// CreateTask appends a new task to the end of a list.
// Returns ErrNotFound if the list is not on the board.
func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
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

	priority := domain.PriorityMedium
	if input.Priority != nil {
		priority = *input.Priority
	}

	var created *domain.Task
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.lists.Lock(txCtx, input.BoardID, input.ListID); err != nil {
			return fmt.Errorf("lock list: %w", err)
		}

		siblings, err := s.tasks.Slots(txCtx, input.ListID)
		if err != nil {
			return fmt.Errorf("read list order: %w", err)
		}

		now := time.Now().UTC()
		t := &domain.Task{
			ID:          uuid.New(),
			ListID:      input.ListID,
			BoardID:     input.BoardID,
			Title:       strings.TrimSpace(input.Title),
			Description: input.Description,
			Position:    sequencer.Append(siblings),
			Priority:    priority,
			DueDate:     input.DueDate,
			CreatedBy:   userID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.tasks.Create(txCtx, t); err != nil {
			return fmt.Errorf("create task: %w", err)
		}
		if err := s.boards.Touch(txCtx, input.BoardID); err != nil {
			return fmt.Errorf("touch board: %w", err)
		}

		created, err = s.tasks.GetByID(txCtx, input.BoardID, t.ID)
		if err != nil {
			return fmt.Errorf("reload task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, userID, created, domain.ActivityCreated, nil)
	s.events.PublishEvent(domain.BoardEvent{Name: domain.EventTaskCreated, BoardID: created.BoardID, Task: created})

	s.log.InfoContext(ctx, "task created",
		slog.String("user_id", userID.String()),
		slog.String("board_id", created.BoardID.String()),
		slog.String("task_id", created.ID.String()),
		slog.Int("position", created.Position),
	)

	return created, nil
}
