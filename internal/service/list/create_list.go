package list

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

// CreateList appends a new list to the right of the board's lists.
func (s *Service) CreateList(ctx context.Context, input CreateListInput) (*domain.List, error) {
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

	var created *domain.List
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.boards.Lock(txCtx, input.BoardID); err != nil {
			return fmt.Errorf("lock board: %w", err)
		}

		siblings, err := s.lists.Slots(txCtx, input.BoardID)
		if err != nil {
			return fmt.Errorf("read board order: %w", err)
		}

		now := time.Now().UTC()
		created, err = s.lists.Create(txCtx, &domain.List{
			ID:        uuid.New(),
			BoardID:   input.BoardID,
			Title:     strings.TrimSpace(input.Title),
			Position:  sequencer.Append(siblings),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create list: %w", err)
		}
		if err := s.boards.Touch(txCtx, input.BoardID); err != nil {
			return fmt.Errorf("touch board: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, userID, created, domain.ActivityCreated)
	s.events.PublishEvent(domain.BoardEvent{Name: domain.EventListCreated, BoardID: created.BoardID, List: created})

	s.log.InfoContext(ctx, "list created",
		slog.String("user_id", userID.String()),
		slog.String("board_id", created.BoardID.String()),
		slog.String("list_id", created.ID.String()),
		slog.Int("position", created.Position),
	)

	return created, nil
}
