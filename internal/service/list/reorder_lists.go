package list

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/sequencer"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

// ReorderLists writes the given positions to the board's lists and
// broadcasts the resulting order. Items naming lists outside the board are
// skipped. Duplicate positions are stored as sent; the order among equal
// positions is then unspecified.
func (s *Service) ReorderLists(ctx context.Context, input ReorderListsInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}
	if _, err := s.access.RequireMember(ctx, input.BoardID, userID); err != nil {
		return err
	}

	var (
		lists   []domain.List
		applied int
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.boards.Lock(txCtx, input.BoardID); err != nil {
			return fmt.Errorf("lock board: %w", err)
		}

		current, err := s.lists.Slots(txCtx, input.BoardID)
		if err != nil {
			return fmt.Errorf("read board order: %w", err)
		}

		items := sequencer.Applicable(current, input.Items)
		applied = len(items)
		if applied == 0 {
			return nil
		}

		if err := s.lists.SetPositions(txCtx, input.BoardID, items); err != nil {
			return fmt.Errorf("set positions: %w", err)
		}
		if err := s.boards.Touch(txCtx, input.BoardID); err != nil {
			return fmt.Errorf("touch board: %w", err)
		}

		lists, err = s.lists.ListByBoard(txCtx, input.BoardID)
		if err != nil {
			return fmt.Errorf("reload lists: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if applied == 0 {
		return nil
	}

	s.events.PublishEvent(domain.BoardEvent{Name: domain.EventListsReordered, BoardID: input.BoardID, Lists: lists})

	s.log.InfoContext(ctx, "lists reordered",
		slog.String("user_id", userID.String()),
		slog.String("board_id", input.BoardID.String()),
		slog.Int("applied", applied),
		slog.Int("requested", len(input.Items)),
	)

	return nil
}
