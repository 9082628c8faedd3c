package list

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

// UpdateList renames a list. With no title given it returns the list as is.
func (s *Service) UpdateList(ctx context.Context, input UpdateListInput) (*domain.List, error) {
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

	if input.Title == nil {
		l, err := s.lists.GetByID(ctx, input.BoardID, input.ListID)
		if err != nil {
			return nil, fmt.Errorf("get list: %w", err)
		}
		return l, nil
	}

	var updated *domain.List
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.lists.GetByID(txCtx, input.BoardID, input.ListID); err != nil {
			return fmt.Errorf("get list: %w", err)
		}

		var err error
		updated, err = s.lists.UpdateTitle(txCtx, input.ListID, strings.TrimSpace(*input.Title))
		if err != nil {
			return fmt.Errorf("update list: %w", err)
		}
		if err := s.boards.Touch(txCtx, input.BoardID); err != nil {
			return fmt.Errorf("touch board: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, userID, updated, domain.ActivityUpdated)
	s.events.PublishEvent(domain.BoardEvent{Name: domain.EventListUpdated, BoardID: updated.BoardID, List: updated})

	s.log.InfoContext(ctx, "list updated",
		slog.String("user_id", userID.String()),
		slog.String("list_id", updated.ID.String()),
	)

	return updated, nil
}

// DeleteList removes a list together with its tasks. The activity entry
// keeps the list's title.
func (s *Service) DeleteList(ctx context.Context, boardID, listID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if _, err := s.access.RequireMember(ctx, boardID, userID); err != nil {
		return err
	}

	var deleted *domain.List
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		deleted, err = s.lists.GetByID(txCtx, boardID, listID)
		if err != nil {
			return fmt.Errorf("get list: %w", err)
		}
		if err := s.lists.Delete(txCtx, listID); err != nil {
			return fmt.Errorf("delete list: %w", err)
		}
		if err := s.boards.Touch(txCtx, boardID); err != nil {
			return fmt.Errorf("touch board: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.record(ctx, userID, deleted, domain.ActivityDeleted)
	s.events.PublishEvent(domain.BoardEvent{Name: domain.EventListDeleted, BoardID: boardID, DeletedID: listID})

	s.log.InfoContext(ctx, "list deleted",
		slog.String("user_id", userID.String()),
		slog.String("board_id", boardID.String()),
		slog.String("list_id", listID.String()),
	)

	return nil
}
