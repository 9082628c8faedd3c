package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

// CreateBoard creates a board and makes the caller its admin.
func (s *Service) CreateBoard(ctx context.Context, input CreateBoardInput) (*domain.BoardWithRole, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	color := domain.DefaultBoardColor
	if input.Color != nil {
		color = *input.Color
	}

	now := time.Now().UTC()
	var created *domain.Board
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.boards.Create(txCtx, &domain.Board{
			ID:          uuid.New(),
			Title:       strings.TrimSpace(input.Title),
			Description: input.Description,
			Color:       color,
			OwnerID:     userID,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create board: %w", err)
		}
		if err := s.boards.AddMember(txCtx, created.ID, userID, domain.RoleAdmin); err != nil {
			return fmt.Errorf("add owner membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "board created",
		slog.String("user_id", userID.String()),
		slog.String("board_id", created.ID.String()),
	)

	return &domain.BoardWithRole{Board: *created, MyRole: domain.RoleAdmin}, nil
}

// ListBoards returns the caller's boards, most recently updated first.
func (s *Service) ListBoards(ctx context.Context) ([]domain.BoardSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	boards, err := s.boards.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	return boards, nil
}

// GetBoard returns the full board snapshot: lists and tasks sorted by
// position, and the member roster.
func (s *Service) GetBoard(ctx context.Context, boardID uuid.UUID) (*domain.BoardDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	me, err := s.access.RequireMember(ctx, boardID, userID)
	if err != nil {
		return nil, err
	}

	b, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("get board: %w", err)
	}
	lists, err := s.lists.ListByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("get lists: %w", err)
	}
	tasks, err := s.tasks.ListByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("get tasks: %w", err)
	}
	members, err := s.boards.ListMembers(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("get members: %w", err)
	}

	return &domain.BoardDetail{
		BoardWithRole: domain.BoardWithRole{Board: *b, MyRole: me.Role},
		Lists:         lists,
		Tasks:         tasks,
		Members:       members,
	}, nil
}

// UpdateBoard applies a partial update. Any member may edit board details.
func (s *Service) UpdateBoard(ctx context.Context, input UpdateBoardInput) (*domain.BoardWithRole, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	me, err := s.access.RequireMember(ctx, input.BoardID, userID)
	if err != nil {
		return nil, err
	}

	updated, err := s.boards.Update(ctx, input.BoardID, input.params())
	if err != nil {
		return nil, fmt.Errorf("update board: %w", err)
	}

	s.log.InfoContext(ctx, "board updated",
		slog.String("user_id", userID.String()),
		slog.String("board_id", input.BoardID.String()),
	)

	return &domain.BoardWithRole{Board: *updated, MyRole: me.Role}, nil
}

// DeleteBoard removes a board with everything on it. Admin only.
func (s *Service) DeleteBoard(ctx context.Context, boardID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if _, err := s.access.RequireAdmin(ctx, boardID, userID); err != nil {
		return err
	}

	if err := s.boards.Delete(ctx, boardID); err != nil {
		return fmt.Errorf("delete board: %w", err)
	}

	s.log.InfoContext(ctx, "board deleted",
		slog.String("user_id", userID.String()),
		slog.String("board_id", boardID.String()),
	)

	return nil
}
