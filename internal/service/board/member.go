package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

// AddMember adds the user registered under Email to the board. Admin only.
// An unknown email is domain.ErrNotFound; an existing member is
// domain.ErrConflict.
func (s *Service) AddMember(ctx context.Context, input AddMemberInput) (*domain.Member, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.access.RequireAdmin(ctx, input.BoardID, userID); err != nil {
		return nil, err
	}

	role := domain.RoleMember
	if input.Role != nil {
		role = *input.Role
	}

	invitee, err := s.users.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("no user with that email: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	var member *domain.Member
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.boards.AddMember(txCtx, input.BoardID, invitee.ID, role); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("user is already a member: %w", domain.ErrConflict)
			}
			return fmt.Errorf("add member: %w", err)
		}
		var err error
		member, err = s.boards.GetMember(txCtx, input.BoardID, invitee.ID)
		if err != nil {
			return fmt.Errorf("reload member: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "board member added",
		slog.String("user_id", userID.String()),
		slog.String("board_id", input.BoardID.String()),
		slog.String("member_id", invitee.ID.String()),
		slog.String("role", role.String()),
	)

	return member, nil
}
