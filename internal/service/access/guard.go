// Package access answers board membership questions for services and the
// realtime hub.
package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

type memberRepo interface {
	GetMember(ctx context.Context, boardID, userID uuid.UUID) (*domain.Member, error)
}

// Guard checks a user's membership and role on a board.
type Guard struct {
	members memberRepo
}

// NewGuard creates a Guard backed by the membership store.
func NewGuard(members memberRepo) *Guard {
	return &Guard{members: members}
}

// RequireMember returns userID's membership on boardID. A missing membership,
// including one on a board that does not exist, is domain.ErrForbidden.
func (g *Guard) RequireMember(ctx context.Context, boardID, userID uuid.UUID) (*domain.Member, error) {
	m, err := g.members.GetMember(ctx, boardID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("not a member of board %s: %w", boardID, domain.ErrForbidden)
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return m, nil
}

// RequireAdmin is RequireMember plus the admin role.
func (g *Guard) RequireAdmin(ctx context.Context, boardID, userID uuid.UUID) (*domain.Member, error) {
	m, err := g.RequireMember(ctx, boardID, userID)
	if err != nil {
		return nil, err
	}
	if !m.IsAdmin() {
		return nil, fmt.Errorf("admin role required on board %s: %w", boardID, domain.ErrForbidden)
	}
	return m, nil
}
