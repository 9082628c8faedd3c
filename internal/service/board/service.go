// Package board implements board lifecycle and membership operations.
package board

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

type boardRepo interface {
	Create(ctx context.Context, b *domain.Board) (*domain.Board, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	Update(ctx context.Context, id uuid.UUID, params domain.BoardUpdateParams) (*domain.Board, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.BoardSummary, error)
	AddMember(ctx context.Context, boardID, userID uuid.UUID, role domain.Role) error
	GetMember(ctx context.Context, boardID, userID uuid.UUID) (*domain.Member, error)
	ListMembers(ctx context.Context, boardID uuid.UUID) ([]domain.Member, error)
}

type listRepo interface {
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]domain.List, error)
}

type taskRepo interface {
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]domain.Task, error)
}

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type accessGuard interface {
	RequireMember(ctx context.Context, boardID, userID uuid.UUID) (*domain.Member, error)
	RequireAdmin(ctx context.Context, boardID, userID uuid.UUID) (*domain.Member, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides board operations.
type Service struct {
	log    *slog.Logger
	boards boardRepo
	lists  listRepo
	tasks  taskRepo
	users  userRepo
	access accessGuard
	tx     txManager
}

// NewService creates a new board service.
func NewService(
	log *slog.Logger,
	boards boardRepo,
	lists listRepo,
	tasks taskRepo,
	users userRepo,
	access accessGuard,
	tx txManager,
) *Service {
	return &Service{
		log:    log.With("service", "board"),
		boards: boards,
		lists:  lists,
		tasks:  tasks,
		users:  users,
		access: access,
		tx:     tx,
	}
}
