// Package task implements task mutations: create, update, delete, move
// between positions and lists, and assignment.
package task

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

type taskRepo interface {
	GetByID(ctx context.Context, boardID, taskID uuid.UUID) (*domain.Task, error)
	Search(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, int, error)
	Slots(ctx context.Context, listID uuid.UUID) ([]domain.Slot, error)
	Create(ctx context.Context, t *domain.Task) error
	ShiftTail(ctx context.Context, listID uuid.UUID, from int, excludeID uuid.UUID) error
	SetPlacement(ctx context.Context, taskID, listID uuid.UUID, position int) error
	Update(ctx context.Context, taskID uuid.UUID, params domain.TaskUpdateParams) error
	Delete(ctx context.Context, taskID uuid.UUID) error
	Assign(ctx context.Context, taskID, userID uuid.UUID) (bool, error)
	Unassign(ctx context.Context, taskID, userID uuid.UUID) (bool, error)
}

type listRepo interface {
	GetByID(ctx context.Context, boardID, listID uuid.UUID) (*domain.List, error)
	Lock(ctx context.Context, boardID uuid.UUID, listIDs ...uuid.UUID) error
}

type boardRepo interface {
	Touch(ctx context.Context, id uuid.UUID) error
	GetMember(ctx context.Context, boardID, userID uuid.UUID) (*domain.Member, error)
}

type accessGuard interface {
	RequireMember(ctx context.Context, boardID, userID uuid.UUID) (*domain.Member, error)
}

type activityRecorder interface {
	Record(ctx context.Context, e domain.ActivityEntry)
}

type eventPublisher interface {
	PublishEvent(ev domain.BoardEvent)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultSearchLimit = 50
	MaxSearchLimit     = 100
)

// Service provides task operations.
type Service struct {
	log      *slog.Logger
	tasks    taskRepo
	lists    listRepo
	boards   boardRepo
	access   accessGuard
	activity activityRecorder
	events   eventPublisher
	tx       txManager
}

// NewService creates a new task service.
func NewService(
	log *slog.Logger,
	tasks taskRepo,
	lists listRepo,
	boards boardRepo,
	access accessGuard,
	activity activityRecorder,
	events eventPublisher,
	tx txManager,
) *Service {
	return &Service{
		log:      log.With("service", "task"),
		tasks:    tasks,
		lists:    lists,
		boards:   boards,
		access:   access,
		activity: activity,
		events:   events,
		tx:       tx,
	}
}

func (s *Service) record(ctx context.Context, userID uuid.UUID, t *domain.Task, action domain.ActivityAction, metadata map[string]any) {
	s.activity.Record(ctx, domain.ActivityEntry{
		BoardID:     t.BoardID,
		UserID:      userID,
		Action:      action,
		EntityType:  domain.EntityTypeTask,
		EntityID:    t.ID,
		EntityTitle: t.Title,
		Metadata:    metadata,
	})
}
