// Package list implements list mutations: create, rename, delete and bulk
// reorder.
package list

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

type listRepo interface {
	Create(ctx context.Context, l *domain.List) (*domain.List, error)
	GetByID(ctx context.Context, boardID, listID uuid.UUID) (*domain.List, error)
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]domain.List, error)
	Slots(ctx context.Context, boardID uuid.UUID) ([]domain.Slot, error)
	UpdateTitle(ctx context.Context, listID uuid.UUID, title string) (*domain.List, error)
	Delete(ctx context.Context, listID uuid.UUID) error
	SetPositions(ctx context.Context, boardID uuid.UUID, items []domain.ReorderItem) error
}

type boardRepo interface {
	Lock(ctx context.Context, id uuid.UUID) error
	Touch(ctx context.Context, id uuid.UUID) error
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

// Service provides list operations.
type Service struct {
	log      *slog.Logger
	lists    listRepo
	boards   boardRepo
	access   accessGuard
	activity activityRecorder
	events   eventPublisher
	tx       txManager
}

// NewService creates a new list service.
func NewService(
	log *slog.Logger,
	lists listRepo,
	boards boardRepo,
	access accessGuard,
	activity activityRecorder,
	events eventPublisher,
	tx txManager,
) *Service {
	return &Service{
		log:      log.With("service", "list"),
		lists:    lists,
		boards:   boards,
		access:   access,
		activity: activity,
		events:   events,
		tx:       tx,
	}
}

func (s *Service) record(ctx context.Context, userID uuid.UUID, l *domain.List, action domain.ActivityAction) {
	s.activity.Record(ctx, domain.ActivityEntry{
		BoardID:     l.BoardID,
		UserID:      userID,
		Action:      action,
		EntityType:  domain.EntityTypeList,
		EntityID:    l.ID,
		EntityTitle: l.Title,
	})
}
