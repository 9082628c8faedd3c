// Package activity records and serves the per-board audit feed.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type activityRepo interface {
	Create(ctx context.Context, e domain.ActivityEntry) error
	ListByBoard(ctx context.Context, boardID uuid.UUID, page domain.Page) ([]domain.ActivityEntry, int, error)
}

type accessGuard interface {
	RequireMember(ctx context.Context, boardID, userID uuid.UUID) (*domain.Member, error)
}

// Service appends and lists activity entries.
type Service struct {
	log    *slog.Logger
	repo   activityRepo
	access accessGuard
	now    func() time.Time
}

// NewService creates a new activity service.
func NewService(log *slog.Logger, repo activityRepo, access accessGuard) *Service {
	return &Service{
		log:    log.With("service", "activity"),
		repo:   repo,
		access: access,
		now:    time.Now,
	}
}

// Record appends e with a fresh time-ordered id. It is best-effort: a
// failure is logged and never returned. Recording outlives cancellation of
// the caller's context.
func (s *Service) Record(ctx context.Context, e domain.ActivityEntry) {
	now := s.now().UTC()
	e.ID = uuid.UUID(ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()))
	e.CreatedAt = now

	if err := s.repo.Create(context.WithoutCancel(ctx), e); err != nil {
		s.log.WarnContext(ctx, "activity not recorded",
			slog.String("board_id", e.BoardID.String()),
			slog.String("action", e.Action.String()),
			slog.String("entity_id", e.EntityID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// ListActivityInput holds the parameters for reading a board's feed.
type ListActivityInput struct {
	BoardID uuid.UUID
	Page    int
	Limit   int
}

func (i *ListActivityInput) normalize() {
	if i.Page < 1 {
		i.Page = 1
	}
	if i.Limit <= 0 {
		i.Limit = DefaultLimit
	}
	if i.Limit > MaxLimit {
		i.Limit = MaxLimit
	}
}

// ListActivity returns one page of the board's feed, newest first.
func (s *Service) ListActivity(ctx context.Context, input ListActivityInput) ([]domain.ActivityEntry, domain.Pagination, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.Pagination{}, domain.ErrUnauthorized
	}
	if _, err := s.access.RequireMember(ctx, input.BoardID, userID); err != nil {
		return nil, domain.Pagination{}, err
	}

	input.normalize()
	entries, total, err := s.repo.ListByBoard(ctx, input.BoardID, domain.Page{Number: input.Page, Limit: input.Limit})
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("list activity: %w", err)
	}

	return entries, domain.Pagination{Page: input.Page, Limit: input.Limit, Total: total}, nil
}
