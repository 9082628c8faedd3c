package task

import (
	"context"
	"fmt"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

// SearchTasks finds tasks on a board whose title or description contains
// the search text, optionally restricted to one list, newest first.
func (s *Service) SearchTasks(ctx context.Context, input SearchInput) ([]domain.Task, domain.Pagination, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.Pagination{}, domain.ErrUnauthorized
	}
	if _, err := s.access.RequireMember(ctx, input.BoardID, userID); err != nil {
		return nil, domain.Pagination{}, err
	}

	filter := input.filter()
	tasks, total, err := s.tasks.Search(ctx, filter)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("search tasks: %w", err)
	}

	return tasks, domain.Pagination{Page: filter.Page.Number, Limit: filter.Page.Limit, Total: total}, nil
}
