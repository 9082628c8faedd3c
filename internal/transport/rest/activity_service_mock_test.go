package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/activity"
)

var _ activityService = &activityServiceMock{}

type activityServiceMock struct {
	ListActivityFunc func(ctx context.Context, input activity.ListActivityInput) ([]domain.ActivityEntry, domain.Pagination, error)

	calls struct {
		ListActivity []struct {
			Ctx   context.Context
			Input activity.ListActivityInput
		}
	}
	lockListActivity sync.RWMutex
}

func (mock *activityServiceMock) ListActivity(ctx context.Context, input activity.ListActivityInput) ([]domain.ActivityEntry, domain.Pagination, error) {
	if mock.ListActivityFunc == nil {
		panic("activityServiceMock.ListActivityFunc: method is nil but activityService.ListActivity was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input activity.ListActivityInput
	}{Ctx: ctx, Input: input}
	mock.lockListActivity.Lock()
	mock.calls.ListActivity = append(mock.calls.ListActivity, callInfo)
	mock.lockListActivity.Unlock()
	return mock.ListActivityFunc(ctx, input)
}

func (mock *activityServiceMock) ListActivityCalls() []struct {
	Ctx   context.Context
	Input activity.ListActivityInput
} {
	mock.lockListActivity.RLock()
	calls := mock.calls.ListActivity
	mock.lockListActivity.RUnlock()
	return calls
}
