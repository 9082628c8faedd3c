package task

import (
	"context"
	"sync"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

var _ activityRecorder = &activityRecorderMock{}

type activityRecorderMock struct {
	RecordFunc func(ctx context.Context, e domain.ActivityEntry)

	calls struct {
		Record []struct {
			Ctx context.Context
			E   domain.ActivityEntry
		}
	}
	lockRecord sync.RWMutex
}

func (mock *activityRecorderMock) Record(ctx context.Context, e domain.ActivityEntry) {
	if mock.RecordFunc == nil {
		panic("activityRecorderMock.RecordFunc: method is nil but activityRecorder.Record was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.ActivityEntry
	}{Ctx: ctx, E: e}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	mock.RecordFunc(ctx, e)
}

func (mock *activityRecorderMock) RecordCalls() []struct {
	Ctx context.Context
	E   domain.ActivityEntry
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
