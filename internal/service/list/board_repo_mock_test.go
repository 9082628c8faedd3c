package list

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ boardRepo = &boardRepoMock{}

type boardRepoMock struct {
	LockFunc  func(ctx context.Context, id uuid.UUID) error
	TouchFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Lock []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Touch []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockLock  sync.RWMutex
	lockTouch sync.RWMutex
}

func (mock *boardRepoMock) Lock(ctx context.Context, id uuid.UUID) error {
	if mock.LockFunc == nil {
		panic("boardRepoMock.LockFunc: method is nil but boardRepo.Lock was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockLock.Lock()
	mock.calls.Lock = append(mock.calls.Lock, callInfo)
	mock.lockLock.Unlock()
	return mock.LockFunc(ctx, id)
}

func (mock *boardRepoMock) LockCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockLock.RLock()
	calls := mock.calls.Lock
	mock.lockLock.RUnlock()
	return calls
}

func (mock *boardRepoMock) Touch(ctx context.Context, id uuid.UUID) error {
	if mock.TouchFunc == nil {
		panic("boardRepoMock.TouchFunc: method is nil but boardRepo.Touch was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockTouch.Lock()
	mock.calls.Touch = append(mock.calls.Touch, callInfo)
	mock.lockTouch.Unlock()
	return mock.TouchFunc(ctx, id)
}

func (mock *boardRepoMock) TouchCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockTouch.RLock()
	calls := mock.calls.Touch
	mock.lockTouch.RUnlock()
	return calls
}
