package task

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

var _ boardRepo = &boardRepoMock{}

type boardRepoMock struct {
	GetMemberFunc func(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) (*domain.Member, error)
	TouchFunc     func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetMember []struct {
			Ctx     context.Context
			BoardID uuid.UUID
			UserID  uuid.UUID
		}
		Touch []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetMember sync.RWMutex
	lockTouch     sync.RWMutex
}

func (mock *boardRepoMock) GetMember(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) (*domain.Member, error) {
	if mock.GetMemberFunc == nil {
		panic("boardRepoMock.GetMemberFunc: method is nil but boardRepo.GetMember was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
		UserID  uuid.UUID
	}{Ctx: ctx, BoardID: boardID, UserID: userID}
	mock.lockGetMember.Lock()
	mock.calls.GetMember = append(mock.calls.GetMember, callInfo)
	mock.lockGetMember.Unlock()
	return mock.GetMemberFunc(ctx, boardID, userID)
}

func (mock *boardRepoMock) GetMemberCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
	UserID  uuid.UUID
} {
	mock.lockGetMember.RLock()
	calls := mock.calls.GetMember
	mock.lockGetMember.RUnlock()
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
