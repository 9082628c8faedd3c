package board

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

var _ accessGuard = &accessGuardMock{}

type accessGuardMock struct {
	RequireAdminFunc  func(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) (*domain.Member, error)
	RequireMemberFunc func(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) (*domain.Member, error)

	calls struct {
		RequireAdmin []struct {
			Ctx     context.Context
			BoardID uuid.UUID
			UserID  uuid.UUID
		}
		RequireMember []struct {
			Ctx     context.Context
			BoardID uuid.UUID
			UserID  uuid.UUID
		}
	}
	lockRequireAdmin  sync.RWMutex
	lockRequireMember sync.RWMutex
}

func (mock *accessGuardMock) RequireAdmin(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) (*domain.Member, error) {
	if mock.RequireAdminFunc == nil {
		panic("accessGuardMock.RequireAdminFunc: method is nil but accessGuard.RequireAdmin was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
		UserID  uuid.UUID
	}{Ctx: ctx, BoardID: boardID, UserID: userID}
	mock.lockRequireAdmin.Lock()
	mock.calls.RequireAdmin = append(mock.calls.RequireAdmin, callInfo)
	mock.lockRequireAdmin.Unlock()
	return mock.RequireAdminFunc(ctx, boardID, userID)
}

func (mock *accessGuardMock) RequireAdminCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
	UserID  uuid.UUID
} {
	mock.lockRequireAdmin.RLock()
	calls := mock.calls.RequireAdmin
	mock.lockRequireAdmin.RUnlock()
	return calls
}

func (mock *accessGuardMock) RequireMember(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) (*domain.Member, error) {
	if mock.RequireMemberFunc == nil {
		panic("accessGuardMock.RequireMemberFunc: method is nil but accessGuard.RequireMember was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
		UserID  uuid.UUID
	}{Ctx: ctx, BoardID: boardID, UserID: userID}
	mock.lockRequireMember.Lock()
	mock.calls.RequireMember = append(mock.calls.RequireMember, callInfo)
	mock.lockRequireMember.Unlock()
	return mock.RequireMemberFunc(ctx, boardID, userID)
}

func (mock *accessGuardMock) RequireMemberCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
	UserID  uuid.UUID
} {
	mock.lockRequireMember.RLock()
	calls := mock.calls.RequireMember
	mock.lockRequireMember.RUnlock()
	return calls
}
