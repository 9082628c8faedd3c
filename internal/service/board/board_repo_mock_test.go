package board

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

var _ boardRepo = &boardRepoMock{}

type boardRepoMock struct {
	AddMemberFunc   func(ctx context.Context, boardID uuid.UUID, userID uuid.UUID, role domain.Role) error
	CreateFunc      func(ctx context.Context, b *domain.Board) (*domain.Board, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	GetMemberFunc   func(ctx context.Context, boardID uuid.UUID, userID uuid.UUID) (*domain.Member, error)
	ListForUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.BoardSummary, error)
	ListMembersFunc func(ctx context.Context, boardID uuid.UUID) ([]domain.Member, error)
	UpdateFunc      func(ctx context.Context, id uuid.UUID, params domain.BoardUpdateParams) (*domain.Board, error)

	calls struct {
		AddMember []struct {
			Ctx     context.Context
			BoardID uuid.UUID
			UserID  uuid.UUID
			Role    domain.Role
		}
		Create []struct {
			Ctx context.Context
			B   *domain.Board
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetMember []struct {
			Ctx     context.Context
			BoardID uuid.UUID
			UserID  uuid.UUID
		}
		ListForUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListMembers []struct {
			Ctx     context.Context
			BoardID uuid.UUID
		}
		Update []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Params domain.BoardUpdateParams
		}
	}
	lockAddMember   sync.RWMutex
	lockCreate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockGetMember   sync.RWMutex
	lockListForUser sync.RWMutex
	lockListMembers sync.RWMutex
	lockUpdate      sync.RWMutex
}

func (mock *boardRepoMock) AddMember(ctx context.Context, boardID uuid.UUID, userID uuid.UUID, role domain.Role) error {
	if mock.AddMemberFunc == nil {
		panic("boardRepoMock.AddMemberFunc: method is nil but boardRepo.AddMember was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
		UserID  uuid.UUID
		Role    domain.Role
	}{Ctx: ctx, BoardID: boardID, UserID: userID, Role: role}
	mock.lockAddMember.Lock()
	mock.calls.AddMember = append(mock.calls.AddMember, callInfo)
	mock.lockAddMember.Unlock()
	return mock.AddMemberFunc(ctx, boardID, userID, role)
}

func (mock *boardRepoMock) AddMemberCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
	UserID  uuid.UUID
	Role    domain.Role
} {
	mock.lockAddMember.RLock()
	calls := mock.calls.AddMember
	mock.lockAddMember.RUnlock()
	return calls
}

func (mock *boardRepoMock) Create(ctx context.Context, b *domain.Board) (*domain.Board, error) {
	if mock.CreateFunc == nil {
		panic("boardRepoMock.CreateFunc: method is nil but boardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   *domain.Board
	}{Ctx: ctx, B: b}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *boardRepoMock) CreateCalls() []struct {
	Ctx context.Context
	B   *domain.Board
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *boardRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("boardRepoMock.DeleteFunc: method is nil but boardRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *boardRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *boardRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if mock.GetByIDFunc == nil {
		panic("boardRepoMock.GetByIDFunc: method is nil but boardRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *boardRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
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

func (mock *boardRepoMock) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.BoardSummary, error) {
	if mock.ListForUserFunc == nil {
		panic("boardRepoMock.ListForUserFunc: method is nil but boardRepo.ListForUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListForUser.Lock()
	mock.calls.ListForUser = append(mock.calls.ListForUser, callInfo)
	mock.lockListForUser.Unlock()
	return mock.ListForUserFunc(ctx, userID)
}

func (mock *boardRepoMock) ListForUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListForUser.RLock()
	calls := mock.calls.ListForUser
	mock.lockListForUser.RUnlock()
	return calls
}

func (mock *boardRepoMock) ListMembers(ctx context.Context, boardID uuid.UUID) ([]domain.Member, error) {
	if mock.ListMembersFunc == nil {
		panic("boardRepoMock.ListMembersFunc: method is nil but boardRepo.ListMembers was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
	}{Ctx: ctx, BoardID: boardID}
	mock.lockListMembers.Lock()
	mock.calls.ListMembers = append(mock.calls.ListMembers, callInfo)
	mock.lockListMembers.Unlock()
	return mock.ListMembersFunc(ctx, boardID)
}

func (mock *boardRepoMock) ListMembersCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
} {
	mock.lockListMembers.RLock()
	calls := mock.calls.ListMembers
	mock.lockListMembers.RUnlock()
	return calls
}

func (mock *boardRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.BoardUpdateParams) (*domain.Board, error) {
	if mock.UpdateFunc == nil {
		panic("boardRepoMock.UpdateFunc: method is nil but boardRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Params domain.BoardUpdateParams
	}{Ctx: ctx, Id: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *boardRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Params domain.BoardUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
