package list

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

var _ listRepo = &listRepoMock{}

type listRepoMock struct {
	CreateFunc       func(ctx context.Context, l *domain.List) (*domain.List, error)
	DeleteFunc       func(ctx context.Context, listID uuid.UUID) error
	GetByIDFunc      func(ctx context.Context, boardID uuid.UUID, listID uuid.UUID) (*domain.List, error)
	ListByBoardFunc  func(ctx context.Context, boardID uuid.UUID) ([]domain.List, error)
	SetPositionsFunc func(ctx context.Context, boardID uuid.UUID, items []domain.ReorderItem) error
	SlotsFunc        func(ctx context.Context, boardID uuid.UUID) ([]domain.Slot, error)
	UpdateTitleFunc  func(ctx context.Context, listID uuid.UUID, title string) (*domain.List, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			L   *domain.List
		}
		Delete []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
		GetByID []struct {
			Ctx     context.Context
			BoardID uuid.UUID
			ListID  uuid.UUID
		}
		ListByBoard []struct {
			Ctx     context.Context
			BoardID uuid.UUID
		}
		SetPositions []struct {
			Ctx     context.Context
			BoardID uuid.UUID
			Items   []domain.ReorderItem
		}
		Slots []struct {
			Ctx     context.Context
			BoardID uuid.UUID
		}
		UpdateTitle []struct {
			Ctx    context.Context
			ListID uuid.UUID
			Title  string
		}
	}
	lockCreate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockListByBoard  sync.RWMutex
	lockSetPositions sync.RWMutex
	lockSlots        sync.RWMutex
	lockUpdateTitle  sync.RWMutex
}

func (mock *listRepoMock) Create(ctx context.Context, l *domain.List) (*domain.List, error) {
	if mock.CreateFunc == nil {
		panic("listRepoMock.CreateFunc: method is nil but listRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.List
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *listRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.List
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *listRepoMock) Delete(ctx context.Context, listID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("listRepoMock.DeleteFunc: method is nil but listRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{Ctx: ctx, ListID: listID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, listID)
}

func (mock *listRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *listRepoMock) GetByID(ctx context.Context, boardID uuid.UUID, listID uuid.UUID) (*domain.List, error) {
	if mock.GetByIDFunc == nil {
		panic("listRepoMock.GetByIDFunc: method is nil but listRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
		ListID  uuid.UUID
	}{Ctx: ctx, BoardID: boardID, ListID: listID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, boardID, listID)
}

func (mock *listRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
	ListID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *listRepoMock) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]domain.List, error) {
	if mock.ListByBoardFunc == nil {
		panic("listRepoMock.ListByBoardFunc: method is nil but listRepo.ListByBoard was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
	}{Ctx: ctx, BoardID: boardID}
	mock.lockListByBoard.Lock()
	mock.calls.ListByBoard = append(mock.calls.ListByBoard, callInfo)
	mock.lockListByBoard.Unlock()
	return mock.ListByBoardFunc(ctx, boardID)
}

func (mock *listRepoMock) ListByBoardCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
} {
	mock.lockListByBoard.RLock()
	calls := mock.calls.ListByBoard
	mock.lockListByBoard.RUnlock()
	return calls
}

func (mock *listRepoMock) SetPositions(ctx context.Context, boardID uuid.UUID, items []domain.ReorderItem) error {
	if mock.SetPositionsFunc == nil {
		panic("listRepoMock.SetPositionsFunc: method is nil but listRepo.SetPositions was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
		Items   []domain.ReorderItem
	}{Ctx: ctx, BoardID: boardID, Items: items}
	mock.lockSetPositions.Lock()
	mock.calls.SetPositions = append(mock.calls.SetPositions, callInfo)
	mock.lockSetPositions.Unlock()
	return mock.SetPositionsFunc(ctx, boardID, items)
}

func (mock *listRepoMock) SetPositionsCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
	Items   []domain.ReorderItem
} {
	mock.lockSetPositions.RLock()
	calls := mock.calls.SetPositions
	mock.lockSetPositions.RUnlock()
	return calls
}

func (mock *listRepoMock) Slots(ctx context.Context, boardID uuid.UUID) ([]domain.Slot, error) {
	if mock.SlotsFunc == nil {
		panic("listRepoMock.SlotsFunc: method is nil but listRepo.Slots was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
	}{Ctx: ctx, BoardID: boardID}
	mock.lockSlots.Lock()
	mock.calls.Slots = append(mock.calls.Slots, callInfo)
	mock.lockSlots.Unlock()
	return mock.SlotsFunc(ctx, boardID)
}

func (mock *listRepoMock) SlotsCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
} {
	mock.lockSlots.RLock()
	calls := mock.calls.Slots
	mock.lockSlots.RUnlock()
	return calls
}

func (mock *listRepoMock) UpdateTitle(ctx context.Context, listID uuid.UUID, title string) (*domain.List, error) {
	if mock.UpdateTitleFunc == nil {
		panic("listRepoMock.UpdateTitleFunc: method is nil but listRepo.UpdateTitle was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
		Title  string
	}{Ctx: ctx, ListID: listID, Title: title}
	mock.lockUpdateTitle.Lock()
	mock.calls.UpdateTitle = append(mock.calls.UpdateTitle, callInfo)
	mock.lockUpdateTitle.Unlock()
	return mock.UpdateTitleFunc(ctx, listID, title)
}

func (mock *listRepoMock) UpdateTitleCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
	Title  string
} {
	mock.lockUpdateTitle.RLock()
	calls := mock.calls.UpdateTitle
	mock.lockUpdateTitle.RUnlock()
	return calls
}
