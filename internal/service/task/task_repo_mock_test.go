package task

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	AssignFunc       func(ctx context.Context, taskID uuid.UUID, userID uuid.UUID) (bool, error)
	CreateFunc       func(ctx context.Context, t *domain.Task) error
	DeleteFunc       func(ctx context.Context, taskID uuid.UUID) error
	GetByIDFunc      func(ctx context.Context, boardID uuid.UUID, taskID uuid.UUID) (*domain.Task, error)
	SearchFunc       func(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, int, error)
	SetPlacementFunc func(ctx context.Context, taskID uuid.UUID, listID uuid.UUID, position int) error
	ShiftTailFunc    func(ctx context.Context, listID uuid.UUID, from int, excludeID uuid.UUID) error
	SlotsFunc        func(ctx context.Context, listID uuid.UUID) ([]domain.Slot, error)
	UnassignFunc     func(ctx context.Context, taskID uuid.UUID, userID uuid.UUID) (bool, error)
	UpdateFunc       func(ctx context.Context, taskID uuid.UUID, params domain.TaskUpdateParams) error

	calls struct {
		Assign []struct {
			Ctx    context.Context
			TaskID uuid.UUID
			UserID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			T   *domain.Task
		}
		Delete []struct {
			Ctx    context.Context
			TaskID uuid.UUID
		}
		GetByID []struct {
			Ctx     context.Context
			BoardID uuid.UUID
			TaskID  uuid.UUID
		}
		Search []struct {
			Ctx    context.Context
			Filter domain.TaskFilter
		}
		SetPlacement []struct {
			Ctx      context.Context
			TaskID   uuid.UUID
			ListID   uuid.UUID
			Position int
		}
		ShiftTail []struct {
			Ctx       context.Context
			ListID    uuid.UUID
			From      int
			ExcludeID uuid.UUID
		}
		Slots []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
		Unassign []struct {
			Ctx    context.Context
			TaskID uuid.UUID
			UserID uuid.UUID
		}
		Update []struct {
			Ctx    context.Context
			TaskID uuid.UUID
			Params domain.TaskUpdateParams
		}
	}
	lockAssign       sync.RWMutex
	lockCreate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockSearch       sync.RWMutex
	lockSetPlacement sync.RWMutex
	lockShiftTail    sync.RWMutex
	lockSlots        sync.RWMutex
	lockUnassign     sync.RWMutex
	lockUpdate       sync.RWMutex
}

func (mock *taskRepoMock) Assign(ctx context.Context, taskID uuid.UUID, userID uuid.UUID) (bool, error) {
	if mock.AssignFunc == nil {
		panic("taskRepoMock.AssignFunc: method is nil but taskRepo.Assign was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TaskID uuid.UUID
		UserID uuid.UUID
	}{Ctx: ctx, TaskID: taskID, UserID: userID}
	mock.lockAssign.Lock()
	mock.calls.Assign = append(mock.calls.Assign, callInfo)
	mock.lockAssign.Unlock()
	return mock.AssignFunc(ctx, taskID, userID)
}

func (mock *taskRepoMock) AssignCalls() []struct {
	Ctx    context.Context
	TaskID uuid.UUID
	UserID uuid.UUID
} {
	mock.lockAssign.RLock()
	calls := mock.calls.Assign
	mock.lockAssign.RUnlock()
	return calls
}

func (mock *taskRepoMock) Create(ctx context.Context, t *domain.Task) error {
	if mock.CreateFunc == nil {
		panic("taskRepoMock.CreateFunc: method is nil but taskRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Task
	}{Ctx: ctx, T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *taskRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Task
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *taskRepoMock) Delete(ctx context.Context, taskID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("taskRepoMock.DeleteFunc: method is nil but taskRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TaskID uuid.UUID
	}{Ctx: ctx, TaskID: taskID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, taskID)
}

func (mock *taskRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	TaskID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *taskRepoMock) GetByID(ctx context.Context, boardID uuid.UUID, taskID uuid.UUID) (*domain.Task, error) {
	if mock.GetByIDFunc == nil {
		panic("taskRepoMock.GetByIDFunc: method is nil but taskRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
		TaskID  uuid.UUID
	}{Ctx: ctx, BoardID: boardID, TaskID: taskID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, boardID, taskID)
}

func (mock *taskRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
	TaskID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *taskRepoMock) Search(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, int, error) {
	if mock.SearchFunc == nil {
		panic("taskRepoMock.SearchFunc: method is nil but taskRepo.Search was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.TaskFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, filter)
}

func (mock *taskRepoMock) SearchCalls() []struct {
	Ctx    context.Context
	Filter domain.TaskFilter
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *taskRepoMock) SetPlacement(ctx context.Context, taskID uuid.UUID, listID uuid.UUID, position int) error {
	if mock.SetPlacementFunc == nil {
		panic("taskRepoMock.SetPlacementFunc: method is nil but taskRepo.SetPlacement was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TaskID   uuid.UUID
		ListID   uuid.UUID
		Position int
	}{Ctx: ctx, TaskID: taskID, ListID: listID, Position: position}
	mock.lockSetPlacement.Lock()
	mock.calls.SetPlacement = append(mock.calls.SetPlacement, callInfo)
	mock.lockSetPlacement.Unlock()
	return mock.SetPlacementFunc(ctx, taskID, listID, position)
}

func (mock *taskRepoMock) SetPlacementCalls() []struct {
	Ctx      context.Context
	TaskID   uuid.UUID
	ListID   uuid.UUID
	Position int
} {
	mock.lockSetPlacement.RLock()
	calls := mock.calls.SetPlacement
	mock.lockSetPlacement.RUnlock()
	return calls
}

func (mock *taskRepoMock) ShiftTail(ctx context.Context, listID uuid.UUID, from int, excludeID uuid.UUID) error {
	if mock.ShiftTailFunc == nil {
		panic("taskRepoMock.ShiftTailFunc: method is nil but taskRepo.ShiftTail was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ListID    uuid.UUID
		From      int
		ExcludeID uuid.UUID
	}{Ctx: ctx, ListID: listID, From: from, ExcludeID: excludeID}
	mock.lockShiftTail.Lock()
	mock.calls.ShiftTail = append(mock.calls.ShiftTail, callInfo)
	mock.lockShiftTail.Unlock()
	return mock.ShiftTailFunc(ctx, listID, from, excludeID)
}

func (mock *taskRepoMock) ShiftTailCalls() []struct {
	Ctx       context.Context
	ListID    uuid.UUID
	From      int
	ExcludeID uuid.UUID
} {
	mock.lockShiftTail.RLock()
	calls := mock.calls.ShiftTail
	mock.lockShiftTail.RUnlock()
	return calls
}

func (mock *taskRepoMock) Slots(ctx context.Context, listID uuid.UUID) ([]domain.Slot, error) {
	if mock.SlotsFunc == nil {
		panic("taskRepoMock.SlotsFunc: method is nil but taskRepo.Slots was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{Ctx: ctx, ListID: listID}
	mock.lockSlots.Lock()
	mock.calls.Slots = append(mock.calls.Slots, callInfo)
	mock.lockSlots.Unlock()
	return mock.SlotsFunc(ctx, listID)
}

func (mock *taskRepoMock) SlotsCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockSlots.RLock()
	calls := mock.calls.Slots
	mock.lockSlots.RUnlock()
	return calls
}

func (mock *taskRepoMock) Unassign(ctx context.Context, taskID uuid.UUID, userID uuid.UUID) (bool, error) {
	if mock.UnassignFunc == nil {
		panic("taskRepoMock.UnassignFunc: method is nil but taskRepo.Unassign was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TaskID uuid.UUID
		UserID uuid.UUID
	}{Ctx: ctx, TaskID: taskID, UserID: userID}
	mock.lockUnassign.Lock()
	mock.calls.Unassign = append(mock.calls.Unassign, callInfo)
	mock.lockUnassign.Unlock()
	return mock.UnassignFunc(ctx, taskID, userID)
}

func (mock *taskRepoMock) UnassignCalls() []struct {
	Ctx    context.Context
	TaskID uuid.UUID
	UserID uuid.UUID
} {
	mock.lockUnassign.RLock()
	calls := mock.calls.Unassign
	mock.lockUnassign.RUnlock()
	return calls
}

func (mock *taskRepoMock) Update(ctx context.Context, taskID uuid.UUID, params domain.TaskUpdateParams) error {
	if mock.UpdateFunc == nil {
		panic("taskRepoMock.UpdateFunc: method is nil but taskRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TaskID uuid.UUID
		Params domain.TaskUpdateParams
	}{Ctx: ctx, TaskID: taskID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, taskID, params)
}

func (mock *taskRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	TaskID uuid.UUID
	Params domain.TaskUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
