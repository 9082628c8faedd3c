package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/task"
)

var _ taskService = &taskServiceMock{}

type taskServiceMock struct {
	AssignTaskFunc   func(ctx context.Context, input task.AssignInput) (*domain.Task, error)
	CreateTaskFunc   func(ctx context.Context, input task.CreateTaskInput) (*domain.Task, error)
	DeleteTaskFunc   func(ctx context.Context, boardID uuid.UUID, taskID uuid.UUID) error
	MoveTaskFunc     func(ctx context.Context, input task.MoveTaskInput) (*domain.Task, error)
	SearchTasksFunc  func(ctx context.Context, input task.SearchInput) ([]domain.Task, domain.Pagination, error)
	UnassignTaskFunc func(ctx context.Context, input task.AssignInput) (*domain.Task, error)
	UpdateTaskFunc   func(ctx context.Context, input task.UpdateTaskInput) (*domain.Task, error)

	calls struct {
		AssignTask []struct {
			Ctx   context.Context
			Input task.AssignInput
		}
		CreateTask []struct {
			Ctx   context.Context
			Input task.CreateTaskInput
		}
		DeleteTask []struct {
			Ctx     context.Context
			BoardID uuid.UUID
			TaskID  uuid.UUID
		}
		MoveTask []struct {
			Ctx   context.Context
			Input task.MoveTaskInput
		}
		SearchTasks []struct {
			Ctx   context.Context
			Input task.SearchInput
		}
		UnassignTask []struct {
			Ctx   context.Context
			Input task.AssignInput
		}
		UpdateTask []struct {
			Ctx   context.Context
			Input task.UpdateTaskInput
		}
	}
	lockAssignTask   sync.RWMutex
	lockCreateTask   sync.RWMutex
	lockDeleteTask   sync.RWMutex
	lockMoveTask     sync.RWMutex
	lockSearchTasks  sync.RWMutex
	lockUnassignTask sync.RWMutex
	lockUpdateTask   sync.RWMutex
}

func (mock *taskServiceMock) AssignTask(ctx context.Context, input task.AssignInput) (*domain.Task, error) {
	if mock.AssignTaskFunc == nil {
		panic("taskServiceMock.AssignTaskFunc: method is nil but taskService.AssignTask was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input task.AssignInput
	}{Ctx: ctx, Input: input}
	mock.lockAssignTask.Lock()
	mock.calls.AssignTask = append(mock.calls.AssignTask, callInfo)
	mock.lockAssignTask.Unlock()
	return mock.AssignTaskFunc(ctx, input)
}

func (mock *taskServiceMock) AssignTaskCalls() []struct {
	Ctx   context.Context
	Input task.AssignInput
} {
	mock.lockAssignTask.RLock()
	calls := mock.calls.AssignTask
	mock.lockAssignTask.RUnlock()
	return calls
}

func (mock *taskServiceMock) CreateTask(ctx context.Context, input task.CreateTaskInput) (*domain.Task, error) {
	if mock.CreateTaskFunc == nil {
		panic("taskServiceMock.CreateTaskFunc: method is nil but taskService.CreateTask was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input task.CreateTaskInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateTask.Lock()
	mock.calls.CreateTask = append(mock.calls.CreateTask, callInfo)
	mock.lockCreateTask.Unlock()
	return mock.CreateTaskFunc(ctx, input)
}

func (mock *taskServiceMock) CreateTaskCalls() []struct {
	Ctx   context.Context
	Input task.CreateTaskInput
} {
	mock.lockCreateTask.RLock()
	calls := mock.calls.CreateTask
	mock.lockCreateTask.RUnlock()
	return calls
}

func (mock *taskServiceMock) DeleteTask(ctx context.Context, boardID uuid.UUID, taskID uuid.UUID) error {
	if mock.DeleteTaskFunc == nil {
		panic("taskServiceMock.DeleteTaskFunc: method is nil but taskService.DeleteTask was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
		TaskID  uuid.UUID
	}{Ctx: ctx, BoardID: boardID, TaskID: taskID}
	mock.lockDeleteTask.Lock()
	mock.calls.DeleteTask = append(mock.calls.DeleteTask, callInfo)
	mock.lockDeleteTask.Unlock()
	return mock.DeleteTaskFunc(ctx, boardID, taskID)
}

func (mock *taskServiceMock) DeleteTaskCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
	TaskID  uuid.UUID
} {
	mock.lockDeleteTask.RLock()
	calls := mock.calls.DeleteTask
	mock.lockDeleteTask.RUnlock()
	return calls
}

func (mock *taskServiceMock) MoveTask(ctx context.Context, input task.MoveTaskInput) (*domain.Task, error) {
	if mock.MoveTaskFunc == nil {
		panic("taskServiceMock.MoveTaskFunc: method is nil but taskService.MoveTask was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input task.MoveTaskInput
	}{Ctx: ctx, Input: input}
	mock.lockMoveTask.Lock()
	mock.calls.MoveTask = append(mock.calls.MoveTask, callInfo)
	mock.lockMoveTask.Unlock()
	return mock.MoveTaskFunc(ctx, input)
}

func (mock *taskServiceMock) MoveTaskCalls() []struct {
	Ctx   context.Context
	Input task.MoveTaskInput
} {
	mock.lockMoveTask.RLock()
	calls := mock.calls.MoveTask
	mock.lockMoveTask.RUnlock()
	return calls
}

func (mock *taskServiceMock) SearchTasks(ctx context.Context, input task.SearchInput) ([]domain.Task, domain.Pagination, error) {
	if mock.SearchTasksFunc == nil {
		panic("taskServiceMock.SearchTasksFunc: method is nil but taskService.SearchTasks was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input task.SearchInput
	}{Ctx: ctx, Input: input}
	mock.lockSearchTasks.Lock()
	mock.calls.SearchTasks = append(mock.calls.SearchTasks, callInfo)
	mock.lockSearchTasks.Unlock()
	return mock.SearchTasksFunc(ctx, input)
}

func (mock *taskServiceMock) SearchTasksCalls() []struct {
	Ctx   context.Context
	Input task.SearchInput
} {
	mock.lockSearchTasks.RLock()
	calls := mock.calls.SearchTasks
	mock.lockSearchTasks.RUnlock()
	return calls
}

func (mock *taskServiceMock) UnassignTask(ctx context.Context, input task.AssignInput) (*domain.Task, error) {
	if mock.UnassignTaskFunc == nil {
		panic("taskServiceMock.UnassignTaskFunc: method is nil but taskService.UnassignTask was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input task.AssignInput
	}{Ctx: ctx, Input: input}
	mock.lockUnassignTask.Lock()
	mock.calls.UnassignTask = append(mock.calls.UnassignTask, callInfo)
	mock.lockUnassignTask.Unlock()
	return mock.UnassignTaskFunc(ctx, input)
}

func (mock *taskServiceMock) UnassignTaskCalls() []struct {
	Ctx   context.Context
	Input task.AssignInput
} {
	mock.lockUnassignTask.RLock()
	calls := mock.calls.UnassignTask
	mock.lockUnassignTask.RUnlock()
	return calls
}

func (mock *taskServiceMock) UpdateTask(ctx context.Context, input task.UpdateTaskInput) (*domain.Task, error) {
	if mock.UpdateTaskFunc == nil {
		panic("taskServiceMock.UpdateTaskFunc: method is nil but taskService.UpdateTask was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input task.UpdateTaskInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateTask.Lock()
	mock.calls.UpdateTask = append(mock.calls.UpdateTask, callInfo)
	mock.lockUpdateTask.Unlock()
	return mock.UpdateTaskFunc(ctx, input)
}

func (mock *taskServiceMock) UpdateTaskCalls() []struct {
	Ctx   context.Context
	Input task.UpdateTaskInput
} {
	mock.lockUpdateTask.RLock()
	calls := mock.calls.UpdateTask
	mock.lockUpdateTask.RUnlock()
	return calls
}
