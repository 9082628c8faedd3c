package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/board"
)

var _ boardService = &boardServiceMock{}

type boardServiceMock struct {
	AddMemberFunc   func(ctx context.Context, input board.AddMemberInput) (*domain.Member, error)
	CreateBoardFunc func(ctx context.Context, input board.CreateBoardInput) (*domain.BoardWithRole, error)
	DeleteBoardFunc func(ctx context.Context, boardID uuid.UUID) error
	GetBoardFunc    func(ctx context.Context, boardID uuid.UUID) (*domain.BoardDetail, error)
	ListBoardsFunc  func(ctx context.Context) ([]domain.BoardSummary, error)
	UpdateBoardFunc func(ctx context.Context, input board.UpdateBoardInput) (*domain.BoardWithRole, error)

	calls struct {
		AddMember []struct {
			Ctx   context.Context
			Input board.AddMemberInput
		}
		CreateBoard []struct {
			Ctx   context.Context
			Input board.CreateBoardInput
		}
		DeleteBoard []struct {
			Ctx     context.Context
			BoardID uuid.UUID
		}
		GetBoard []struct {
			Ctx     context.Context
			BoardID uuid.UUID
		}
		ListBoards []struct {
			Ctx context.Context
		}
		UpdateBoard []struct {
			Ctx   context.Context
			Input board.UpdateBoardInput
		}
	}
	lockAddMember   sync.RWMutex
	lockCreateBoard sync.RWMutex
	lockDeleteBoard sync.RWMutex
	lockGetBoard    sync.RWMutex
	lockListBoards  sync.RWMutex
	lockUpdateBoard sync.RWMutex
}

func (mock *boardServiceMock) AddMember(ctx context.Context, input board.AddMemberInput) (*domain.Member, error) {
	if mock.AddMemberFunc == nil {
		panic("boardServiceMock.AddMemberFunc: method is nil but boardService.AddMember was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input board.AddMemberInput
	}{Ctx: ctx, Input: input}
	mock.lockAddMember.Lock()
	mock.calls.AddMember = append(mock.calls.AddMember, callInfo)
	mock.lockAddMember.Unlock()
	return mock.AddMemberFunc(ctx, input)
}

func (mock *boardServiceMock) AddMemberCalls() []struct {
	Ctx   context.Context
	Input board.AddMemberInput
} {
	mock.lockAddMember.RLock()
	calls := mock.calls.AddMember
	mock.lockAddMember.RUnlock()
	return calls
}

func (mock *boardServiceMock) CreateBoard(ctx context.Context, input board.CreateBoardInput) (*domain.BoardWithRole, error) {
	if mock.CreateBoardFunc == nil {
		panic("boardServiceMock.CreateBoardFunc: method is nil but boardService.CreateBoard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input board.CreateBoardInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateBoard.Lock()
	mock.calls.CreateBoard = append(mock.calls.CreateBoard, callInfo)
	mock.lockCreateBoard.Unlock()
	return mock.CreateBoardFunc(ctx, input)
}

func (mock *boardServiceMock) CreateBoardCalls() []struct {
	Ctx   context.Context
	Input board.CreateBoardInput
} {
	mock.lockCreateBoard.RLock()
	calls := mock.calls.CreateBoard
	mock.lockCreateBoard.RUnlock()
	return calls
}

func (mock *boardServiceMock) DeleteBoard(ctx context.Context, boardID uuid.UUID) error {
	if mock.DeleteBoardFunc == nil {
		panic("boardServiceMock.DeleteBoardFunc: method is nil but boardService.DeleteBoard was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
	}{Ctx: ctx, BoardID: boardID}
	mock.lockDeleteBoard.Lock()
	mock.calls.DeleteBoard = append(mock.calls.DeleteBoard, callInfo)
	mock.lockDeleteBoard.Unlock()
	return mock.DeleteBoardFunc(ctx, boardID)
}

func (mock *boardServiceMock) DeleteBoardCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
} {
	mock.lockDeleteBoard.RLock()
	calls := mock.calls.DeleteBoard
	mock.lockDeleteBoard.RUnlock()
	return calls
}

func (mock *boardServiceMock) GetBoard(ctx context.Context, boardID uuid.UUID) (*domain.BoardDetail, error) {
	if mock.GetBoardFunc == nil {
		panic("boardServiceMock.GetBoardFunc: method is nil but boardService.GetBoard was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID uuid.UUID
	}{Ctx: ctx, BoardID: boardID}
	mock.lockGetBoard.Lock()
	mock.calls.GetBoard = append(mock.calls.GetBoard, callInfo)
	mock.lockGetBoard.Unlock()
	return mock.GetBoardFunc(ctx, boardID)
}

func (mock *boardServiceMock) GetBoardCalls() []struct {
	Ctx     context.Context
	BoardID uuid.UUID
} {
	mock.lockGetBoard.RLock()
	calls := mock.calls.GetBoard
	mock.lockGetBoard.RUnlock()
	return calls
}

func (mock *boardServiceMock) ListBoards(ctx context.Context) ([]domain.BoardSummary, error) {
	if mock.ListBoardsFunc == nil {
		panic("boardServiceMock.ListBoardsFunc: method is nil but boardService.ListBoards was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListBoards.Lock()
	mock.calls.ListBoards = append(mock.calls.ListBoards, callInfo)
	mock.lockListBoards.Unlock()
	return mock.ListBoardsFunc(ctx)
}

func (mock *boardServiceMock) ListBoardsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListBoards.RLock()
	calls := mock.calls.ListBoards
	mock.lockListBoards.RUnlock()
	return calls
}

func (mock *boardServiceMock) UpdateBoard(ctx context.Context, input board.UpdateBoardInput) (*domain.BoardWithRole, error) {
	if mock.UpdateBoardFunc == nil {
		panic("boardServiceMock.UpdateBoardFunc: method is nil but boardService.UpdateBoard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input board.UpdateBoardInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateBoard.Lock()
	mock.calls.UpdateBoard = append(mock.calls.UpdateBoard, callInfo)
	mock.lockUpdateBoard.Unlock()
	return mock.UpdateBoardFunc(ctx, input)
}

func (mock *boardServiceMock) UpdateBoardCalls() []struct {
	Ctx   context.Context
	Input board.UpdateBoardInput
} {
	mock.lockUpdateBoard.RLock()
	calls := mock.calls.UpdateBoard
	mock.lockUpdateBoard.RUnlock()
	return calls
}
