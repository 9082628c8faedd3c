package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/activity"
	"github.com/heartmarshall/taskboard-backend/internal/service/board"
	"github.com/heartmarshall/taskboard-backend/internal/transport/dto"
)

type boardService interface {
	CreateBoard(ctx context.Context, input board.CreateBoardInput) (*domain.BoardWithRole, error)
	ListBoards(ctx context.Context) ([]domain.BoardSummary, error)
	GetBoard(ctx context.Context, boardID uuid.UUID) (*domain.BoardDetail, error)
	UpdateBoard(ctx context.Context, input board.UpdateBoardInput) (*domain.BoardWithRole, error)
	DeleteBoard(ctx context.Context, boardID uuid.UUID) error
	AddMember(ctx context.Context, input board.AddMemberInput) (*domain.Member, error)
}

type activityService interface {
	ListActivity(ctx context.Context, input activity.ListActivityInput) ([]domain.ActivityEntry, domain.Pagination, error)
}

// BoardHandler serves boards, their members and the activity feed.
type BoardHandler struct {
	boards   boardService
	activity activityService
	log      *slog.Logger
}

// NewBoardHandler creates a BoardHandler.
func NewBoardHandler(boards boardService, activity activityService, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{boards: boards, activity: activity, log: logger.With("handler", "board")}
}

type boardRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

type addMemberRequest struct {
	Email string  `json:"email"`
	Role  *string `json:"role"`
}

type boardResponse struct {
	Board dto.Board `json:"board"`
}

type boardsResponse struct {
	Boards []dto.BoardSummary `json:"boards"`
}

type memberResponse struct {
	Member dto.Member `json:"member"`
}

type activityResponse struct {
	Activities []dto.Activity `json:"activities"`
	Pagination dto.Pagination `json:"pagination"`
}

// List handles GET /api/boards.
func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) {
	boards, err := h.boards.ListBoards(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, boardsResponse{Boards: dto.FromBoardSummaries(boards)})
}

// Create handles POST /api/boards.
func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	input := board.CreateBoardInput{Color: req.Color}
	if req.Title != nil {
		input.Title = *req.Title
	}
	if req.Description != nil {
		input.Description = *req.Description
	}

	b, err := h.boards.CreateBoard(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, boardResponse{Board: dto.FromBoard(b)})
}

// Get handles GET /api/boards/{boardId}.
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardId")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	detail, err := h.boards.GetBoard(r.Context(), boardID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromBoardDetail(detail))
}

// Update handles PUT /api/boards/{boardId}.
func (h *BoardHandler) Update(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardId")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req boardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	b, err := h.boards.UpdateBoard(r.Context(), board.UpdateBoardInput{
		BoardID:     boardID,
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, boardResponse{Board: dto.FromBoard(b)})
}

// Delete handles DELETE /api/boards/{boardId}.
func (h *BoardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardId")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := h.boards.DeleteBoard(r.Context(), boardID); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Board deleted"})
}

// AddMember handles POST /api/boards/{boardId}/members.
func (h *BoardHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardId")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req addMemberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	input := board.AddMemberInput{BoardID: boardID, Email: req.Email}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		input.Role = &role
	}

	m, err := h.boards.AddMember(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, memberResponse{Member: dto.FromMember(m)})
}

// Activity handles GET /api/boards/{boardId}/activity.
func (h *BoardHandler) Activity(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardId")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	page, err := queryInt(r, "page")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	entries, pg, err := h.activity.ListActivity(r.Context(), activity.ListActivityInput{
		BoardID: boardID,
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, activityResponse{
		Activities: dto.FromActivities(entries),
		Pagination: dto.FromPagination(pg),
	})
}
