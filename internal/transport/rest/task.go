package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/task"
	"github.com/heartmarshall/taskboard-backend/internal/transport/dto"
)

type taskService interface {
	CreateTask(ctx context.Context, input task.CreateTaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, input task.UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, boardID, taskID uuid.UUID) error
	MoveTask(ctx context.Context, input task.MoveTaskInput) (*domain.Task, error)
	AssignTask(ctx context.Context, input task.AssignInput) (*domain.Task, error)
	UnassignTask(ctx context.Context, input task.AssignInput) (*domain.Task, error)
	SearchTasks(ctx context.Context, input task.SearchInput) ([]domain.Task, domain.Pagination, error)
}

// TaskHandler serves the tasks of a board.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "task")}
}

type createTaskRequest struct {
	ListID      uuid.UUID `json:"listId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    *string   `json:"priority"`
	DueDate     *string   `json:"dueDate"`
}

type updateTaskRequest struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Priority    *string      `json:"priority"`
	DueDate     nullableDate `json:"dueDate"`
}

type moveTaskRequest struct {
	SourceListID uuid.UUID `json:"sourceListId"`
	DestListID   uuid.UUID `json:"destListId"`
	DestIndex    int       `json:"destIndex"`
}

type assignRequest struct {
	UserID uuid.UUID `json:"userId"`
}

type taskResponse struct {
	Task dto.Task `json:"task"`
}

type tasksResponse struct {
	Tasks      []dto.Task     `json:"tasks"`
	Pagination dto.Pagination `json:"pagination"`
}

func parsePriority(raw *string) *domain.Priority {
	if raw == nil {
		return nil
	}
	p := domain.Priority(strings.ToLower(*raw))
	return &p
}

// Search handles GET /api/boards/{boardId}/tasks.
func (h *TaskHandler) Search(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardId")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	input := task.SearchInput{BoardID: boardID, Search: r.URL.Query().Get("search")}
	if raw := r.URL.Query().Get("listId"); raw != "" {
		listID, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, r, h.log, domain.NewValidationError("listId", "must be a valid UUID"))
			return
		}
		input.ListID = &listID
	}
	if input.Page, err = queryInt(r, "page"); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if input.Limit, err = queryInt(r, "limit"); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	tasks, pg, err := h.svc.SearchTasks(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, tasksResponse{Tasks: dto.FromTasks(tasks), Pagination: dto.FromPagination(pg)})
}

// Create handles POST /api/boards/{boardId}/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardId")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req createTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	input := task.CreateTaskInput{
		BoardID:     boardID,
		ListID:      req.ListID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    parsePriority(req.Priority),
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, err := parseDate("dueDate", *req.DueDate)
		if err != nil {
			writeError(w, r, h.log, err)
			return
		}
		input.DueDate = &due
	}

	t, err := h.svc.CreateTask(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, taskResponse{Task: dto.FromTask(t)})
}

// Update handles PUT /api/boards/{boardId}/tasks/{taskId}. A null dueDate
// clears the due date; an absent one leaves it unchanged.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	boardID, taskID, err := taskPath(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req updateTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	input := task.UpdateTaskInput{
		BoardID:     boardID,
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    parsePriority(req.Priority),
	}
	if req.DueDate.Set {
		if req.DueDate.Value == nil || *req.DueDate.Value == "" {
			input.ClearDueDate = true
		} else {
			due, err := parseDate("dueDate", *req.DueDate.Value)
			if err != nil {
				writeError(w, r, h.log, err)
				return
			}
			input.DueDate = &due
		}
	}

	t, err := h.svc.UpdateTask(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, taskResponse{Task: dto.FromTask(t)})
}

// Delete handles DELETE /api/boards/{boardId}/tasks/{taskId}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	boardID, taskID, err := taskPath(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteTask(r.Context(), boardID, taskID); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Task deleted"})
}

// Move handles PUT /api/boards/{boardId}/tasks/{taskId}/move.
func (h *TaskHandler) Move(w http.ResponseWriter, r *http.Request) {
	boardID, taskID, err := taskPath(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req moveTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	t, err := h.svc.MoveTask(r.Context(), task.MoveTaskInput{
		BoardID:      boardID,
		TaskID:       taskID,
		SourceListID: req.SourceListID,
		DestListID:   req.DestListID,
		DestIndex:    req.DestIndex,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, taskResponse{Task: dto.FromTask(t)})
}

// Assign handles POST /api/boards/{boardId}/tasks/{taskId}/assignees.
func (h *TaskHandler) Assign(w http.ResponseWriter, r *http.Request) {
	boardID, taskID, err := taskPath(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req assignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	t, err := h.svc.AssignTask(r.Context(), task.AssignInput{BoardID: boardID, TaskID: taskID, UserID: req.UserID})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, taskResponse{Task: dto.FromTask(t)})
}

// Unassign handles DELETE /api/boards/{boardId}/tasks/{taskId}/assignees/{userId}.
func (h *TaskHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	boardID, taskID, err := taskPath(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	t, err := h.svc.UnassignTask(r.Context(), task.AssignInput{BoardID: boardID, TaskID: taskID, UserID: userID})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, taskResponse{Task: dto.FromTask(t)})
}

func taskPath(r *http.Request) (boardID, taskID uuid.UUID, err error) {
	if boardID, err = pathID(r, "boardId"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if taskID, err = pathID(r, "taskId"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return boardID, taskID, nil
}
