package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/list"
	"github.com/heartmarshall/taskboard-backend/internal/transport/dto"
)

type listService interface {
	CreateList(ctx context.Context, input list.CreateListInput) (*domain.List, error)
	UpdateList(ctx context.Context, input list.UpdateListInput) (*domain.List, error)
	DeleteList(ctx context.Context, boardID, listID uuid.UUID) error
	ReorderLists(ctx context.Context, input list.ReorderListsInput) error
}

// ListHandler serves the lists of a board.
type ListHandler struct {
	svc listService
	log *slog.Logger
}

// NewListHandler creates a ListHandler.
func NewListHandler(svc listService, logger *slog.Logger) *ListHandler {
	return &ListHandler{svc: svc, log: logger.With("handler", "list")}
}

type listRequest struct {
	Title *string `json:"title"`
}

type reorderRequest struct {
	Lists []struct {
		ID       uuid.UUID `json:"id"`
		Position int       `json:"position"`
	} `json:"lists"`
}

type listResponse struct {
	List dto.List `json:"list"`
}

// Create handles POST /api/boards/{boardId}/lists.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardId")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req listRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	input := list.CreateListInput{BoardID: boardID}
	if req.Title != nil {
		input.Title = *req.Title
	}

	l, err := h.svc.CreateList(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, listResponse{List: dto.FromList(l)})
}

// Update handles PUT /api/boards/{boardId}/lists/{listId}.
func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardId")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	listID, err := pathID(r, "listId")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req listRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	l, err := h.svc.UpdateList(r.Context(), list.UpdateListInput{BoardID: boardID, ListID: listID, Title: req.Title})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{List: dto.FromList(l)})
}

// Delete handles DELETE /api/boards/{boardId}/lists/{listId}.
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardId")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	listID, err := pathID(r, "listId")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteList(r.Context(), boardID, listID); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "List deleted"})
}

// Reorder handles PUT /api/boards/{boardId}/lists/reorder.
func (h *ListHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardId")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	var req reorderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	items := make([]domain.ReorderItem, len(req.Lists))
	for i, it := range req.Lists {
		items[i] = domain.ReorderItem{ID: it.ID, Position: it.Position}
	}

	if err := h.svc.ReorderLists(r.Context(), list.ReorderListsInput{BoardID: boardID, Items: items}); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Lists reordered"})
}
