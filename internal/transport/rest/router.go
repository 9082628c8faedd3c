package rest

import (
	"net/http"

	"github.com/heartmarshall/taskboard-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Boards   *BoardHandler
	Lists    *ListHandler
	Tasks    *TaskHandler
	Realtime http.Handler
}

// Middlewares are the per-surface middleware stacks. Common wraps every
// route, Public wraps the unauthenticated auth endpoints and Protected wraps
// the rest of /api.
type Middlewares struct {
	Common    middleware.Middleware
	Public    middleware.Middleware
	Protected middleware.Middleware
}

// NewRouter builds the HTTP routing table.
func NewRouter(h Handlers, mw Middlewares) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	public := func(f http.HandlerFunc) http.Handler { return mw.Public(f) }
	mux.Handle("POST /api/auth/signup", public(h.Auth.Signup))
	mux.Handle("POST /api/auth/login", public(h.Auth.Login))

	api := func(f http.HandlerFunc) http.Handler { return mw.Protected(f) }
	mux.Handle("GET /api/auth/me", api(h.Auth.Me))

	mux.Handle("GET /api/boards", api(h.Boards.List))
	mux.Handle("POST /api/boards", api(h.Boards.Create))
	mux.Handle("GET /api/boards/{boardId}", api(h.Boards.Get))
	mux.Handle("PUT /api/boards/{boardId}", api(h.Boards.Update))
	mux.Handle("DELETE /api/boards/{boardId}", api(h.Boards.Delete))
	mux.Handle("POST /api/boards/{boardId}/members", api(h.Boards.AddMember))
	mux.Handle("GET /api/boards/{boardId}/activity", api(h.Boards.Activity))

	mux.Handle("POST /api/boards/{boardId}/lists", api(h.Lists.Create))
	mux.Handle("PUT /api/boards/{boardId}/lists/reorder", api(h.Lists.Reorder))
	mux.Handle("PUT /api/boards/{boardId}/lists/{listId}", api(h.Lists.Update))
	mux.Handle("DELETE /api/boards/{boardId}/lists/{listId}", api(h.Lists.Delete))

	mux.Handle("GET /api/boards/{boardId}/tasks", api(h.Tasks.Search))
	mux.Handle("POST /api/boards/{boardId}/tasks", api(h.Tasks.Create))
	mux.Handle("PUT /api/boards/{boardId}/tasks/{taskId}", api(h.Tasks.Update))
	mux.Handle("DELETE /api/boards/{boardId}/tasks/{taskId}", api(h.Tasks.Delete))
	mux.Handle("PUT /api/boards/{boardId}/tasks/{taskId}/move", api(h.Tasks.Move))
	mux.Handle("POST /api/boards/{boardId}/tasks/{taskId}/assignees", api(h.Tasks.Assign))
	mux.Handle("DELETE /api/boards/{boardId}/tasks/{taskId}/assignees/{userId}", api(h.Tasks.Unassign))

	if h.Realtime != nil {
		mux.Handle("GET /ws", h.Realtime)
	}

	return mw.Common(mux)
}
