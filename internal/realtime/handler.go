package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/heartmarshall/taskboard-backend/internal/auth"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/transport/dto"
)

type tokenParser interface {
	ParseAccessToken(token string) (auth.AccessClaims, error)
}

type userLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Handler authenticates and upgrades websocket connections on /ws. The
// access token comes from the token query parameter or a bearer header.
type Handler struct {
	hub      *Hub
	tokens   tokenParser
	users    userLookup
	upgrader websocket.Upgrader
	log      *slog.Logger
}

// NewHandler creates a Handler. Browser connections are accepted only from
// allowedOrigins; "*" allows any origin.
func NewHandler(hub *Hub, tokens tokenParser, users userLookup, allowedOrigins []string, log *slog.Logger) *Handler {
	h := &Handler{
		hub:    hub,
		tokens: tokens,
		users:  users,
		log:    log.With("handler", "ws"),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		if scheme, rest, ok := strings.Cut(r.Header.Get("Authorization"), " "); ok && strings.EqualFold(scheme, "Bearer") {
			token = strings.TrimSpace(rest)
		}
	}

	claims, err := h.tokens.ParseAccessToken(token)
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.users.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = domain.ErrUnauthorized
		} else {
			h.log.ErrorContext(r.Context(), "load websocket user", slog.String("error", err.Error()))
		}
		writeError(w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WarnContext(r.Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	c := newClient(h.hub, conn, user, claims.ExpiresAt)
	if err := h.hub.register(c); err != nil {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		_ = conn.Close()
		return
	}

	h.log.InfoContext(r.Context(), "websocket connected",
		slog.String("conn_id", c.id),
		slog.String("user_id", user.ID.String()),
	)

	go c.writePump()
	go c.readPump(h.hub.ctx)
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(dto.HTTPStatus(domain.KindOf(err)))
	json.NewEncoder(w).Encode(dto.NewError(err)) //nolint:errcheck
}
