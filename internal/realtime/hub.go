// Package realtime runs the websocket side of the board: rooms per board,
// presence, and fan-out of committed mutations to every joined connection.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/config"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/transport/dto"
)

// ErrHubClosed is returned when a connection is registered after Close.
var ErrHubClosed = errors.New("realtime: hub closed")

var errNotJoined = errors.New("realtime: connection has not joined the board")

type accessGuard interface {
	RequireMember(ctx context.Context, boardID, userID uuid.UUID) (*domain.Member, error)
}

// Hub owns every live connection and the board rooms they joined.
//
// All room and client state is guarded by mu. A client's send channel is only
// written or closed while mu is held, so a send never races a close.
type Hub struct {
	log    *slog.Logger
	access accessGuard
	cfg    config.RealtimeConfig
	now    func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	rooms   map[uuid.UUID]*room
	clients map[*Client]struct{}
	closed  bool
}

// NewHub creates an empty hub.
func NewHub(log *slog.Logger, access accessGuard, cfg config.RealtimeConfig) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		log:     log.With("component", "realtime"),
		access:  access,
		cfg:     cfg,
		now:     time.Now,
		ctx:     ctx,
		cancel:  cancel,
		rooms:   make(map[uuid.UUID]*room),
		clients: make(map[*Client]struct{}),
	}
}

func (h *Hub) register(c *Client) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}
	h.clients[c] = struct{}{}
	return nil
}

// Join adds c to the board's room after checking the token is still valid
// and the user is a member. The joiner receives board:joined with everyone
// else online; the rest of the room receives user:online. On failure the
// joiner receives an error event and is not added.
func (h *Hub) Join(ctx context.Context, c *Client, boardID uuid.UUID) error {
	if !c.expiresAt.IsZero() && !h.now().Before(c.expiresAt) {
		h.sendError(c, "Token expired")
		return domain.ErrTokenExpired
	}

	if _, err := h.access.RequireMember(ctx, boardID, c.userID); err != nil {
		if domain.KindOf(err) == domain.KindInternal {
			h.log.ErrorContext(ctx, "join board",
				slog.String("board_id", boardID.String()),
				slog.String("error", err.Error()),
			)
			h.sendError(c, "Failed to join board")
		} else {
			h.sendError(c, "Not a member of this board")
		}
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}
	if _, ok := h.clients[c]; !ok {
		return errNotJoined
	}

	r, ok := h.rooms[boardID]
	if !ok {
		r = newRoom()
		h.rooms[boardID] = r
	}
	fresh := r.add(c)
	c.rooms[boardID] = struct{}{}

	joined, err := dto.NewEnvelope(domain.EventBoardJoined, dto.BoardJoinedPayload{
		BoardID:     boardID,
		OnlineUsers: r.snapshot(c),
	})
	if err != nil {
		return err
	}
	h.deliverLocked(c, encode(joined))

	if fresh {
		online, err := dto.NewEnvelope(domain.EventUserOnline, dto.Presence{UserID: c.userID, UserName: c.userName})
		if err != nil {
			return err
		}
		h.broadcastLocked(r, encode(online), c)

		h.log.DebugContext(ctx, "board joined",
			slog.String("conn_id", c.id),
			slog.String("board_id", boardID.String()),
			slog.String("user_id", c.userID.String()),
		)
	}
	return nil
}

// Leave removes c from the board's room and tells the rest of the room.
func (h *Hub) Leave(c *Client, boardID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.leaveLocked(c, boardID)
}

// Disconnect removes c from every room and closes its send queue.
func (h *Hub) Disconnect(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}
	for boardID := range c.rooms {
		h.leaveLocked(c, boardID)
	}
	delete(h.clients, c)
	close(c.send)
}

func (h *Hub) leaveLocked(c *Client, boardID uuid.UUID) {
	r, ok := h.rooms[boardID]
	if !ok {
		return
	}
	entry, ok := r.remove(c)
	if !ok {
		return
	}
	delete(c.rooms, boardID)

	offline, err := dto.NewEnvelope(domain.EventUserOffline, dto.Presence{UserID: entry.userID, UserName: entry.userName})
	if err == nil {
		h.broadcastLocked(r, encode(offline), nil)
	}
	if r.empty() {
		delete(h.rooms, boardID)
	}
}

// Publish delivers env to every connection joined to the board, the
// actor's own connections included. Each subscriber sees messages in call
// order. A subscriber whose queue is full misses this message.
func (h *Hub) Publish(boardID uuid.UUID, env dto.Envelope) {
	msg := encode(env)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	if r, ok := h.rooms[boardID]; ok {
		h.broadcastLocked(r, msg, nil)
	}
}

// PublishEvent renders a committed mutation and publishes it to its board.
func (h *Hub) PublishEvent(ev domain.BoardEvent) {
	env, err := dto.FromBoardEvent(ev)
	if err != nil {
		h.log.Error("render board event", slog.String("event", string(ev.Name)), slog.String("error", err.Error()))
		return
	}
	h.Publish(ev.BoardID, env)
}

// Relay forwards env to every connection in the board's room except c.
// c must have joined the room.
func (h *Hub) Relay(c *Client, boardID uuid.UUID, env dto.Envelope) error {
	msg := encode(env)

	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.rooms[boardID]
	if !ok || !r.has(c) {
		return errNotJoined
	}
	h.broadcastLocked(r, msg, c)
	return nil
}

// Close disconnects every client. Later publishes are dropped and new
// connections are refused.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	h.cancel()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.rooms = make(map[uuid.UUID]*room)
}

// Stats reports the number of open connections and active rooms.
func (h *Hub) Stats() (clients, rooms int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients), len(h.rooms)
}

// Online returns the presence list of a board's room in join order.
func (h *Hub) Online(boardID uuid.UUID) []dto.Presence {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.rooms[boardID]
	if !ok {
		return []dto.Presence{}
	}
	return r.snapshot(nil)
}

func (h *Hub) sendError(c *Client, message string) {
	env, err := dto.NewEnvelope(domain.EventError, dto.ErrorPayload{Message: message})
	if err != nil {
		return
	}
	msg := encode(env)

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		h.deliverLocked(c, msg)
	}
}

func (h *Hub) broadcastLocked(r *room, msg []byte, except *Client) {
	for c := range r.members {
		if c == except {
			continue
		}
		h.deliverLocked(c, msg)
	}
}

func (h *Hub) deliverLocked(c *Client, msg []byte) {
	select {
	case c.send <- msg:
	default:
		h.log.Warn("send queue full, message dropped",
			slog.String("conn_id", c.id),
			slog.String("user_id", c.userID.String()),
		)
	}
}

func encode(env dto.Envelope) []byte {
	b, _ := json.Marshal(env) //nolint:errcheck // Envelope holds only a string and raw JSON.
	return b
}
