package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/transport/dto"
)

// Client is one websocket connection. The hub writes to send; writePump is
// its only reader and the only goroutine that writes to conn.
type Client struct {
	id        string
	hub       *Hub
	conn      *websocket.Conn
	userID    uuid.UUID
	userName  string
	expiresAt time.Time

	send  chan []byte
	rooms map[uuid.UUID]struct{} // guarded by hub.mu
}

func newClient(hub *Hub, conn *websocket.Conn, user *domain.User, expiresAt time.Time) *Client {
	return &Client{
		id:        ulid.Make().String(),
		hub:       hub,
		conn:      conn,
		userID:    user.ID,
		userName:  user.Name,
		expiresAt: expiresAt,
		send:      make(chan []byte, hub.cfg.SendBuffer),
		rooms:     make(map[uuid.UUID]struct{}),
	}
}

// readPump decodes client events until the connection fails, then
// disconnects the client.
func (c *Client) readPump(ctx context.Context) {
	defer func() {
		c.hub.Disconnect(c)
		_ = c.conn.Close()
	}()

	cfg := c.hub.cfg
	c.conn.SetReadLimit(cfg.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.log.Debug("websocket closed",
					slog.String("conn_id", c.id),
					slog.String("error", err.Error()),
				)
			}
			return
		}

		var env dto.Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			c.hub.sendError(c, "Malformed message")
			continue
		}
		c.handle(ctx, env)
	}
}

func (c *Client) handle(ctx context.Context, env dto.Envelope) {
	switch domain.EventName(env.Event) {
	case domain.EventJoinBoard:
		var ref dto.BoardRef
		if err := json.Unmarshal(env.Data, &ref); err != nil || ref.BoardID == uuid.Nil {
			c.hub.sendError(c, "boardId is required")
			return
		}
		_ = c.hub.Join(ctx, c, ref.BoardID)

	case domain.EventLeaveBoard:
		var ref dto.BoardRef
		if err := json.Unmarshal(env.Data, &ref); err != nil || ref.BoardID == uuid.Nil {
			c.hub.sendError(c, "boardId is required")
			return
		}
		c.hub.Leave(c, ref.BoardID)

	case domain.EventTaskViewing:
		var v dto.TaskViewing
		if err := json.Unmarshal(env.Data, &v); err != nil || v.BoardID == uuid.Nil {
			c.hub.sendError(c, "boardId is required")
			return
		}
		v.UserID = c.userID
		v.UserName = c.userName
		out, err := dto.NewEnvelope(domain.EventTaskViewing, v)
		if err != nil {
			return
		}
		if err := c.hub.Relay(c, v.BoardID, out); err != nil {
			c.hub.sendError(c, "Join the board first")
		}

	default:
		c.hub.sendError(c, "Unknown event "+env.Event)
	}
}

// writePump drains the send queue onto the connection and keeps it alive
// with pings. A closed queue ends the connection with a close frame.
func (c *Client) writePump() {
	cfg := c.hub.cfg
	ticker := time.NewTicker(cfg.PingPeriod())
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
