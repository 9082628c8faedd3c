// Command boardwatch follows one board live from the terminal. It logs in
// over REST, loads the board snapshot, joins the board room over websocket
// and reprints the board every time an event changes it.
//
// Usage:
//
//	boardwatch --server=http://localhost:8080 --email=ann@example.com --board=<uuid>
//
// The password is read from BOARDWATCH_PASSWORD.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/heartmarshall/taskboard-backend/internal/app"
	"github.com/heartmarshall/taskboard-backend/internal/config"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/transport/dto"
	"github.com/heartmarshall/taskboard-backend/pkg/boardsync"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "base URL of the board API")
	email := flag.String("email", "", "account email")
	boardArg := flag.String("board", "", "board id to follow")
	flag.Parse()

	password := os.Getenv("BOARDWATCH_PASSWORD")
	boardID, err := uuid.Parse(*boardArg)
	if *email == "" || password == "" || err != nil {
		fmt.Fprintln(os.Stderr, "Usage: BOARDWATCH_PASSWORD=... boardwatch --email=user@example.com --board=<uuid> [--server=http://localhost:8080]")
		os.Exit(1)
	}

	logger := app.NewLogger(config.LogConfig{Level: "info", Format: "text"})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := &client{base: strings.TrimRight(*server, "/"), http: &http.Client{Timeout: 15 * time.Second}}
	if err := c.login(ctx, *email, password); err != nil {
		log.Fatalf("login: %v", err)
	}

	var detail dto.BoardDetail
	if err := c.get(ctx, "/api/boards/"+boardID.String(), &detail); err != nil {
		log.Fatalf("load board: %v", err)
	}
	state := boardsync.NewState(detail)
	render(os.Stdout, state)

	if err := c.watch(ctx, boardID, state, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("watch ended", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

type client struct {
	base  string
	http  *http.Client
	token string
}

func (c *client) login(ctx context.Context, email, password string) error {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(req, &out); err != nil {
		return err
	}
	c.token = out.Token
	return nil
}

func (c *client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	return c.do(req, v)
}

func (c *client) do(req *http.Request, v any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		var apiErr dto.ErrorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("%s: %s", apiErr.Error.Code, apiErr.Error.Message)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.Unmarshal(data, v)
}

func (c *client) wsURL() (string, error) {
	u, err := url.Parse(c.base + "/ws")
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.RawQuery = url.Values{"token": {c.token}}.Encode()
	return u.String(), nil
}

// watch joins the board room and applies every event to state until ctx is
// cancelled or the server closes the connection.
func (c *client) watch(ctx context.Context, boardID uuid.UUID, state *boardsync.State, logger *slog.Logger) error {
	target, err := c.wsURL()
	if err != nil {
		return err
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, target, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		_ = conn.Close()
	}()

	join, err := dto.NewEnvelope(domain.EventJoinBoard, dto.BoardRef{BoardID: boardID})
	if err != nil {
		return err
	}
	if err := conn.WriteJSON(join); err != nil {
		return fmt.Errorf("join: %w", err)
	}

	for {
		var env dto.Envelope
		if err := conn.ReadJSON(&env); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}

		if handle(env, state, logger) {
			fmt.Fprintf(os.Stdout, "\n-- %s\n", env.Event)
			render(os.Stdout, state)
		}
	}
}

// handle applies one received envelope and reports whether the board view
// changed. Errors and viewing notices are only logged.
func handle(env dto.Envelope, state *boardsync.State, logger *slog.Logger) bool {
	switch domain.EventName(env.Event) {
	case domain.EventError:
		var p dto.ErrorPayload
		_ = json.Unmarshal(env.Data, &p)
		logger.Warn("server error", slog.String("message", p.Message))
		return false
	case domain.EventTaskViewing:
		var p dto.TaskViewing
		_ = json.Unmarshal(env.Data, &p)
		logger.Info("viewing", slog.String("user", p.UserName), slog.String("task_id", p.TaskID.String()))
		return false
	}

	if err := state.Apply(env); err != nil {
		logger.Warn("apply event", slog.String("event", env.Event), slog.String("error", err.Error()))
		return false
	}
	return true
}

func render(w io.Writer, state *boardsync.State) {
	board := state.Board()
	fmt.Fprintf(w, "%s\n", board.Title)

	if online := state.OnlineUsers(); len(online) > 0 {
		names := make([]string, len(online))
		for i, u := range online {
			names[i] = u.UserName
		}
		fmt.Fprintf(w, "online: %s\n", strings.Join(names, ", "))
	}

	for _, l := range state.Lists() {
		tasks := state.Tasks(l.ID)
		fmt.Fprintf(w, "\n[%s] (%d)\n", l.Title, len(tasks))
		for _, t := range tasks {
			line := fmt.Sprintf("  %3d  %s  (%s)", t.Position, t.Title, t.Priority)
			if len(t.Assignees) > 0 {
				names := make([]string, len(t.Assignees))
				for i, a := range t.Assignees {
					names[i] = a.Name
				}
				line += "  @" + strings.Join(names, ", @")
			}
			if t.DueDate != nil {
				line += "  due " + t.DueDate.Format("2006-01-02")
			}
			fmt.Fprintln(w, line)
		}
	}
}
