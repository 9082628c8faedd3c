package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates a user with a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$04$placeholder",
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedBoard creates a board owned by ownerID, with the owner as admin member.
func SeedBoard(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Board {
	t.Helper()
	ctx := context.Background()

	ts := now()
	board := domain.Board{
		ID:        uuid.New(),
		Title:     "Board " + uniqueSuffix(),
		Color:     domain.DefaultBoardColor,
		OwnerID:   ownerID,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO boards (id, title, description, color, owner_id, created_at, updated_at)
		 VALUES ($1, $2, '', $3, $4, $5, $6)`,
		board.ID, board.Title, board.Color, board.OwnerID, board.CreatedAt, board.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBoard insert board: %v", err)
	}

	SeedMember(t, pool, board.ID, ownerID, domain.RoleAdmin)
	return board
}

// SeedMember adds userID to boardID with role.
func SeedMember(t *testing.T, pool *pgxpool.Pool, boardID, userID uuid.UUID, role domain.Role) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO board_members (board_id, user_id, role) VALUES ($1, $2, $3)`,
		boardID, userID, string(role),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMember: %v", err)
	}
}

// SeedList creates a list on boardID at position.
func SeedList(t *testing.T, pool *pgxpool.Pool, boardID uuid.UUID, title string, position int) domain.List {
	t.Helper()

	ts := now()
	list := domain.List{
		ID:        uuid.New(),
		BoardID:   boardID,
		Title:     title,
		Position:  position,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO lists (id, board_id, title, position, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		list.ID, list.BoardID, list.Title, list.Position, list.CreatedAt, list.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedList: %v", err)
	}

	return list
}

// SeedTask creates a medium-priority task in list at position.
func SeedTask(t *testing.T, pool *pgxpool.Pool, list domain.List, creatorID uuid.UUID, title string, position int) domain.Task {
	t.Helper()

	ts := now()
	task := domain.Task{
		ID:        uuid.New(),
		ListID:    list.ID,
		BoardID:   list.BoardID,
		Title:     title,
		Position:  position,
		Priority:  domain.PriorityMedium,
		CreatedBy: creatorID,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tasks (id, list_id, board_id, title, description, position, priority, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, '', $5, $6, $7, $8, $9)`,
		task.ID, task.ListID, task.BoardID, task.Title, task.Position, string(task.Priority),
		task.CreatedBy, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask: %v", err)
	}

	return task
}
