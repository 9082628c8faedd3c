// Package board implements the Board repository using PostgreSQL.
// It covers boards and their memberships (board_members).
package board

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// Repo provides board and membership persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new board repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const boardColumns = `id, title, description, color, owner_id, created_at, updated_at`

const createBoardSQL = `
INSERT INTO boards (id, title, description, color, owner_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + boardColumns

const getBoardSQL = `SELECT ` + boardColumns + ` FROM boards WHERE id = $1`

const lockBoardSQL = `SELECT id FROM boards WHERE id = $1 FOR UPDATE`

const touchBoardSQL = `UPDATE boards SET updated_at = now() WHERE id = $1`

const deleteBoardSQL = `DELETE FROM boards WHERE id = $1`

const listForUserSQL = `
SELECT
    b.id, b.title, b.description, b.color, b.owner_id, b.created_at, b.updated_at,
    bm.role,
    u.name,
    (SELECT count(*) FROM lists l WHERE l.board_id = b.id),
    (SELECT count(*) FROM tasks t WHERE t.board_id = b.id)
FROM boards b
JOIN board_members bm ON bm.board_id = b.id AND bm.user_id = $1
JOIN users u ON u.id = b.owner_id
ORDER BY b.updated_at DESC, b.id`

const addMemberSQL = `
INSERT INTO board_members (board_id, user_id, role, joined_at)
VALUES ($1, $2, $3, $4)`

const memberColumns = `bm.board_id, bm.user_id, u.name, u.email, u.avatar_url, bm.role, bm.joined_at`

const getMemberSQL = `
SELECT ` + memberColumns + `
FROM board_members bm
JOIN users u ON u.id = bm.user_id
WHERE bm.board_id = $1 AND bm.user_id = $2`

const listMembersSQL = `
SELECT ` + memberColumns + `
FROM board_members bm
JOIN users u ON u.id = bm.user_id
WHERE bm.board_id = $1
ORDER BY bm.joined_at, u.name`

// ---------------------------------------------------------------------------
// Board operations
// ---------------------------------------------------------------------------

// Create inserts a new board.
func (r *Repo) Create(ctx context.Context, b *domain.Board) (*domain.Board, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createBoardSQL,
		b.ID, b.Title, b.Description, b.Color, b.OwnerID, b.CreatedAt, b.UpdatedAt,
	)
	created, err := scanBoard(row)
	if err != nil {
		return nil, postgres.MapError(err, "board", b.ID)
	}
	return created, nil
}

// GetByID returns a board by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b, err := scanBoard(q.QueryRow(ctx, getBoardSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "board", id)
	}
	return b, nil
}

// Lock takes a row lock on the board until the surrounding transaction ends.
// Used to serialise appends to the board's list collection.
func (r *Repo) Lock(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var locked uuid.UUID
	if err := q.QueryRow(ctx, lockBoardSQL, id).Scan(&locked); err != nil {
		return postgres.MapError(err, "board", id)
	}
	return nil
}

// Update applies a partial update and returns the updated board.
// An empty update only bumps updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.BoardUpdateParams) (*domain.Board, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Update("boards").
		Set("updated_at", time.Now().UTC()).
		Where("id = ?", id).
		Suffix("RETURNING " + boardColumns)
	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Description != nil {
		b = b.Set("description", *params.Description)
	}
	if params.Color != nil {
		b = b.Set("color", *params.Color)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build board update: %w", err)
	}

	updated, err := scanBoard(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "board", id)
	}
	return updated, nil
}

// Touch bumps updated_at so the board sorts first in its members' board lists.
func (r *Repo) Touch(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, touchBoardSQL, id); err != nil {
		return postgres.MapError(err, "board", id)
	}
	return nil
}

// Delete removes a board. Lists, tasks, memberships, assignments and activity
// cascade. Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteBoardSQL, id)
	if err != nil {
		return postgres.MapError(err, "board", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("board %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListForUser returns every board userID is a member of, most recently
// updated first, with list/task counts and the owner's name.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.BoardSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listForUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list boards for user: %w", err)
	}
	defer rows.Close()

	result := []domain.BoardSummary{}
	for rows.Next() {
		var (
			s    domain.BoardSummary
			role string
		)
		if err := rows.Scan(
			&s.ID, &s.Title, &s.Description, &s.Color, &s.OwnerID, &s.CreatedAt, &s.UpdatedAt,
			&role, &s.OwnerName, &s.ListCount, &s.TaskCount,
		); err != nil {
			return nil, fmt.Errorf("scan board summary: %w", err)
		}
		s.MyRole = domain.Role(role)
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list boards for user: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Membership operations
// ---------------------------------------------------------------------------

// AddMember inserts a membership. An existing membership yields
// domain.ErrAlreadyExists; an unknown board or user yields domain.ErrNotFound.
func (r *Repo) AddMember(ctx context.Context, boardID, userID uuid.UUID, role domain.Role) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, addMemberSQL, boardID, userID, string(role), time.Now().UTC()); err != nil {
		return postgres.MapError(err, "board_member", userID)
	}
	return nil
}

// GetMember returns the membership of userID on boardID, or domain.ErrNotFound.
func (r *Repo) GetMember(ctx context.Context, boardID, userID uuid.UUID) (*domain.Member, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMember(q.QueryRow(ctx, getMemberSQL, boardID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "board_member", userID)
	}
	return m, nil
}

// ListMembers returns the members of a board in join order.
func (r *Repo) ListMembers(ctx context.Context, boardID uuid.UUID) ([]domain.Member, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listMembersSQL, boardID)
	if err != nil {
		return nil, fmt.Errorf("list board members: %w", err)
	}
	defer rows.Close()

	result := []domain.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan board member: %w", err)
		}
		result = append(result, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list board members: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanBoard(row pgx.Row) (*domain.Board, error) {
	var b domain.Board
	if err := row.Scan(&b.ID, &b.Title, &b.Description, &b.Color, &b.OwnerID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func scanMember(row pgx.Row) (*domain.Member, error) {
	var (
		m         domain.Member
		avatarURL pgtype.Text
		role      string
	)
	if err := row.Scan(&m.BoardID, &m.UserID, &m.Name, &m.Email, &avatarURL, &role, &m.JoinedAt); err != nil {
		return nil, err
	}
	if avatarURL.Valid {
		m.AvatarURL = &avatarURL.String
	}
	m.Role = domain.Role(role)
	return &m, nil
}
