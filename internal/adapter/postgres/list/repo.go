// Package list implements the List repository using PostgreSQL.
package list

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// Repo provides list persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new list repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const listColumns = `id, board_id, title, position, created_at, updated_at`

const createListSQL = `
INSERT INTO lists (id, board_id, title, position, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + listColumns

const getListSQL = `SELECT ` + listColumns + ` FROM lists WHERE id = $1 AND board_id = $2`

const listByBoardSQL = `
SELECT ` + listColumns + `
FROM lists
WHERE board_id = $1
ORDER BY position, created_at`

const slotsByBoardSQL = `
SELECT id, position
FROM lists
WHERE board_id = $1
ORDER BY position, created_at`

const lockListsSQL = `
SELECT id
FROM lists
WHERE id = ANY($1::uuid[]) AND board_id = $2
ORDER BY id
FOR UPDATE`

const updateTitleSQL = `
UPDATE lists SET title = $2, updated_at = $3
WHERE id = $1
RETURNING ` + listColumns

const deleteListSQL = `DELETE FROM lists WHERE id = $1`

const setPositionSQL = `UPDATE lists SET position = $3, updated_at = now() WHERE id = $1 AND board_id = $2`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts a new list.
func (r *Repo) Create(ctx context.Context, l *domain.List) (*domain.List, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanList(q.QueryRow(ctx, createListSQL,
		l.ID, l.BoardID, l.Title, l.Position, l.CreatedAt, l.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "list", l.ID)
	}
	return created, nil
}

// GetByID returns a list that belongs to boardID. A list on another board is
// reported as domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, boardID, listID uuid.UUID) (*domain.List, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanList(q.QueryRow(ctx, getListSQL, listID, boardID))
	if err != nil {
		return nil, postgres.MapError(err, "list", listID)
	}
	return l, nil
}

// ListByBoard returns the board's lists sorted by position.
func (r *Repo) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]domain.List, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByBoardSQL, boardID)
	if err != nil {
		return nil, fmt.Errorf("list lists by board: %w", err)
	}
	defer rows.Close()

	result := []domain.List{}
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		result = append(result, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list lists by board: %w", err)
	}
	return result, nil
}

// Slots returns the (id, position) pairs of the board's lists, sorted.
func (r *Repo) Slots(ctx context.Context, boardID uuid.UUID) ([]domain.Slot, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, slotsByBoardSQL, boardID)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	slots := []domain.Slot{}
	for rows.Next() {
		var s domain.Slot
		if err := rows.Scan(&s.ID, &s.Position); err != nil {
			return nil, fmt.Errorf("scan list slot: %w", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return slots, nil
}

// Lock takes row locks on the given lists of boardID, in id order, until the
// surrounding transaction ends. It fails with domain.ErrNotFound unless every
// id names a list on the board.
func (r *Repo) Lock(ctx context.Context, boardID uuid.UUID, listIDs ...uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	want := make(map[uuid.UUID]struct{}, len(listIDs))
	for _, id := range listIDs {
		want[id] = struct{}{}
	}

	rows, err := q.Query(ctx, lockListsSQL, listIDs, boardID)
	if err != nil {
		return fmt.Errorf("lock lists: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scan locked list: %w", err)
		}
		delete(want, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("lock lists: %w", err)
	}

	if len(want) > 0 {
		return fmt.Errorf("lock lists: %d of %d not on board %s: %w", len(want), len(listIDs), boardID, domain.ErrNotFound)
	}
	return nil
}

// UpdateTitle renames a list.
func (r *Repo) UpdateTitle(ctx context.Context, listID uuid.UUID, title string) (*domain.List, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanList(q.QueryRow(ctx, updateTitleSQL, listID, title, time.Now().UTC()))
	if err != nil {
		return nil, postgres.MapError(err, "list", listID)
	}
	return l, nil
}

// Delete removes a list; its tasks and their assignments cascade.
func (r *Repo) Delete(ctx context.Context, listID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteListSQL, listID)
	if err != nil {
		return postgres.MapError(err, "list", listID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("list %s: %w", listID, domain.ErrNotFound)
	}
	return nil
}

// SetPositions writes each item's position as given, restricted to lists of
// boardID, in a single batch round-trip.
func (r *Repo) SetPositions(ctx context.Context, boardID uuid.UUID, items []domain.ReorderItem) error {
	if len(items) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(setPositionSQL, it.ID, boardID, it.Position)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for range items {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("set list position: %w", err)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanList(row pgx.Row) (*domain.List, error) {
	var l domain.List
	if err := row.Scan(&l.ID, &l.BoardID, &l.Title, &l.Position, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}
