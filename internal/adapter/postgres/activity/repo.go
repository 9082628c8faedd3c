// Package activity implements the Activity repository using PostgreSQL.
// It provides append-only operations for board activity entries.
package activity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const createEntrySQL = `
INSERT INTO activity_entries (id, board_id, user_id, action, entity_type, entity_id, entity_title, metadata, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const countByBoardSQL = `SELECT count(*) FROM activity_entries WHERE board_id = $1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new activity entry.
func (r *Repo) Create(ctx context.Context, e domain.ActivityEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	metadata := e.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("activity_entry marshal metadata: %w", err)
	}

	_, err = q.Exec(ctx, createEntrySQL,
		e.ID, e.BoardID, e.UserID, string(e.Action), string(e.EntityType),
		e.EntityID, e.EntityTitle, metadataJSON, e.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "activity_entry", e.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByBoard returns one page of a board's activity, newest first, hydrated
// with the acting user's name, and the board's total entry count.
func (r *Repo) ListByBoard(ctx context.Context, boardID uuid.UUID, page domain.Page) ([]domain.ActivityEntry, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, countByBoardSQL, boardID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count activity: %w", err)
	}

	query, args, err := postgres.Builder.
		Select("a.id", "a.board_id", "a.user_id", "u.name", "a.action", "a.entity_type",
			"a.entity_id", "a.entity_title", "a.metadata", "a.created_at").
		From("activity_entries a").
		Join("users u ON u.id = a.user_id").
		Where("a.board_id = ?", boardID).
		OrderBy("a.created_at DESC", "a.id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build activity query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	entries := []domain.ActivityEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list activity: %w", err)
	}

	return entries, total, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (domain.ActivityEntry, error) {
	var (
		e          domain.ActivityEntry
		action     string
		entityType string
		metadata   []byte
	)
	if err := row.Scan(
		&e.ID, &e.BoardID, &e.UserID, &e.UserName, &action, &entityType,
		&e.EntityID, &e.EntityTitle, &metadata, &e.CreatedAt,
	); err != nil {
		return domain.ActivityEntry{}, fmt.Errorf("scan activity entry: %w", err)
	}
	e.Action = domain.ActivityAction(action)
	e.EntityType = domain.EntityType(entityType)

	if len(metadata) > 0 {
		m := make(map[string]any)
		if err := json.Unmarshal(metadata, &m); err != nil {
			return domain.ActivityEntry{}, fmt.Errorf("activity_entry %s unmarshal metadata: %w", e.ID, err)
		}
		e.Metadata = m
	}
	return e, nil
}
