// Package task implements the Task repository using PostgreSQL.
// It covers tasks, their positions within lists, and M2M assignment via the
// task_assignees join table.
package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new task repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

var taskColumns = []string{
	"t.id", "t.list_id", "t.board_id", "t.title", "t.description", "t.position",
	"t.priority", "t.due_date", "t.created_by", "u.name", "t.created_at", "t.updated_at",
}

var selectTaskSQL = `SELECT ` + strings.Join(taskColumns, ", ") + `
FROM tasks t
JOIN users u ON u.id = t.created_by`

const createTaskSQL = `
INSERT INTO tasks (id, list_id, board_id, title, description, position, priority, due_date, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const slotsByListSQL = `
SELECT id, position
FROM tasks
WHERE list_id = $1
ORDER BY position, created_at`

const shiftTailSQL = `
UPDATE tasks SET position = position + 1
WHERE list_id = $1 AND position >= $2 AND id <> $3`

const setPlacementSQL = `
UPDATE tasks SET list_id = $2, position = $3, updated_at = $4
WHERE id = $1`

const deleteTaskSQL = `DELETE FROM tasks WHERE id = $1`

const assignSQL = `
INSERT INTO task_assignees (task_id, user_id, assigned_at)
VALUES ($1, $2, $3)
ON CONFLICT DO NOTHING`

const unassignSQL = `DELETE FROM task_assignees WHERE task_id = $1 AND user_id = $2`

const assigneesByTaskIDsSQL = `
SELECT ta.task_id, u.id, u.name
FROM task_assignees ta
JOIN users u ON u.id = ta.user_id
WHERE ta.task_id = ANY($1::uuid[])
ORDER BY ta.task_id, ta.assigned_at, u.name`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a hydrated task that belongs to boardID. A task on another
// board is reported as domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, boardID, taskID uuid.UUID) (*domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTask(q.QueryRow(ctx, selectTaskSQL+` WHERE t.id = $1 AND t.board_id = $2`, taskID, boardID))
	if err != nil {
		return nil, postgres.MapError(err, "task", taskID)
	}

	tasks := []domain.Task{*t}
	if err := r.hydrateAssignees(ctx, q, tasks); err != nil {
		return nil, err
	}
	return &tasks[0], nil
}

// ListByBoard returns every task on the board, hydrated, sorted by list then
// position.
func (r *Repo) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, selectTaskSQL+` WHERE t.board_id = $1 ORDER BY t.list_id, t.position, t.created_at`, boardID)
	if err != nil {
		return nil, fmt.Errorf("list tasks by board: %w", err)
	}
	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, fmt.Errorf("list tasks by board: %w", err)
	}

	if err := r.hydrateAssignees(ctx, q, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Search returns one page of the board's tasks matching filter, newest first,
// and the total number of matches.
func (r *Repo) Search(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	// uuid.UUID is an array type; sq.Eq would expand it into an IN list.
	where := sq.And{sq.Expr("t.board_id = ?", filter.BoardID)}
	if filter.ListID != nil {
		where = append(where, sq.Expr("t.list_id = ?", *filter.ListID))
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + escapeLike(*filter.Search) + "%"
		where = append(where, sq.Or{sq.ILike{"t.title": pattern}, sq.ILike{"t.description": pattern}})
	}

	countSQL, countArgs, err := postgres.Builder.Select("count(*)").From("tasks t").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build task count: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	query, args, err := postgres.Builder.Select(taskColumns...).
		From("tasks t").
		Join("users u ON u.id = t.created_by").
		Where(where).
		OrderBy("t.created_at DESC", "t.id").
		Limit(uint64(filter.Page.Limit)).
		Offset(uint64(filter.Page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build task search: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search tasks: %w", err)
	}
	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("search tasks: %w", err)
	}

	if err := r.hydrateAssignees(ctx, q, tasks); err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// Slots returns the (id, position) pairs of a list's tasks, sorted.
func (r *Repo) Slots(ctx context.Context, listID uuid.UUID) ([]domain.Slot, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, slotsByListSQL, listID)
	if err != nil {
		return nil, fmt.Errorf("task slots: %w", err)
	}
	defer rows.Close()

	slots := []domain.Slot{}
	for rows.Next() {
		var s domain.Slot
		if err := rows.Scan(&s.ID, &s.Position); err != nil {
			return nil, fmt.Errorf("scan task slot: %w", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task slots: %w", err)
	}
	return slots, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new task. Hydrated fields are ignored.
func (r *Repo) Create(ctx context.Context, t *domain.Task) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createTaskSQL,
		t.ID, t.ListID, t.BoardID, t.Title, t.Description, t.Position, string(t.Priority),
		timePtrToPg(t.DueDate), t.CreatedBy, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "task", t.ID)
	}
	return nil
}

// ShiftTail increments the position of every task in listID at or after
// from, except excludeID.
func (r *Repo) ShiftTail(ctx context.Context, listID uuid.UUID, from int, excludeID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, shiftTailSQL, listID, from, excludeID); err != nil {
		return postgres.MapError(err, "list", listID)
	}
	return nil
}

// SetPlacement moves a task to listID at position.
func (r *Repo) SetPlacement(ctx context.Context, taskID, listID uuid.UUID, position int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setPlacementSQL, taskID, listID, position, time.Now().UTC())
	if err != nil {
		return postgres.MapError(err, "task", taskID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}
	return nil
}

// Update applies a partial update. An empty update only bumps updated_at.
func (r *Repo) Update(ctx context.Context, taskID uuid.UUID, params domain.TaskUpdateParams) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.Update("tasks").
		Set("updated_at", time.Now().UTC()).
		Where("id = ?", taskID)
	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Description != nil {
		b = b.Set("description", *params.Description)
	}
	if params.Priority != nil {
		b = b.Set("priority", string(*params.Priority))
	}
	switch {
	case params.ClearDueDate:
		b = b.Set("due_date", nil)
	case params.DueDate != nil:
		b = b.Set("due_date", *params.DueDate)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build task update: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "task", taskID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a task; its assignments cascade.
func (r *Repo) Delete(ctx context.Context, taskID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteTaskSQL, taskID)
	if err != nil {
		return postgres.MapError(err, "task", taskID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Assignment operations
// ---------------------------------------------------------------------------

// Assign links userID to taskID. It reports whether a new row was inserted;
// an existing assignment is a no-op.
func (r *Repo) Assign(ctx context.Context, taskID, userID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, assignSQL, taskID, userID, time.Now().UTC())
	if err != nil {
		return false, postgres.MapError(err, "task_assignee", taskID)
	}
	return tag.RowsAffected() == 1, nil
}

// Unassign removes the link. It reports whether a row was deleted; a missing
// assignment is a no-op.
func (r *Repo) Unassign(ctx context.Context, taskID, userID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, unassignSQL, taskID, userID)
	if err != nil {
		return false, postgres.MapError(err, "task_assignee", taskID)
	}
	return tag.RowsAffected() == 1, nil
}

// hydrateAssignees fills Assignees of every task with one batched query.
func (r *Repo) hydrateAssignees(ctx context.Context, q postgres.Querier, tasks []domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(tasks))
	for i := range tasks {
		ids[i] = tasks[i].ID
		tasks[i].Assignees = []domain.UserRef{}
	}

	rows, err := q.Query(ctx, assigneesByTaskIDsSQL, ids)
	if err != nil {
		return fmt.Errorf("load assignees: %w", err)
	}
	defer rows.Close()

	byTask := make(map[uuid.UUID][]domain.UserRef, len(tasks))
	for rows.Next() {
		var (
			taskID uuid.UUID
			ref    domain.UserRef
		)
		if err := rows.Scan(&taskID, &ref.ID, &ref.Name); err != nil {
			return fmt.Errorf("scan assignee: %w", err)
		}
		byTask[taskID] = append(byTask[taskID], ref)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load assignees: %w", err)
	}

	for i := range tasks {
		if refs, ok := byTask[tasks[i].ID]; ok {
			tasks[i].Assignees = refs
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanTasks(rows pgx.Rows) ([]domain.Task, error) {
	defer rows.Close()

	result := []domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var (
		t        domain.Task
		priority string
		dueDate  pgtype.Timestamptz
	)
	if err := row.Scan(
		&t.ID, &t.ListID, &t.BoardID, &t.Title, &t.Description, &t.Position,
		&priority, &dueDate, &t.CreatedBy, &t.CreatorName, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	t.Priority = domain.Priority(priority)
	if dueDate.Valid {
		d := dueDate.Time
		t.DueDate = &d
	}
	return &t, nil
}

func timePtrToPg(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

// escapeLike escapes LIKE wildcards in user input.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
