package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/taskboard-backend/migrations"
)

// NewMigrator opens a database/sql handle on dsn (goose requires *sql.DB) and
// returns a goose provider over the embedded migrations. The caller closes db.
func NewMigrator(dsn string) (*goose.Provider, *sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("sql.Open: %w", err)
	}

	provider, err := newProvider(db, migrations.FS)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return provider, db, nil
}

// Migrate applies all pending migrations.
func Migrate(ctx context.Context, dsn string) ([]*goose.MigrationResult, error) {
	provider, db, err := NewMigrator(dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return results, fmt.Errorf("goose up: %w", err)
	}
	return results, nil
}

// goose.NewProvider handles $$-delimited bodies correctly, unlike the legacy
// goose.Up which splits on semicolons.
func newProvider(db *sql.DB, fsys fs.FS) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}
	return provider, nil
}
