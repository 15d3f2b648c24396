package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// withProvider runs fn against a goose provider bound to the embedded migrations
func withProvider(pool *pgxpool.Pool, fn func(*goose.Provider) error) error {
	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return err
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func(db *sql.DB) { _ = db.Close() }(db)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return err
	}
	return fn(provider)
}

// Migrate applies all pending goose migrations embedded in the binary
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	err := withProvider(pool, func(p *goose.Provider) error {
		results, err := p.Up(ctx)
		if err != nil {
			return err
		}
		for _, r := range results {
			slog.Default().Info(LogMsgMigrationApplied, "source", r.Source.Path, "duration", r.Duration)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	return nil
}

// MigrationStatus reports every embedded migration and whether it is applied
func MigrationStatus(ctx context.Context, pool *pgxpool.Pool) ([]*goose.MigrationStatus, error) {
	var statuses []*goose.MigrationStatus
	err := withProvider(pool, func(p *goose.Provider) error {
		var err error
		statuses, err = p.Status(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	return statuses, nil
}
