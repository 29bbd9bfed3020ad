package db

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const migrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version    TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Migration is one forward-only SQL file.
type Migration struct {
	Version string
	SQL     string
}

// LoadMigrations reads *.sql files from dir in lexical order.
func LoadMigrations(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list migrations")
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		body, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read migration %s", name)
		}
		migrations = append(migrations, Migration{
			Version: strings.TrimSuffix(filepath.Base(name), ".sql"),
			SQL:     string(body),
		})
	}
	return migrations, nil
}

// MigrateUp applies every migration in dir that is not yet recorded, each in its own transaction.
// It returns the versions it applied.
func MigrateUp(ctx context.Context, pool *pgxpool.Pool, dir string) ([]string, error) {
	migrations, err := LoadMigrations(os.DirFS(dir))
	if err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, migrationsTable); err != nil {
		return nil, errors.Wrap(err, "failed to create schema_migrations")
	}

	var applied []string
	for _, m := range migrations {
		done, err := applyMigration(ctx, pool, m)
		if err != nil {
			return applied, err
		}
		if done {
			slog.Info("migration applied", "version", m.Version)
			applied = append(applied, m.Version)
		}
	}
	return applied, nil
}

func applyMigration(ctx context.Context, pool *pgxpool.Pool, m Migration) (bool, error) {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, errors.Wrap(err, "failed to begin migration")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// serialises concurrent migrators
	if _, err := tx.Exec(ctx, "LOCK TABLE schema_migrations IN EXCLUSIVE MODE"); err != nil {
		return false, errors.Wrap(err, "failed to lock schema_migrations")
	}

	var exists bool
	if err := tx.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)", m.Version).Scan(&exists); err != nil {
		return false, errors.Wrap(err, "failed to read schema_migrations")
	}
	if exists {
		return false, nil
	}

	if _, err := tx.Exec(ctx, m.SQL); err != nil {
		return false, errors.Wrapf(err, "migration %s failed", m.Version)
	}
	if _, err := tx.Exec(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", m.Version); err != nil {
		return false, errors.Wrapf(err, "failed to record migration %s", m.Version)
	}
	if err := tx.Commit(ctx); err != nil {
		return false, errors.Wrapf(err, "failed to commit migration %s", m.Version)
	}
	return true, nil
}
