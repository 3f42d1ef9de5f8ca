package persistence

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFiles embed.FS

type migration struct {
	name string
	sql  string
}

// RunPostgresMigrations applies the embedded Postgres schema files in name order.
func RunPostgresMigrations(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		return fmt.Errorf("no postgres pool available")
	}
	return applyMigrations(logger, "postgres", func(m migration) error {
		_, err := pool.Exec(ctx, m.sql)
		return err
	})
}

// RunSQLiteMigrations applies the embedded SQLite schema files in name order.
func RunSQLiteMigrations(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	if db == nil {
		return fmt.Errorf("no sqlite database available")
	}
	return applyMigrations(logger, "sqlite", func(m migration) error {
		_, err := db.ExecContext(ctx, m.sql)
		return err
	})
}

func applyMigrations(logger *zap.Logger, dialect string, exec func(migration) error) error {
	migrations, err := loadMigrations(dialect)
	if err != nil {
		return err
	}
	for _, m := range migrations {
		logger.Info("applying migration", zap.String("dialect", dialect), zap.String("file", m.name))
		if err := exec(m); err != nil {
			return fmt.Errorf("apply migration %s: %w", m.name, err)
		}
	}
	logger.Info("migrations applied", zap.String("dialect", dialect), zap.Int("count", len(migrations)))
	return nil
}

func loadMigrations(dialect string) ([]migration, error) {
	dir := path.Join("migrations", dialect)
	entries, err := fs.ReadDir(migrationFiles, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	migrations := make([]migration, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(migrationFiles, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		migrations = append(migrations, migration{name: name, sql: string(content)})
	}
	return migrations, nil
}
