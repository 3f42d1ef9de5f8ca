package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/careerhub/portal-service/internal/config"
)

// SQLite wraps an embedded modernc.org/sqlite database.
type SQLite struct {
	DB *sql.DB
}

// NewSQLite opens the database file in WAL mode.
func NewSQLite(ctx context.Context, cfg config.SQLiteConfig, logger *zap.Logger) (*SQLite, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path not provided")
	}
	dsn := cfg.Path
	if dsn != ":memory:" {
		dsn = fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", cfg.Path)
	}
	db, err := OpenSQLite(ctx, dsn)
	if err != nil {
		return nil, err
	}
	logger.Info("opened sqlite database", zap.String("path", cfg.Path))
	return db, nil
}

// OpenSQLite opens dsn with a single connection so that ":memory:" databases are shared
// across every query issued through the handle.
func OpenSQLite(ctx context.Context, dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &SQLite{DB: db}, nil
}

// Close releases the database handle.
func (s *SQLite) Close() {
	if s != nil && s.DB != nil {
		_ = s.DB.Close()
	}
}

// Ping verifies database connectivity.
func (s *SQLite) Ping(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return errors.New("sqlite database not configured")
	}
	return s.DB.PingContext(ctx)
}
