package persistence

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestRunSQLiteMigrations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := OpenSQLite(ctx, ":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(db.Close)

	// applying twice must be harmless
	for i := 0; i < 2; i++ {
		if err := RunSQLiteMigrations(ctx, db.DB, zap.NewNop()); err != nil {
			t.Fatalf("RunSQLiteMigrations() run %d error = %v", i+1, err)
		}
	}

	for _, table := range []string{"profiles", "meetings", "accounts"} {
		var name string
		err := db.DB.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
	if err := db.Ping(ctx); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestLoadMigrationsBothDialects(t *testing.T) {
	t.Parallel()

	for _, dialect := range []string{"postgres", "sqlite"} {
		migrations, err := loadMigrations(dialect)
		if err != nil {
			t.Fatalf("loadMigrations(%s) error = %v", dialect, err)
		}
		if len(migrations) == 0 {
			t.Errorf("loadMigrations(%s) returned nothing", dialect)
		}
	}
}

func TestNilHandlesReportUnavailable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var pg *Postgres
	var lite *SQLite
	var rdb *Redis
	if pg.Ping(ctx) == nil {
		t.Error("nil Postgres Ping() should fail")
	}
	if lite.Ping(ctx) == nil {
		t.Error("nil SQLite Ping() should fail")
	}
	if rdb.Ping(ctx) == nil {
		t.Error("nil Redis Ping() should fail")
	}
	if rdb.ClientHandle() != nil {
		t.Error("nil Redis ClientHandle() should be nil")
	}
}
