package repository

import (
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Stores bundles the repositories for one backend.
type Stores struct {
	Profiles ProfileRepository
	Meetings MeetingRepository
	Accounts AccountRepository
}

// NewPostgresStores builds Postgres-backed repositories.
func NewPostgresStores(pool *pgxpool.Pool) Stores {
	return Stores{
		Profiles: NewProfileRepository(pool),
		Meetings: NewMeetingRepository(pool),
		Accounts: NewAccountRepository(pool),
	}
}

// NewSQLiteStores builds SQLite-backed repositories.
func NewSQLiteStores(db *sql.DB) Stores {
	return Stores{
		Profiles: NewSQLiteProfileRepository(db),
		Meetings: NewSQLiteMeetingRepository(db),
		Accounts: NewSQLiteAccountRepository(db),
	}
}
