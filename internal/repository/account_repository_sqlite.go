package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/careerhub/portal-service/internal/domain"
)

type sqliteAccountRepository struct {
	db *sql.DB
}

// NewSQLiteAccountRepository returns an SQLite-backed implementation.
func NewSQLiteAccountRepository(db *sql.DB) AccountRepository {
	return &sqliteAccountRepository{db: db}
}

func (r *sqliteAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	now := time.Now().UTC().Truncate(time.Millisecond)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		account.ID,
		normalizeEmail(account.Email),
		account.PasswordHash,
		toMillis(now),
	)
	if err != nil {
		if isSQLiteUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	account.Email = normalizeEmail(account.Email)
	account.CreatedAt = now
	return nil
}

func (r *sqliteAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var (
		account   domain.Account
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM accounts WHERE email=?`,
		normalizeEmail(email),
	).Scan(&account.ID, &account.Email, &account.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	account.CreatedAt = fromMillis(createdAt)
	return &account, nil
}
