package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careerhub/portal-service/internal/domain"
)

// AccountRepository persists local identity provider accounts.
type AccountRepository interface {
	// Create returns ErrConflict when the email is already registered.
	Create(ctx context.Context, account *domain.Account) error
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO accounts (id, email, password_hash)
        VALUES ($1, $2, $3)
        RETURNING created_at`
	err := r.pool.QueryRow(ctx, query,
		account.ID,
		normalizeEmail(account.Email),
		account.PasswordHash,
	).Scan(&account.CreatedAt)
	if isPgUniqueViolation(err) {
		return ErrConflict
	}
	if err != nil {
		return err
	}
	account.Email = normalizeEmail(account.Email)
	return nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	const query = `SELECT id, email, password_hash, created_at FROM accounts WHERE email=$1`
	var account domain.Account
	if err := r.pool.QueryRow(ctx, query, normalizeEmail(email)).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.CreatedAt,
	); err != nil {
		return nil, mapPgNoRows(err)
	}
	return &account, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
