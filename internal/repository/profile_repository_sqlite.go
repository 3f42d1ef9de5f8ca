package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/careerhub/portal-service/internal/domain"
)

type sqliteProfileRepository struct {
	db *sql.DB
}

// NewSQLiteProfileRepository returns an SQLite-backed implementation.
func NewSQLiteProfileRepository(db *sql.DB) ProfileRepository {
	return &sqliteProfileRepository{db: db}
}

func (r *sqliteProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	const query = `
        INSERT INTO profiles (uid, name, email, role, mobile, address, position, experience, cv_url, certificates_url, created_at, updated_at)
        VALUES (?,?,?,?,?,?,?,?,?,?,?,?)
        ON CONFLICT (uid) DO UPDATE SET
            name=excluded.name, email=excluded.email, role=excluded.role, mobile=excluded.mobile,
            address=excluded.address, position=excluded.position, experience=excluded.experience,
            cv_url=excluded.cv_url, certificates_url=excluded.certificates_url, updated_at=excluded.updated_at
        RETURNING created_at, updated_at`

	now := toMillis(time.Now())
	var createdAt, updatedAt int64
	if err := r.db.QueryRowContext(ctx, query,
		profile.UID,
		profile.Name,
		profile.Email,
		string(profile.Role),
		profile.Mobile,
		profile.Address,
		profile.Position,
		profile.Experience,
		profile.CVURL,
		profile.CertificatesURL,
		now,
		now,
	).Scan(&createdAt, &updatedAt); err != nil {
		return err
	}
	profile.CreatedAt = fromMillis(createdAt)
	profile.UpdatedAt = fromMillis(updatedAt)
	return nil
}

func (r *sqliteProfileRepository) GetByUID(ctx context.Context, uid string) (*domain.Profile, error) {
	const query = `
        SELECT uid, name, email, role, mobile, address, position, experience, cv_url, certificates_url, created_at, updated_at
        FROM profiles WHERE uid=?`

	var (
		profile              domain.Profile
		role                 string
		createdAt, updatedAt int64
	)
	if err := r.db.QueryRowContext(ctx, query, uid).Scan(
		&profile.UID,
		&profile.Name,
		&profile.Email,
		&role,
		&profile.Mobile,
		&profile.Address,
		&profile.Position,
		&profile.Experience,
		&profile.CVURL,
		&profile.CertificatesURL,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	profile.Role = domain.ProfileRole(role)
	profile.CreatedAt = fromMillis(createdAt)
	profile.UpdatedAt = fromMillis(updatedAt)
	return &profile, nil
}
