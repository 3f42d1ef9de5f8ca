package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careerhub/portal-service/internal/domain"
)

// ProfileRepository persists portal profiles keyed by identity subject.
type ProfileRepository interface {
	// Upsert writes the profile, replacing every field of an existing one except CreatedAt.
	Upsert(ctx context.Context, profile *domain.Profile) error
	GetByUID(ctx context.Context, uid string) (*domain.Profile, error)
}

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a Postgres-backed implementation.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	const query = `
        INSERT INTO profiles (uid, name, email, role, mobile, address, position, experience, cv_url, certificates_url)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        ON CONFLICT (uid) DO UPDATE SET
            name=EXCLUDED.name, email=EXCLUDED.email, role=EXCLUDED.role, mobile=EXCLUDED.mobile,
            address=EXCLUDED.address, position=EXCLUDED.position, experience=EXCLUDED.experience,
            cv_url=EXCLUDED.cv_url, certificates_url=EXCLUDED.certificates_url, updated_at=NOW()
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		profile.UID,
		profile.Name,
		profile.Email,
		profile.Role,
		profile.Mobile,
		profile.Address,
		profile.Position,
		profile.Experience,
		profile.CVURL,
		profile.CertificatesURL,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByUID(ctx context.Context, uid string) (*domain.Profile, error) {
	const query = `
        SELECT uid, name, email, role, mobile, address, position, experience, cv_url, certificates_url, created_at, updated_at
        FROM profiles WHERE uid=$1`

	var profile domain.Profile
	if err := r.pool.QueryRow(ctx, query, uid).Scan(
		&profile.UID,
		&profile.Name,
		&profile.Email,
		&profile.Role,
		&profile.Mobile,
		&profile.Address,
		&profile.Position,
		&profile.Experience,
		&profile.CVURL,
		&profile.CertificatesURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, mapPgNoRows(err)
	}
	return &profile, nil
}
