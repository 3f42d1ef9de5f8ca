package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/careerhub/portal-service/internal/domain"
)

const profileCachePrefix = "profile:"

// cachedProfile is the JSON shape stored in Redis.
type cachedProfile struct {
	UID             string    `json:"uid"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	Mobile          string    `json:"mobile"`
	Address         string    `json:"address"`
	Position        string    `json:"position"`
	Experience      string    `json:"experience"`
	CVURL           string    `json:"cv_url"`
	CertificatesURL string    `json:"certificates_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type cachingProfileRepository struct {
	next   ProfileRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachingProfileRepository wraps next with a Redis read-through cache. Cache failures are
// logged and fall through to next; they never fail the call. A nil client or non-positive
// ttl returns next unchanged.
func NewCachingProfileRepository(next ProfileRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) ProfileRepository {
	if client == nil || ttl <= 0 {
		return next
	}
	return &cachingProfileRepository{next: next, client: client, ttl: ttl, logger: logger}
}

func (r *cachingProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	if err := r.next.Upsert(ctx, profile); err != nil {
		return err
	}
	if err := r.client.Del(ctx, profileCachePrefix+profile.UID).Err(); err != nil {
		r.logger.Warn("profile cache invalidate failed", zap.String("uid", profile.UID), zap.Error(err))
	}
	return nil
}

func (r *cachingProfileRepository) GetByUID(ctx context.Context, uid string) (*domain.Profile, error) {
	key := profileCachePrefix + uid
	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedProfile
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			return cached.toDomain(), nil
		}
		r.logger.Warn("profile cache entry corrupt", zap.String("uid", uid))
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("profile cache read failed", zap.String("uid", uid), zap.Error(err))
	}

	profile, err := r.next.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if payload, jsonErr := json.Marshal(fromDomainProfile(profile)); jsonErr == nil {
		if setErr := r.client.Set(ctx, key, payload, r.ttl).Err(); setErr != nil {
			r.logger.Warn("profile cache write failed", zap.String("uid", uid), zap.Error(setErr))
		}
	}
	return profile, nil
}

func fromDomainProfile(p *domain.Profile) cachedProfile {
	return cachedProfile{
		UID:             p.UID,
		Name:            p.Name,
		Email:           p.Email,
		Role:            string(p.Role),
		Mobile:          p.Mobile,
		Address:         p.Address,
		Position:        p.Position,
		Experience:      p.Experience,
		CVURL:           p.CVURL,
		CertificatesURL: p.CertificatesURL,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (c cachedProfile) toDomain() *domain.Profile {
	return &domain.Profile{
		UID:             c.UID,
		Name:            c.Name,
		Email:           c.Email,
		Role:            domain.ProfileRole(c.Role),
		Mobile:          c.Mobile,
		Address:         c.Address,
		Position:        c.Position,
		Experience:      c.Experience,
		CVURL:           c.CVURL,
		CertificatesURL: c.CertificatesURL,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
