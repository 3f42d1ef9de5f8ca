package auth

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/careerhub/portal-service/internal/domain"
	"github.com/careerhub/portal-service/internal/repository"
	apperrors "github.com/careerhub/portal-service/pkg/util/errorutil"
)

// ProfileLookup is the slice of the profile store the admin guard needs.
type ProfileLookup interface {
	GetByUID(ctx context.Context, uid string) (*domain.Profile, error)
}

// AdminPolicy decides who may use the meeting approval endpoints.
type AdminPolicy struct {
	subjects map[string]struct{}
	enforce  bool
	profiles ProfileLookup
}

// NewAdminPolicy builds a policy. With no listed subjects and enforce off, every
// authenticated identity is allowed.
func NewAdminPolicy(subjects []string, enforce bool, profiles ProfileLookup) *AdminPolicy {
	set := make(map[string]struct{}, len(subjects))
	for _, s := range subjects {
		if s != "" {
			set[s] = struct{}{}
		}
	}
	return &AdminPolicy{subjects: set, enforce: enforce, profiles: profiles}
}

// Allows reports whether identity may act as an administrator.
func (p *AdminPolicy) Allows(ctx context.Context, identity domain.Identity) (bool, error) {
	if _, ok := p.subjects[identity.SubjectID]; ok {
		return true, nil
	}
	if !p.enforce && len(p.subjects) == 0 {
		return true, nil
	}
	if p.profiles == nil {
		return false, nil
	}
	profile, err := p.profiles.GetByUID(ctx, identity.SubjectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, apperrors.NewStorageError(err)
	}
	return profile.Role == domain.ProfileRoleAdmin, nil
}

// RequireAdmin ensures the authenticated identity passes the admin policy.
func RequireAdmin(policy *AdminPolicy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := MustIdentity(c)
		if err != nil {
			return err
		}
		allowed, err := policy.Allows(c.UserContext(), identity)
		if err != nil {
			return err
		}
		if !allowed {
			return apperrors.NewForbidden("administrator role required")
		}
		return c.Next()
	}
}
