package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/careerhub/portal-service/internal/domain"
	"github.com/careerhub/portal-service/internal/repository"
	apperrors "github.com/careerhub/portal-service/pkg/util/errorutil"
)

// RegisterInput describes a profile registration payload.
type RegisterInput struct {
	Name            string
	Email           string
	Role            string
	Mobile          string
	Address         string
	Position        string
	Experience      string
	CVURL           string
	CertificatesURL string
}

// ProfileService handles registration and login for authenticated identities.
type ProfileService struct {
	profiles repository.ProfileRepository
	admins   map[string]struct{}
	logger   *zap.Logger
}

// NewProfileService builds the service. Only adminSubjects may register with the admin role;
// any other admin profile has to be granted directly in the store.
func NewProfileService(profiles repository.ProfileRepository, adminSubjects []string, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	admins := make(map[string]struct{}, len(adminSubjects))
	for _, s := range adminSubjects {
		if s = strings.TrimSpace(s); s != "" {
			admins[s] = struct{}{}
		}
	}
	return &ProfileService{profiles: profiles, admins: admins, logger: logger}
}

// Register stores the caller's profile, overwriting any previous one.
func (s *ProfileService) Register(ctx context.Context, identity domain.Identity, input RegisterInput) (*domain.Profile, error) {
	if identity.SubjectID == "" {
		return nil, apperrors.NewUnauthenticated("authentication required")
	}
	profile := &domain.Profile{
		UID:             identity.SubjectID,
		Name:            strings.TrimSpace(input.Name),
		Email:           strings.TrimSpace(input.Email),
		Role:            domain.ProfileRole(strings.ToLower(strings.TrimSpace(input.Role))),
		Mobile:          strings.TrimSpace(input.Mobile),
		Address:         strings.TrimSpace(input.Address),
		Position:        strings.TrimSpace(input.Position),
		Experience:      strings.TrimSpace(input.Experience),
		CVURL:           strings.TrimSpace(input.CVURL),
		CertificatesURL: strings.TrimSpace(input.CertificatesURL),
	}

	var missing []string
	if profile.Name == "" {
		missing = append(missing, "name")
	}
	if profile.Email == "" {
		missing = append(missing, "email")
	}
	if profile.Role == "" {
		missing = append(missing, "role")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewMissingFields(missing...)
	}
	if profile.Role == domain.ProfileRoleAdmin {
		if _, ok := s.admins[identity.SubjectID]; !ok {
			return nil, apperrors.NewForbidden("admin role cannot be self-assigned")
		}
	}

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		s.logger.Error("store profile failed", zap.String("uid", identity.SubjectID), zap.Error(err))
		return nil, apperrors.NewStorageError(err)
	}
	return profile, nil
}

// Login returns the caller's stored profile. A caller without one gets NotFound.
func (s *ProfileService) Login(ctx context.Context, identity domain.Identity) (*domain.Profile, error) {
	if identity.SubjectID == "" {
		return nil, apperrors.NewUnauthenticated("authentication required")
	}
	profile, err := s.profiles.GetByUID(ctx, identity.SubjectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("profile", map[string]any{"uid": identity.SubjectID})
		}
		s.logger.Error("load profile failed", zap.String("uid", identity.SubjectID), zap.Error(err))
		return nil, apperrors.NewStorageError(err)
	}
	return profile, nil
}
