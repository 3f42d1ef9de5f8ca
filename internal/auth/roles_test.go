package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/careerhub/portal-service/internal/domain"
	"github.com/careerhub/portal-service/internal/repository"
	apperrors "github.com/careerhub/portal-service/pkg/util/errorutil"
)

type stubProfiles map[string]*domain.Profile

func (s stubProfiles) GetByUID(_ context.Context, uid string) (*domain.Profile, error) {
	if uid == "broken" {
		return nil, errors.New("db down")
	}
	if p, ok := s[uid]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func TestAdminPolicy(t *testing.T) {
	t.Parallel()

	profiles := stubProfiles{
		"admin-uid":     {UID: "admin-uid", Role: domain.ProfileRoleAdmin},
		"candidate-uid": {UID: "candidate-uid", Role: "candidate"},
	}

	tests := []struct {
		name     string
		policy   *AdminPolicy
		subject  string
		want     bool
		wantCode string
	}{
		{name: "open policy allows anyone", policy: NewAdminPolicy(nil, false, profiles), subject: "candidate-uid", want: true},
		{name: "listed subject", policy: NewAdminPolicy([]string{"ops"}, false, profiles), subject: "ops", want: true},
		{name: "unlisted non-admin", policy: NewAdminPolicy([]string{"ops"}, false, profiles), subject: "candidate-uid", want: false},
		{name: "enforced admin role", policy: NewAdminPolicy(nil, true, profiles), subject: "admin-uid", want: true},
		{name: "enforced without profile", policy: NewAdminPolicy(nil, true, profiles), subject: "ghost", want: false},
		{name: "enforced storage failure", policy: NewAdminPolicy(nil, true, profiles), subject: "broken", wantCode: apperrors.CodeStorageError},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.policy.Allows(context.Background(), domain.Identity{SubjectID: tt.subject})
			if tt.wantCode != "" {
				if !apperrors.HasCode(err, tt.wantCode) {
					t.Fatalf("Allows() error = %v, want %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Allows() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Allows() = %v, want %v", got, tt.want)
			}
		})
	}
}
