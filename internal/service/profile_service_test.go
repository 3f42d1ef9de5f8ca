package service

import (
	"context"
	"testing"

	"github.com/careerhub/portal-service/internal/domain"
	apperrors "github.com/careerhub/portal-service/pkg/util/errorutil"
)

func TestProfileRegisterAndLogin(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newTestStores(t).Profiles, nil, nil)
	ctx := context.Background()
	caller := domain.Identity{SubjectID: "uid-7"}

	if _, err := svc.Login(ctx, caller); !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Fatalf("Login() before register error = %v, want NOT_FOUND", err)
	}

	profile, err := svc.Register(ctx, caller, RegisterInput{
		Name:     " Linus ",
		Email:    "linus@example.com",
		Role:     "Candidate",
		Position: "Backend engineer",
		CVURL:    "https://files.example.com/cv.pdf",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if profile.UID != "uid-7" || profile.Name != "Linus" || profile.Role != "candidate" {
		t.Errorf("profile = %+v", profile)
	}

	got, err := svc.Login(ctx, caller)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if got.Email != "linus@example.com" || got.CVURL != "https://files.example.com/cv.pdf" {
		t.Errorf("login profile = %+v", got)
	}

	if _, err := svc.Register(ctx, caller, RegisterInput{Name: "Linus T", Email: "linus@example.com", Role: "employer"}); err != nil {
		t.Fatalf("re-Register() error = %v", err)
	}
	got, _ = svc.Login(ctx, caller)
	if got.Name != "Linus T" || got.Role != "employer" || got.CVURL != "" {
		t.Errorf("profile after overwrite = %+v", got)
	}
}

func TestProfileRegisterValidation(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newTestStores(t).Profiles, nil, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.Identity{SubjectID: "uid-1"}, RegisterInput{Email: "a@b.c"})
	wantCode(t, err, apperrors.CodeValidationFailed)
	missing, _ := apperrors.ToDomainError(err).Details["missing"].([]string)
	if len(missing) != 2 || missing[0] != "name" || missing[1] != "role" {
		t.Errorf("missing = %v, want [name role]", missing)
	}

	_, err = svc.Register(ctx, domain.Identity{}, RegisterInput{Name: "n", Email: "e", Role: "r"})
	wantCode(t, err, apperrors.CodeUnauthenticated)

	if _, err := svc.Login(ctx, domain.Identity{SubjectID: "uid-1"}); !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Errorf("rejected register must not create a profile, Login() error = %v", err)
	}
}

func TestProfileRegisterAdminRole(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newTestStores(t).Profiles, []string{"root-uid"}, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.Identity{SubjectID: "uid-1"}, RegisterInput{Name: "Mallory", Email: "m@example.com", Role: " Admin "})
	wantCode(t, err, apperrors.CodeForbidden)
	if _, err := svc.Login(ctx, domain.Identity{SubjectID: "uid-1"}); !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Errorf("rejected admin register must not store a profile, Login() error = %v", err)
	}

	profile, err := svc.Register(ctx, domain.Identity{SubjectID: "root-uid"}, RegisterInput{Name: "Root", Email: "root@example.com", Role: "admin"})
	if err != nil {
		t.Fatalf("listed admin Register() error = %v", err)
	}
	if profile.Role != domain.ProfileRoleAdmin {
		t.Errorf("Role = %q, want admin", profile.Role)
	}
}
