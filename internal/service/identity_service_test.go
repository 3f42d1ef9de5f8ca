package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/careerhub/portal-service/internal/auth"
	apperrors "github.com/careerhub/portal-service/pkg/util/errorutil"
)

func newIdentityService(t *testing.T) (*IdentityService, *auth.TokenManager) {
	t.Helper()

	tokens := auth.NewTokenManager("test-secret", "portal-identity", "portal-service", time.Hour)
	return NewIdentityService(newTestStores(t).Accounts, tokens, bcrypt.MinCost, nil), tokens
}

func TestIdentitySignUpAndSignIn(t *testing.T) {
	t.Parallel()

	svc, tokens := newIdentityService(t)
	ctx := context.Background()

	grant, err := svc.SignUp(ctx, " Mary@Example.com ", "hunter22")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if grant.Email != "mary@example.com" || grant.LocalID == "" || grant.IDToken == "" {
		t.Errorf("grant = %+v", grant)
	}
	subject, err := tokens.Verify(ctx, grant.IDToken)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if subject != grant.LocalID {
		t.Errorf("subject = %q, want %q", subject, grant.LocalID)
	}

	again, err := svc.SignIn(ctx, "mary@example.com", "hunter22")
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if again.LocalID != grant.LocalID {
		t.Errorf("LocalID = %q, want stable %q", again.LocalID, grant.LocalID)
	}
}

func TestIdentityErrors(t *testing.T) {
	t.Parallel()

	svc, _ := newIdentityService(t)
	ctx := context.Background()
	if _, err := svc.SignUp(ctx, "mary@example.com", "hunter22"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	tests := []struct {
		name string
		call func() error
		code string
	}{
		{"duplicate email", func() error { _, err := svc.SignUp(ctx, "MARY@example.com", "another1"); return err }, apperrors.CodeConflict},
		{"short password", func() error { _, err := svc.SignUp(ctx, "bob@example.com", "abc"); return err }, apperrors.CodeValidationFailed},
		{"bad email", func() error { _, err := svc.SignUp(ctx, "not-an-email", "hunter22"); return err }, apperrors.CodeValidationFailed},
		{"missing fields", func() error { _, err := svc.SignIn(ctx, "", ""); return err }, apperrors.CodeValidationFailed},
		{"wrong password", func() error { _, err := svc.SignIn(ctx, "mary@example.com", "wrong-pass"); return err }, apperrors.CodeInvalidCredential},
		{"unknown email", func() error { _, err := svc.SignIn(ctx, "nobody@example.com", "hunter22"); return err }, apperrors.CodeInvalidCredential},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantCode(t, tt.call(), tt.code)
		})
	}
}
