package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/careerhub/portal-service/internal/domain"
	apperrors "github.com/careerhub/portal-service/pkg/util/errorutil"
)

// Gate resolves bearer credentials into identities.
type Gate struct {
	verifier TokenVerifier
}

// NewGate constructs a Gate backed by verifier.
func NewGate(verifier TokenVerifier) *Gate {
	return &Gate{verifier: verifier}
}

// Resolve validates an Authorization header value and returns the caller's identity.
// It has no side effects.
func (g *Gate) Resolve(ctx context.Context, authorization string) (domain.Identity, error) {
	token, err := BearerToken(authorization)
	if err != nil {
		return domain.Identity{}, err
	}
	subject, err := g.verifier.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return domain.Identity{}, apperrors.NewTokenExpired(err)
		}
		return domain.Identity{}, apperrors.NewInvalidCredential(err)
	}
	if subject == "" {
		return domain.Identity{}, apperrors.NewInvalidCredential(errors.New("empty subject"))
	}
	return domain.Identity{SubjectID: subject}, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(authorization string) (string, error) {
	if strings.TrimSpace(authorization) == "" {
		return "", apperrors.NewUnauthenticated("missing authorization header")
	}
	scheme, token, found := strings.Cut(strings.TrimSpace(authorization), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", apperrors.NewUnauthenticated("invalid authorization header")
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", apperrors.NewUnauthenticated("invalid authorization header")
	}
	return token, nil
}
