package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerhub/portal-service/internal/domain"
	apperrors "github.com/careerhub/portal-service/pkg/util/errorutil"
)

const identityKey = "auth_identity"

// AuthMiddleware validates bearer tokens and stores the resolved identity.
type AuthMiddleware struct {
	gate *Gate
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(gate *Gate) *AuthMiddleware {
	return &AuthMiddleware{gate: gate}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	identity, err := m.gate.Resolve(c.UserContext(), c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return err
	}
	c.Locals(identityKey, identity)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (domain.Identity, bool) {
	identity, ok := c.Locals(identityKey).(domain.Identity)
	if !ok || identity.SubjectID == "" {
		return domain.Identity{}, false
	}
	return identity, true
}

// MustIdentity returns the identity or an Unauthenticated error when the middleware did not run.
func MustIdentity(c *fiber.Ctx) (domain.Identity, error) {
	identity, ok := IdentityFromContext(c)
	if !ok {
		return domain.Identity{}, apperrors.NewUnauthenticated("authentication required")
	}
	return identity, nil
}
