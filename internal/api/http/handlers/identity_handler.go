package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/careerhub/portal-service/internal/api/dto"
	"github.com/careerhub/portal-service/internal/service"
	apperrors "github.com/careerhub/portal-service/pkg/util/errorutil"
)

// IdentityHandler exposes the local identity provider.
type IdentityHandler struct {
	identity *service.IdentityService
}

// NewIdentityHandler constructs handler.
func NewIdentityHandler(identity *service.IdentityService) *IdentityHandler {
	return &IdentityHandler{identity: identity}
}

// SignUp handles POST /identity/accounts.
func (h *IdentityHandler) SignUp(c *fiber.Ctx) error {
	var req dto.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	grant, err := h.identity.SignUp(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(tokenResponse(grant))
}

// SignIn handles POST /identity/token.
func (h *IdentityHandler) SignIn(c *fiber.Ctx) error {
	var req dto.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	grant, err := h.identity.SignIn(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(tokenResponse(grant))
}

func tokenResponse(g *service.TokenGrant) dto.TokenResponse {
	return dto.TokenResponse{
		IDToken:   g.IDToken,
		LocalID:   g.LocalID,
		Email:     g.Email,
		ExpiresAt: g.ExpiresAt,
	}
}
