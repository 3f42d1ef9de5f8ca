package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerhub/portal-service/internal/api/dto"
	"github.com/careerhub/portal-service/internal/auth"
	"github.com/careerhub/portal-service/internal/service"
	apperrors "github.com/careerhub/portal-service/pkg/util/errorutil"
)

// ProfileHandler exposes profile registration and login.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Register handles POST /register.
func (h *ProfileHandler) Register(c *fiber.Ctx) error {
	identity, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	_, err = h.profiles.Register(c.UserContext(), identity, service.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Role:            req.Role,
		Mobile:          req.Mobile,
		Address:         req.Address,
		Position:        req.Position,
		Experience:      req.Experience,
		CVURL:           req.CVURL,
		CertificatesURL: req.CertificatesURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.RegisterResponse{
		Message:     "profile registered",
		FirebaseUID: identity.SubjectID,
		Success:     true,
	})
}

// Login handles POST /login.
func (h *ProfileHandler) Login(c *fiber.Ctx) error {
	identity, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}
	profile, err := h.profiles.Login(c.UserContext(), identity)
	if err != nil {
		return err
	}
	return c.JSON(dto.LoginResponse{
		Message:     "login successful",
		FirebaseUID: identity.SubjectID,
		Profile:     dto.NewProfileView(profile),
	})
}
