package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerhub/portal-service/internal/api/http/handlers"
	"github.com/careerhub/portal-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Metrics        *handlers.MetricsHandler
	Profiles       *handlers.ProfileHandler
	Meetings       *handlers.MeetingsHandler
	Identity       *handlers.IdentityHandler // nil when the local provider is disabled
	AuthMiddleware *auth.AuthMiddleware
	AdminPolicy    *auth.AdminPolicy
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Snapshot)

	if cfg.Identity != nil {
		identity := app.Group("/identity")
		identity.Post("/accounts", cfg.Identity.SignUp)
		identity.Post("/token", cfg.Identity.SignIn)
	}

	authenticated := cfg.AuthMiddleware.Handle
	app.Post("/register", authenticated, cfg.Profiles.Register)
	app.Post("/login", authenticated, cfg.Profiles.Login)
	app.Post("/meetings", authenticated, cfg.Meetings.RequestMeeting)

	admin := app.Group("/admin", authenticated, auth.RequireAdmin(cfg.AdminPolicy))
	admin.Get("/meetings", cfg.Meetings.ListMeetings)
	admin.Get("/meetings/:id", cfg.Meetings.GetMeeting)
	admin.Put("/meetings/:id/approve", cfg.Meetings.Approve)
	admin.Put("/meetings/:id/decline", cfg.Meetings.Decline)
}
