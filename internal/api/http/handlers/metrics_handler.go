package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerhub/portal-service/internal/observability"
)

// MetricsHandler exposes in-process request counters.
type MetricsHandler struct {
	metrics *observability.Metrics
}

// NewMetricsHandler constructs handler.
func NewMetricsHandler(metrics *observability.Metrics) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Snapshot GET /metrics.
func (h *MetricsHandler) Snapshot(c *fiber.Ctx) error {
	return c.JSON(h.metrics.Snapshot())
}
