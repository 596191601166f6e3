package health

import (
	"context"
	"time"

	"todo-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger reports whether a backend is reachable. records.Store implements it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves liveness and readiness probes.
type Handler struct {
	pinger  Pinger
	logger  *zap.Logger
	stage   string
	started time.Time
	now     func() time.Time
}

// NewHandler creates a new HTTP handler.
func NewHandler(pinger Pinger, logger *zap.Logger, stage string) *Handler {
	return &Handler{
		pinger:  pinger,
		logger:  logger,
		stage:   stage,
		started: time.Now(),
		now:     time.Now,
	}
}

// RegisterRoutes registers the probe routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/healthz", h.HandleHealth)
	app.Get("/readyz", h.HandleReady)
}

// HandleHealth reports that the process is alive.
// @Summary Liveness
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any "OK"
// @Router /healthz [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":         "ok",
		"uptime_seconds": int64(h.now().Sub(h.started).Seconds()),
		"stage":          h.stage,
	})
}

// HandleReady reports whether the record store is reachable.
// @Summary Readiness
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any "Ready"
// @Failure 503 {object} map[string]any "Not ready"
// @Router /readyz [get]
func (h *Handler) HandleReady(c *fiber.Ctx) error {
	if err := h.pinger.Ping(c.UserContext()); err != nil {
		logger.WithRayID(h.logger, c).Warn("Readiness check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"ready": false,
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"ready": true})
}
