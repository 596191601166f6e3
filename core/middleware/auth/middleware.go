package auth

import (
	"todo-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Config configures the API key middleware.
type Config struct {
	Authorizer *Authorizer
	Logger     *zap.Logger
}

// New returns a middleware rejecting requests without a valid API key.
func New(cfg Config) fiber.Handler {
	l := cfg.Logger
	if l == nil {
		l = zap.NewNop()
	}

	return func(c *fiber.Ctx) error {
		presented, _ := HeaderValue(c.GetReqHeaders(), HeaderName)
		resource := c.Method() + " " + c.Path()

		decision := cfg.Authorizer.Authorize(c.UserContext(), presented, resource)
		if !decision.Allowed() {
			logger.WithRayID(l, c).Info("Request denied", zap.String("resource", resource))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		c.Locals("principal_id", decision.PrincipalID)
		return c.Next()
	}
}
