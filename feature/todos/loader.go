package todos

import (
	"todo-sync/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	guards  []fiber.Handler
}

// NewFeature creates the todos feature. guards run before every todo route.
func NewFeature(engine *reconcile.Engine, logger *zap.Logger, tableName, stage string, guards ...fiber.Handler) *Feature {
	svc := NewService(engine, logger, tableName, stage)
	return &Feature{service: svc, handler: NewHandler(svc), guards: guards}
}

// Service returns the feature's service for CLI use.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "todos"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app, f.guards...)
	return nil
}
