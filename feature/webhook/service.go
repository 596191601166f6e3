package webhook

import (
	"context"

	"todo-sync/core/reconcile"

	"go.uber.org/zap"
)

// Service applies Airtable webhook payloads to the record table.
type Service struct {
	engine    *reconcile.Engine
	logger    *zap.Logger
	tableName string
	stage     string
}

// NewService creates a new webhook service.
func NewService(engine *reconcile.Engine, logger *zap.Logger, tableName, stage string) *Service {
	return &Service{
		engine:    engine,
		logger:    logger,
		tableName: tableName,
		stage:     stage,
	}
}

// Process parses a raw webhook body and reconciles every changed record.
func (s *Service) Process(ctx context.Context, body []byte) (reconcile.BatchResult, error) {
	payload, err := reconcile.ParsePayload(body)
	if err != nil {
		return reconcile.BatchResult{}, err
	}
	return s.engine.IngestBatch(ctx, payload), nil
}
