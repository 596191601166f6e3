package todos

import (
	"context"
	"fmt"

	"todo-sync/core/reconcile"
	"todo-sync/core/records"

	"go.uber.org/zap"
)

// Service exposes direct todo creation and listing.
type Service struct {
	engine    *reconcile.Engine
	logger    *zap.Logger
	tableName string
	stage     string
}

// NewService creates a new todos service.
func NewService(engine *reconcile.Engine, logger *zap.Logger, tableName, stage string) *Service {
	return &Service{
		engine:    engine,
		logger:    logger,
		tableName: tableName,
		stage:     stage,
	}
}

// TableName returns the record table the service writes to.
func (s *Service) TableName() string { return s.tableName }

// Stage returns the deployment stage.
func (s *Service) Stage() string { return s.stage }

// Create stores a new todo, mirroring it to Airtable when possible.
func (s *Service) Create(ctx context.Context, title, description string) (*records.Record, error) {
	return s.engine.CreateDirect(ctx, title, description)
}

// List returns every todo, newest first.
func (s *Service) List(ctx context.Context) ([]records.Record, error) {
	recs, err := s.engine.Store().ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan todos: %w", err)
	}
	if recs == nil {
		recs = []records.Record{}
	}
	records.SortNewestFirst(recs)
	return recs, nil
}
