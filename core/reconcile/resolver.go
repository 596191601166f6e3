package reconcile

import (
	"context"

	"todo-sync/core/records"

	"go.uber.org/zap"
)

// Resolver maps an external record id to the internal record, if any.
// Lookup failures degrade to "not found" so a flaky index never blocks ingestion.
type Resolver struct {
	store  records.Store
	logger *zap.Logger
}

// NewResolver creates a resolver over the given store.
func NewResolver(store records.Store, logger *zap.Logger) *Resolver {
	return &Resolver{store: store, logger: logger}
}

// Resolve returns the record linked to externalID, or nil.
func (r *Resolver) Resolve(ctx context.Context, externalID string) *records.Record {
	rec, err := r.store.FindByExternalID(ctx, externalID)
	if err != nil {
		r.logger.Warn("Identity lookup failed, assuming no existing record",
			zap.String("external_id", externalID),
			zap.Error(err))
		return nil
	}
	return rec
}
