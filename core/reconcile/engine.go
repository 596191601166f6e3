package reconcile

import (
	"context"
	"fmt"
	"time"

	"todo-sync/core/records"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Mirror pushes a newly created record to the external system and returns
// the external record id.
type Mirror interface {
	CreateRecord(ctx context.Context, title, description string) (string, error)
}

// Engine merges incoming changes into canonical records.
type Engine struct {
	store    records.Store
	resolver *Resolver
	mirror   Mirror
	logger   *zap.Logger
	fields   FieldMapping
	now      func() time.Time
	newID    func() string
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator replaces the record id generator.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// WithFieldMapping sets the external column names.
func WithFieldMapping(m FieldMapping) Option {
	return func(e *Engine) { e.fields = m.withDefaults() }
}

// WithResolver replaces the identity resolver.
func WithResolver(r *Resolver) Option {
	return func(e *Engine) { e.resolver = r }
}

// NewEngine creates an engine. mirror may be nil when no external system is configured.
func NewEngine(store records.Store, mirror Mirror, logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		mirror: mirror,
		logger: logger,
		fields: DefaultFieldMapping(),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.resolver == nil {
		e.resolver = NewResolver(store, logger)
	}
	return e
}

// Store returns the underlying record store.
func (e *Engine) Store() records.Store {
	return e.store
}

// ReconcileExternal merges an external record's fields into the linked record,
// creating it when no record is linked yet. Title, description and completion
// always come from the incoming fields; id and creation time are preserved.
func (e *Engine) ReconcileExternal(ctx context.Context, externalID string, fields Fields) (*records.Record, Outcome, error) {
	if externalID == "" {
		return nil, 0, ErrMissingExternalID
	}

	existing := e.resolver.Resolve(ctx, externalID)

	title := fields.Text(e.fields.Title)
	if title == "" {
		title = UntitledPlaceholder
	}

	linked := externalID
	rec := &records.Record{
		Title:            title,
		Description:      fields.Text(e.fields.Description),
		Completed:        fields.Equals(e.fields.Status, e.fields.DoneValue),
		Source:           records.SourceExternal,
		ExternalRecordID: &linked,
	}

	outcome := OutcomeCreated
	if existing != nil {
		outcome = OutcomeUpdated
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
	} else {
		rec.ID = e.newID()
		rec.CreatedAt = e.now()
	}

	if err := e.store.Upsert(ctx, rec); err != nil {
		return nil, 0, fmt.Errorf("failed to reconcile external record %s: %w", externalID, err)
	}

	e.logger.Info("Reconciled todo from external record",
		zap.String("id", rec.ID),
		zap.String("external_id", externalID),
		zap.Stringer("outcome", outcome))

	return rec, outcome, nil
}

// CreateDirect creates a record from a first-party caller. The record is
// mirrored to the external system on a best-effort basis before it is stored.
func (e *Engine) CreateDirect(ctx context.Context, title, description string) (*records.Record, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}

	rec := &records.Record{
		ID:          e.newID(),
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   e.now(),
		Source:      records.SourceAPI,
	}

	if externalID := e.mirrorRecord(ctx, rec); externalID != "" {
		rec.ExternalRecordID = &externalID
	}

	if err := e.store.Upsert(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to store todo %s: %w", rec.ID, err)
	}

	e.logger.Info("Created todo",
		zap.String("id", rec.ID),
		zap.Bool("mirrored", rec.IsLinked()))

	return rec, nil
}

// mirrorRecord returns the external id, or "" when mirroring is unavailable or fails.
func (e *Engine) mirrorRecord(ctx context.Context, rec *records.Record) string {
	if e.mirror == nil {
		return ""
	}

	externalID, err := e.mirror.CreateRecord(ctx, rec.Title, rec.Description)
	if err != nil {
		e.logger.Warn("External mirroring skipped",
			zap.String("id", rec.ID),
			zap.Error(err))
		return ""
	}
	return externalID
}
