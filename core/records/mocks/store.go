package mocks

import (
	"context"

	"todo-sync/core/records"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of records.Store
type Store struct {
	mock.Mock
}

func (m *Store) FindByExternalID(ctx context.Context, externalID string) (*records.Record, error) {
	args := m.Called(ctx, externalID)
	if rec, ok := args.Get(0).(*records.Record); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Upsert(ctx context.Context, rec *records.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *Store) ScanAll(ctx context.Context) ([]records.Record, error) {
	args := m.Called(ctx)
	if recs, ok := args.Get(0).([]records.Record); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
