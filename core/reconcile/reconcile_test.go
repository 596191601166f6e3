package reconcile_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"todo-sync/core/records"
)

// memStore is an in-memory records.Store that counts calls.
type memStore struct {
	mu          sync.Mutex
	byID        map[string]records.Record
	upserts     int
	lookups     int
	upsertErrOn map[string]error // keyed by external id
}

func newMemStore() *memStore {
	return &memStore{byID: map[string]records.Record{}, upsertErrOn: map[string]error{}}
}

func (m *memStore) FindByExternalID(_ context.Context, externalID string) (*records.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups++
	for _, rec := range m.byID {
		if rec.ExternalRecordID != nil && *rec.ExternalRecordID == externalID {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memStore) Upsert(_ context.Context, rec *records.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec.ExternalRecordID != nil {
		if err := m.upsertErrOn[*rec.ExternalRecordID]; err != nil {
			return err
		}
	}
	m.upserts++
	m.byID[rec.ID] = *rec
	return nil
}

func (m *memStore) ScanAll(_ context.Context) ([]records.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]records.Record, 0, len(m.byID))
	for _, rec := range m.byID {
		all = append(all, rec)
	}
	return all, nil
}

func (m *memStore) Ping(context.Context) error { return nil }

// sequentialIDs returns a generator yielding id-1, id-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// steppingClock returns a clock advancing one minute per call.
func steppingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(time.Minute)
		return t
	}
}

// fakeMirror records calls and returns a fixed id or error.
type fakeMirror struct {
	id    string
	err   error
	calls int
}

func (f *fakeMirror) CreateRecord(_ context.Context, _, _ string) (string, error) {
	f.calls++
	return f.id, f.err
}
