package webhook

import (
	"context"
	"testing"

	"todo-sync/core/reconcile"
	"todo-sync/core/records/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProcess(t *testing.T) {
	store := new(mocks.Store)
	store.On("FindByExternalID", mock.Anything, "rec1").Return(nil, nil)
	store.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	svc := NewService(reconcile.NewEngine(store, nil, zap.NewNop()), zap.NewNop(), "todos-dev", "dev")

	result, err := svc.Process(context.Background(),
		[]byte(`{"changedTablesById":{"t":{"changedRecordsById":{"rec1":{"current":{"fields":{}}}}}}}`))

	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
}

func TestProcess_Malformed(t *testing.T) {
	svc := NewService(reconcile.NewEngine(new(mocks.Store), nil, zap.NewNop()), zap.NewNop(), "todos-dev", "dev")

	_, err := svc.Process(context.Background(), []byte(`[`))
	assert.ErrorIs(t, err, reconcile.ErrMalformedPayload)
}
