package records_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"todo-sync/core/records"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() records.Record {
	return records.Record{
		ID:               "id-1",
		Title:            "Write report",
		Completed:        true,
		CreatedAt:        time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Source:           records.SourceExternal,
		ExternalRecordID: strPtr("recA"),
	}
}

func TestRedisStore_Keys(t *testing.T) {
	client, _ := redismock.NewClientMock()
	store := records.NewRedisStore(client, "todos-dev")

	assert.Equal(t, "todo-sync:todos-dev:rec:id-1", store.RecordKey("id-1"))
	assert.Equal(t, "todo-sync:todos-dev:ext:recA", store.ExternalKey("recA"))
	assert.Equal(t, "todo-sync:todos-dev:ids", store.IDsKey())
}

func TestRedisStore_FindByExternalID(t *testing.T) {
	ctx := context.Background()
	rec := sampleRecord()
	data, err := json.Marshal(rec)
	require.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := records.NewRedisStore(client, "todos-dev")

		mock.ExpectGet(store.ExternalKey("recA")).SetVal("id-1")
		mock.ExpectGet(store.RecordKey("id-1")).SetVal(string(data))

		found, err := store.FindByExternalID(ctx, "recA")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "id-1", found.ID)
		assert.Equal(t, "Write report", found.Title)
		assert.True(t, found.Completed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoIndexEntry", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := records.NewRedisStore(client, "todos-dev")

		mock.ExpectGet(store.ExternalKey("recB")).RedisNil()

		found, err := store.FindByExternalID(ctx, "recB")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("DanglingIndexEntry", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := records.NewRedisStore(client, "todos-dev")

		mock.ExpectGet(store.ExternalKey("recA")).SetVal("id-gone")
		mock.ExpectGet(store.RecordKey("id-gone")).RedisNil()

		found, err := store.FindByExternalID(ctx, "recA")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("BackendError", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := records.NewRedisStore(client, "todos-dev")

		mock.ExpectGet(store.ExternalKey("recA")).SetErr(assert.AnError)

		found, err := store.FindByExternalID(ctx, "recA")
		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, found)
	})
}

func TestRedisStore_Upsert(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	store := records.NewRedisStore(client, "todos-dev")

	rec := sampleRecord()
	data, err := json.Marshal(rec)
	require.NoError(t, err)

	mock.ExpectTxPipeline()
	mock.ExpectSet(store.RecordKey("id-1"), string(data), 0).SetVal("OK")
	mock.ExpectSAdd(store.IDsKey(), "id-1").SetVal(1)
	mock.ExpectSet(store.ExternalKey("recA"), "id-1", 0).SetVal("OK")
	mock.ExpectTxPipelineExec()

	assert.NoError(t, store.Upsert(ctx, &rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_ScanAll(t *testing.T) {
	ctx := context.Background()

	t.Run("SkipsMissingValues", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := records.NewRedisStore(client, "todos-dev")

		rec := sampleRecord()
		data, err := json.Marshal(rec)
		require.NoError(t, err)

		mock.ExpectSMembers(store.IDsKey()).SetVal([]string{"id-1", "id-2"})
		mock.ExpectMGet(store.RecordKey("id-1"), store.RecordKey("id-2")).SetVal([]interface{}{string(data), nil})

		all, err := store.ScanAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "id-1", all[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := records.NewRedisStore(client, "todos-dev")

		mock.ExpectSMembers(store.IDsKey()).SetVal([]string{})

		all, err := store.ScanAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
