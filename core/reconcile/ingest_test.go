package reconcile_test

import (
	"context"
	"testing"

	"todo-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const batchJSON = `{
  "changedTablesById": {
    "tblTodos": {
      "changedRecordsById": {
        "recA": {"current": {"fields": {"Name": "First", "Status": "Done"}}},
        "recB": {"current": {"fields": {"Name": "Second"}}},
        "recGone": {"previous": {"fields": {"Name": "Deleted"}}}
      }
    },
    "tblOther": {
      "changedRecordsById": {
        "recC": {"current": {"fields": {}}}
      }
    }
  }
}`

func TestParsePayload(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		p, err := reconcile.ParsePayload([]byte(batchJSON))
		require.NoError(t, err)
		require.Len(t, p.ChangedTablesByID, 2)
		changes := p.ChangedTablesByID["tblTodos"].ChangedRecordsByID
		assert.Nil(t, changes["recGone"].Current)
		assert.Equal(t, "First", changes["recA"].Current.Fields.Text("Name"))
	})

	t.Run("EmptyBody", func(t *testing.T) {
		for _, body := range []string{"", "   ", "{}", "null"} {
			p, err := reconcile.ParsePayload([]byte(body))
			require.NoError(t, err, body)
			assert.Empty(t, p.ChangedTablesByID, body)
		}
	})

	t.Run("OddlyShapedIsEmpty", func(t *testing.T) {
		for _, body := range []string{
			`[1,2]`,
			`"text"`,
			`{"changedTablesById": "oops"}`,
			`{"changedTablesById": []}`,
			`{"changedTablesById": {"tbl": {"changedRecordsById": []}}}`,
			`{"changedTablesById": {"tbl": 7}}`,
		} {
			p, err := reconcile.ParsePayload([]byte(body))
			require.NoError(t, err, body)
			for _, table := range p.ChangedTablesByID {
				assert.Empty(t, table.ChangedRecordsByID, body)
			}
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, body := range []string{"{not json", `{"changedTablesById": {`, `[1,`} {
			p, err := reconcile.ParsePayload([]byte(body))
			assert.ErrorIs(t, err, reconcile.ErrMalformedPayload, body)
			assert.Nil(t, p)
		}
	})
}

func TestIngestBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("CountsAndSkipsDeletions", func(t *testing.T) {
		store := newMemStore()
		engine := newTestEngine(store, nil)

		p, err := reconcile.ParsePayload([]byte(batchJSON))
		require.NoError(t, err)

		result := engine.IngestBatch(ctx, p)
		assert.Equal(t, 3, result.Processed)
		assert.Equal(t, 3, result.Created)
		assert.Equal(t, 0, result.Updated)
		assert.Equal(t, 0, result.Failed)
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, 3, store.upserts)
		// Deletions never reach the store
		assert.Equal(t, 3, store.lookups)

		result = engine.IngestBatch(ctx, p)
		assert.Equal(t, 3, result.Processed)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 3, result.Updated)

		all, _ := store.ScanAll(ctx)
		assert.Len(t, all, 3)
	})

	t.Run("DeterministicOrder", func(t *testing.T) {
		store := newMemStore()
		engine := newTestEngine(store, nil)

		p, err := reconcile.ParsePayload([]byte(batchJSON))
		require.NoError(t, err)
		engine.IngestBatch(ctx, p)

		// Tables sorted (tblOther before tblTodos), then records sorted.
		recC, _ := store.FindByExternalID(ctx, "recC")
		recA, _ := store.FindByExternalID(ctx, "recA")
		recB, _ := store.FindByExternalID(ctx, "recB")
		assert.Equal(t, "id-1", recC.ID)
		assert.Equal(t, "id-2", recA.ID)
		assert.Equal(t, "id-3", recB.ID)
		assert.True(t, recA.Completed)
		assert.Equal(t, "Untitled", recC.Title)
	})

	t.Run("FailureDoesNotAbortBatch", func(t *testing.T) {
		store := newMemStore()
		store.upsertErrOn["recA"] = assert.AnError
		engine := newTestEngine(store, nil)

		p, err := reconcile.ParsePayload([]byte(batchJSON))
		require.NoError(t, err)

		result := engine.IngestBatch(ctx, p)
		assert.Equal(t, 2, result.Processed)
		assert.Equal(t, 2, result.Created)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("BadlyTypedRecordsDoNotFailBatch", func(t *testing.T) {
		store := newMemStore()
		engine := newTestEngine(store, nil)

		p, err := reconcile.ParsePayload([]byte(`{"changedTablesById": {"tbl": {"changedRecordsById": {
			"recA": {"current": {"fields": {"Name": "ok"}}},
			"recB": {"current": {"fields": "x"}},
			"recC": {"current": true},
			"recD": 5,
			"recE": {"current": null}
		}}}}`))
		require.NoError(t, err)

		result := engine.IngestBatch(ctx, p)
		assert.Equal(t, 2, result.Processed)
		assert.Equal(t, 2, result.Created)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, 2, result.Skipped)

		recA, _ := store.FindByExternalID(ctx, "recA")
		require.NotNil(t, recA)
		assert.Equal(t, "ok", recA.Title)
		recB, _ := store.FindByExternalID(ctx, "recB")
		require.NotNil(t, recB)
		assert.Equal(t, "Untitled", recB.Title)
		recC, _ := store.FindByExternalID(ctx, "recC")
		assert.Nil(t, recC)
	})

	t.Run("EmptyPayloads", func(t *testing.T) {
		store := newMemStore()
		engine := newTestEngine(store, nil)

		for _, p := range []*reconcile.Payload{
			nil,
			{},
			{ChangedTablesByID: map[string]reconcile.TableChanges{"tbl": {}}},
		} {
			result := engine.IngestBatch(ctx, p)
			assert.Equal(t, reconcile.BatchResult{}, result)
		}
		assert.Zero(t, store.upserts)
	})
}

func TestFields(t *testing.T) {
	f := reconcile.Fields{"s": "text", "n": float64(3), "zero": float64(0), "b": false, "t": true, "nil": nil}

	assert.Equal(t, "text", f.Text("s"))
	assert.Equal(t, "3", f.Text("n"))
	assert.Equal(t, "", f.Text("zero"))
	assert.Equal(t, "", f.Text("b"))
	assert.Equal(t, "true", f.Text("t"))
	assert.Equal(t, "", f.Text("nil"))
	assert.Equal(t, "", f.Text("missing"))

	assert.True(t, f.Equals("s", "text"))
	assert.False(t, f.Equals("n", "3"))
	assert.False(t, reconcile.Fields(nil).Equals("s", "text"))
}
