package reconcile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"
)

// ParsePayload decodes a webhook body. An empty body is an empty batch; only
// invalid JSON is an error.
func ParsePayload(body []byte) (*Payload, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return &Payload{}, nil
	}

	var p Payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return &p, nil
}

// IngestBatch reconciles every changed record of the payload, one at a time.
// Deleted records are skipped and per-record failures are counted without
// stopping the batch.
func (e *Engine) IngestBatch(ctx context.Context, payload *Payload) BatchResult {
	var result BatchResult
	if payload == nil {
		return result
	}

	for _, tableID := range slices.Sorted(maps.Keys(payload.ChangedTablesByID)) {
		changes := payload.ChangedTablesByID[tableID].ChangedRecordsByID

		for _, externalID := range slices.Sorted(maps.Keys(changes)) {
			change := changes[externalID]
			if change.Invalid {
				e.logger.Warn("Skipping record with malformed state",
					zap.String("table_id", tableID),
					zap.String("external_id", externalID))
				result.Failed++
				continue
			}
			current := change.Current
			if current == nil {
				e.logger.Debug("Skipping deleted record",
					zap.String("table_id", tableID),
					zap.String("external_id", externalID))
				result.Skipped++
				continue
			}

			_, outcome, err := e.ReconcileExternal(ctx, externalID, current.Fields)
			if err != nil {
				e.logger.Error("Error processing record",
					zap.String("table_id", tableID),
					zap.String("external_id", externalID),
					zap.Error(err))
				result.Failed++
				continue
			}

			result.Processed++
			switch outcome {
			case OutcomeCreated:
				result.Created++
			case OutcomeUpdated:
				result.Updated++
			}
		}
	}

	return result
}
