// Package reconcile is the record reconciliation and identity-mapping engine.
//
// It decides, for every inbound change, whether a record already exists, which
// fields are immutable, and how the incoming fields are merged.
//
// # Components
//
//   - Resolver: finds the record linked to an external record id. Lookup failures are
//     logged and treated as "no existing record".
//   - Engine.ReconcileExternal: merges an external record into the linked record. The id
//     and creation time of an existing record are preserved; title, description and
//     completion are always taken from the incoming fields; the source becomes
//     "external" on every write, including records first created through the API.
//   - Engine.CreateDirect: creates an "api" record, mirroring it to the external system
//     first when a Mirror is configured. Mirroring failures never fail the creation.
//   - Engine.IngestBatch: walks a webhook payload in sorted table/record order and
//     reconciles each change sequentially.
//
// # Concurrency
//
// Each reconciliation is a read followed by an unconditional write. Two batches
// touching the same external id concurrently may lose an update; the last write wins.
//
// # Usage
//
//	engine := reconcile.NewEngine(store, airtableClient, logger)
//
//	payload, err := reconcile.ParsePayload(body)
//	result := engine.IngestBatch(ctx, payload)
//
//	rec, err := engine.CreateDirect(ctx, "Buy milk", "")
package reconcile
