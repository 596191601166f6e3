// Package records is the record store adapter: the only code that talks to the
// durable todo table.
//
// # Backends
//
//   - GormStore: a relational table (MySQL in production, SQLite in tests) keyed by id,
//     with a non-unique index on external_record_id.
//   - RedisStore: one JSON value per record, an "ext:<externalId>" key pointing at the
//     record id, and a set of ids used for full scans.
//
// Both backends write unconditionally. Uniqueness of external ids is a property of
// the callers (resolve before write), not of the storage.
//
// # Usage
//
//	store, err := records.Open(cfg.Store, cfg.Server.Stage, db, nil)
//	rec, err := store.FindByExternalID(ctx, "recABC")
package records
