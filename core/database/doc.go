// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (production) or SQLite
// (local development and tests) connections based on the application's configuration.
//
// # Connect
//
// The Connect function establishes a connection and verifies it with a ping bounded
// by the configured timeout. SQLite connections are pinned to a single connection so
// that in-memory databases survive across queries.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table. The migrate command uses it to report
// the shape of the todos table after auto-migration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "todos-dev")
package database
