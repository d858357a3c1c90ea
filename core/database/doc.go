// Package database handles database connections for the registry emitter.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to configure
// MySQL or SQLite connections based on the application's configuration.
//
// # Connect
//
// Connect selects the dialector from Config.Driver, applies connection pool
// settings, and verifies the connection with a ping bounded by TimeoutSeconds.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for either dialect. The
// emitter uses it to verify the registry tables after migration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "currency_records")
package database
