// Package database handles database connections.
//
// It provides a wrapper around GORM to configure connections based on the
// application's configuration. Two logical databases exist: the inventory
// database (sessions, baseline lines, readings) which the service owns and
// migrates, and the retail database which is read-only reference data.
//
// # Connect
//
// Connect establishes a connection for the configured driver. MySQL is the
// production driver; sqlite (including ":memory:") is supported for tests.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
