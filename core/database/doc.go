// Package database handles connections to the relational geonames source and schema inspection.
//
// It provides a wrapper around GORM to configure either a MySQL server or a
// SQLite file (the format produced by the geonames import tooling).
//
// # Connect
//
// Connect opens and pings the configured source. For SQLite it refuses to
// open a file that does not exist, so a missing import is reported instead of
// an empty database being created next to the binary.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for either dialect. The
// integrity feature uses it to verify the source tables before a build.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "countryinfo")
package database
