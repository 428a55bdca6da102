// Package database handles the optional journal database connection and schema inspection.
//
// It wraps GORM to open MySQL (production) or SQLite (local development) connections from the
// application's configuration, with connection pool limits and a ping on connect.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read a table's live column list so callers can verify a
// migration produced the columns they rely on.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Journal disabled", zap.Error(err))
//	}
package database
