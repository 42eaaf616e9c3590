// Package testdb opens throwaway SQLite databases for tests.
package testdb

import (
	"testing"

	"task-manager-api/internal/config"
	"task-manager-api/internal/database"

	"gorm.io/gorm"
)

// Open returns a migrated in-memory database that is closed when the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect(&config.Config{
		Database: config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"},
		Server:   config.ServerConfig{GinMode: "test"},
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
