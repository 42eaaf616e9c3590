package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager-api/internal/config"
	"task-manager-api/internal/models"
)

func sqliteConfig(path string) *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{Driver: config.DriverSQLite, Path: path},
		Server:   config.ServerConfig{GinMode: "test"},
	}
}

func TestConnectAndMigrateSQLite(t *testing.T) {
	db, err := Connect(sqliteConfig(filepath.Join(t.TempDir(), "tasks.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))

	assert.True(t, db.Migrator().HasTable(&models.Task{}))
	assert.True(t, db.Migrator().HasTable(&models.AuditLog{}))
	assert.True(t, db.Migrator().HasColumn(&models.AuditLog{}, "updated_content"))

	// migrating twice is a no-op
	require.NoError(t, Migrate(db))
}

func TestConnectInMemoryUsesSingleConnection(t *testing.T) {
	db, err := Connect(sqliteConfig(":memory:"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	cfg := sqliteConfig("")
	cfg.Database.Driver = "oracle"

	_, err := Connect(cfg)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestDialectorForMySQL(t *testing.T) {
	d, err := dialectorFor(config.DatabaseConfig{
		Driver:   config.DriverMySQL,
		Host:     "db",
		Port:     "3306",
		User:     "root",
		Database: "task_manager",
	})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())
}
