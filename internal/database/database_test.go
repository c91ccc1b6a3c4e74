//go:build integration

package database_test

import (
	"os"
	"strings"
	"testing"

	"site-security-backend/internal/database"
	"site-security-backend/internal/database/models"
	"site-security-backend/internal/testutils"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

func TestInitializeHonorsSkipAutoMigrate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	base := testutils.SetupTestSuite(t)

	require.NoError(t, base.DB.Exec(`DROP DATABASE IF EXISTS schema_opts WITH (FORCE)`).Error)
	require.NoError(t, base.DB.Exec(`CREATE DATABASE schema_opts`).Error)
	dsn := strings.Replace(base.Config.DatabaseURL, "/testdb", "/schema_opts", 1)

	db, err := database.Initialize(dsn, &database.Options{SkipAutoMigrate: true})
	require.NoError(t, err)
	require.False(t, db.Migrator().HasTable(&models.Gate{}))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	db, err = database.Initialize(dsn, nil)
	require.NoError(t, err)
	require.True(t, db.Migrator().HasTable(&models.Gate{}))
	sqlDB, err = db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}
