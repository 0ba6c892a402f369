package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jomariabejo/orpha/config"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testDB opens a fresh in-memory database per test, migrated with the
// real schema. The shared-cache name keeps all pooled connections on
// the same database.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func adminCaller() *Identity {
	return &Identity{UserID: "admin-1", Email: "admin@orpha.test", Role: "admin"}
}

func staffCaller() *Identity {
	return &Identity{UserID: "staff-1", Email: "staff@orpha.test", Role: "staff"}
}
