// Package testdb opens migrated, in-memory SQLite databases for tests.
package testdb

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentaldeploy/config"
	_ "github.com/shashiranjanraj/rentaldeploy/database/migrations"
	"github.com/shashiranjanraj/rentaldeploy/pkg/database"
	"github.com/shashiranjanraj/rentaldeploy/pkg/migration"
)

// Open returns a fresh database private to t with every migration applied.
// It is closed when the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	db := OpenEmpty(t)
	_, err := migration.New(db).Run(context.Background())
	require.NoError(t, err)
	return db
}

// OpenEmpty is Open without migrations.
func OpenEmpty(t testing.TB) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()) + "_" + uuid.NewString()
	db, err := database.Connect(config.Database{
		Driver: "modernc",
		DSN:    "file:" + name + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
