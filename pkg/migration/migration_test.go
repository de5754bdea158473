package migration_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentaldeploy/config"
	"github.com/shashiranjanraj/rentaldeploy/pkg/database"
	"github.com/shashiranjanraj/rentaldeploy/pkg/migration"
)

type widget struct {
	ID   uint
	Name string
}

type createWidgets struct{}

func (createWidgets) Up(db *gorm.DB) error   { return db.AutoMigrate(&widget{}) }
func (createWidgets) Down(db *gorm.DB) error { return db.Migrator().DropTable(&widget{}) }

type failing struct{}

func (failing) Up(*gorm.DB) error   { return errors.New("boom") }
func (failing) Down(*gorm.DB) error { return nil }

func openDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := database.Connect(config.Database{
		Driver: "modernc",
		DSN:    "file:" + name + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestRunIsBatchedAndIdempotent(t *testing.T) {
	ctx := context.Background()
	db := openDB(t, "migration_run")

	r := migration.NewWith(db, []migration.Entry{
		{Name: "0002_second", Migration: createWidgets{}},
		{Name: "0001_first", Migration: noop{}},
	})

	applied, err := r.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_first", "0002_second"}, applied)
	assert.True(t, db.Migrator().HasTable(&widget{}))

	applied, err = r.Run(ctx)
	require.NoError(t, err)
	assert.Empty(t, applied)

	st, err := r.Status(ctx)
	require.NoError(t, err)
	require.Len(t, st, 2)
	assert.Equal(t, migration.Status{Name: "0001_first", Ran: true, Batch: 1}, st[0])
	assert.Equal(t, migration.Status{Name: "0002_second", Ran: true, Batch: 1}, st[1])
}

func TestRollbackRevertsLastBatchOnly(t *testing.T) {
	ctx := context.Background()
	db := openDB(t, "migration_rollback")

	first := migration.NewWith(db, []migration.Entry{{Name: "0001_first", Migration: noop{}}})
	_, err := first.Run(ctx)
	require.NoError(t, err)

	both := migration.NewWith(db, []migration.Entry{
		{Name: "0001_first", Migration: noop{}},
		{Name: "0002_widgets", Migration: createWidgets{}},
	})
	_, err = both.Run(ctx)
	require.NoError(t, err)

	reverted, err := both.Rollback(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"0002_widgets"}, reverted)
	assert.False(t, db.Migrator().HasTable(&widget{}))

	st, err := both.Status(ctx)
	require.NoError(t, err)
	assert.True(t, st[0].Ran)
	assert.False(t, st[1].Ran)
}

func TestRunStopsOnFailure(t *testing.T) {
	ctx := context.Background()
	db := openDB(t, "migration_fail")

	r := migration.NewWith(db, []migration.Entry{
		{Name: "0001_ok", Migration: noop{}},
		{Name: "0002_bad", Migration: failing{}},
		{Name: "0003_never", Migration: createWidgets{}},
	})

	applied, err := r.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0002_bad")
	assert.Equal(t, []string{"0001_ok"}, applied)
	assert.False(t, db.Migrator().HasTable(&widget{}))

	st, err := r.Status(ctx)
	require.NoError(t, err)
	assert.True(t, st[0].Ran)
	assert.False(t, st[1].Ran)
	assert.False(t, st[2].Ran)
}

type noop struct{}

func (noop) Up(*gorm.DB) error   { return nil }
func (noop) Down(*gorm.DB) error { return nil }
