package database_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/rentaldeploy/config"
	"github.com/shashiranjanraj/rentaldeploy/pkg/database"
	"github.com/shashiranjanraj/rentaldeploy/pkg/metrics"
)

func TestConnectModerncInMemory(t *testing.T) {
	db, err := database.Connect(config.Database{
		Driver: "modernc",
		DSN:    "file:dbtest_connect?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	_, err := database.Connect(config.Database{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported DB_DRIVER "oracle"`)
}

func TestDefaultDSN(t *testing.T) {
	assert.Equal(t, "rentalapp.db", database.DefaultDSN("sqlite"))
	assert.Equal(t, "rentalapp.db", database.DefaultDSN("modernc"))
	assert.Contains(t, database.DefaultDSN("postgres"), "dbname=rentalapp")
	assert.Contains(t, database.DefaultDSN("mysql"), "/rentalapp?")
	assert.Contains(t, database.DefaultDSN("sqlserver"), "database=rentalapp")
}

func TestInstrumentObservesQueries(t *testing.T) {
	db, err := database.Connect(config.Database{
		Driver: "modernc",
		DSN:    "file:dbtest_instrument?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Instrument(db))

	var n int
	require.NoError(t, db.Raw("SELECT 1").Scan(&n).Error)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(metrics.DBQueryDuration), 1)
}
