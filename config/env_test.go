package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/rentaldeploy/config"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestFromMapDefaults(t *testing.T) {
	s, err := config.FromMap(context.Background(), map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "local", s.App.Env)
	assert.False(t, s.App.Production())
	assert.Equal(t, "sqlite", s.Database.Driver)
	assert.Equal(t, "admin@rentalapp.com", s.Admin.Email)
	assert.Empty(t, s.Admin.Password)
	assert.Equal(t, "none", s.Lock.Driver)
	assert.Equal(t, 10*time.Minute, s.Lock.TTL)
	assert.Equal(t, "local", s.Storage.Disk)
	assert.Equal(t, 30*time.Second, s.Server.RefreshInterval)
}

func TestFromMapNormalisesDrivers(t *testing.T) {
	s, err := config.FromMap(context.Background(), map[string]string{
		"DB_DRIVER":   " Postgres ",
		"LOCK_DRIVER": "REDIS",
		"APP_ENV":     "prod",
	})
	require.NoError(t, err)

	assert.Equal(t, "postgres", s.Database.Driver)
	assert.Equal(t, "redis", s.Lock.Driver)
	assert.True(t, s.App.Production())
}

func TestLoadFromLayersFiles(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFile(t, dir, "app.json", `{
		"db_driver": "mysql",
		"admin_email": "ops@rentalapp.com",
		"redis_db": 3
	}`)
	envPath := writeFile(t, dir, ".env", `
# comment
export ADMIN_EMAIL="root@rentalapp.com"
ADMIN_PHONE='+1 555 0100'
`)

	s, err := config.LoadFrom(context.Background(), jsonPath, envPath)
	require.NoError(t, err)

	assert.Equal(t, "mysql", s.Database.Driver)
	assert.Equal(t, "root@rentalapp.com", s.Admin.Email, ".env overrides app.json")
	assert.Equal(t, "+1 555 0100", s.Admin.Phone)
	assert.Equal(t, 3, s.Redis.DB)
}

func TestLoadFromEnvironmentWins(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "DB_DRIVER=mysql\n")
	t.Setenv("DB_DRIVER", "postgres")

	s, err := config.LoadFrom(context.Background(), filepath.Join(dir, "missing.json"), envPath)
	require.NoError(t, err)
	assert.Equal(t, "postgres", s.Database.Driver)
}

func TestLoadFromRejectsBrokenJSON(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFile(t, dir, "app.json", `{not json`)

	_, err := config.LoadFrom(context.Background(), jsonPath, filepath.Join(dir, ".env"))
	require.Error(t, err)
}
