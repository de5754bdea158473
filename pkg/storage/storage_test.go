package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/rentaldeploy/config"
	"github.com/shashiranjanraj/rentaldeploy/pkg/storage"
)

func TestLocalDiskPutGetExists(t *testing.T) {
	ctx := context.Background()
	d, err := storage.NewLocalDisk(t.TempDir(), "http://cdn.local/files/")
	require.NoError(t, err)

	ok, err := d.Exists(ctx, "reports/status.json")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, d.Put(ctx, "reports/status.json", []byte(`{"ready":true}`)))

	ok, err = d.Exists(ctx, "reports/status.json")
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := d.Get(ctx, "reports/status.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ready":true}`, string(data))

	assert.Equal(t, "http://cdn.local/files/reports/status.json", d.URL("/reports/status.json"))
}

func TestLocalDiskMissingAndEscape(t *testing.T) {
	ctx := context.Background()
	d, err := storage.NewLocalDisk(t.TempDir(), "")
	require.NoError(t, err)

	_, err = d.Get(ctx, "nope.yaml")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = d.Put(ctx, "../outside.txt", []byte("x"))
	assert.ErrorContains(t, err, "escapes the disk root")
}

func TestManagerDefaultsToLocal(t *testing.T) {
	m, err := storage.NewManager(context.Background(), config.Storage{LocalRoot: t.TempDir()})
	require.NoError(t, err)

	d, err := m.Default()
	require.NoError(t, err)
	assert.IsType(t, &storage.LocalDisk{}, d)

	_, err = m.Disk("s3")
	assert.ErrorContains(t, err, `disk "s3" is not configured`)
}

func TestManagerRejectsUnknownDefault(t *testing.T) {
	_, err := storage.NewManager(context.Background(), config.Storage{Disk: "gcs", LocalRoot: t.TempDir()})
	assert.Error(t, err)
}
