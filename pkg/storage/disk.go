// Package storage is the file abstraction behind catalog loading and status
// report exports.
//
// Two drivers are available:
//   - "local": local filesystem (default)
//   - "s3": S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
//	mgr, _ := storage.NewManager(cfg.Storage)
//	disk, _ := mgr.Default()
//	_ = disk.Put(ctx, "reports/status.json", data)
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for a missing path.
var ErrNotFound = errors.New("storage: file not found")

// Disk is the filesystem driver interface. Every driver must implement this.
type Disk interface {
	// Put writes content to path, creating parent directories as needed.
	Put(ctx context.Context, path string, content []byte) error

	// Get returns the full content of the file at path.
	Get(ctx context.Context, path string) ([]byte, error)

	// Exists reports whether a file exists at path.
	Exists(ctx context.Context, path string) (bool, error)

	// URL returns the public URL for path.
	URL(path string) string
}
