package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/shashiranjanraj/rentaldeploy/config"
)

// Manager holds the configured disks by name.
type Manager struct {
	mu          sync.RWMutex
	disks       map[string]Disk
	defaultDisk string
}

// NewManager boots the local disk and, when S3_BUCKET is set, the s3 disk.
func NewManager(ctx context.Context, cfg config.Storage) (*Manager, error) {
	local, err := NewLocalDisk(cfg.LocalRoot, cfg.URL)
	if err != nil {
		return nil, err
	}
	m := &Manager{
		disks:       map[string]Disk{"local": local},
		defaultDisk: cfg.Disk,
	}
	if m.defaultDisk == "" {
		m.defaultDisk = "local"
	}

	if cfg.S3Bucket != "" {
		d, err := NewS3Disk(ctx, cfg)
		if err != nil {
			return nil, err
		}
		m.disks["s3"] = d
	}

	if _, err := m.Disk(m.defaultDisk); err != nil {
		return nil, err
	}
	return m, nil
}

// Disk returns the named disk.
func (m *Manager) Disk(name string) (Disk, error) {
	m.mu.RLock()
	d, ok := m.disks[name]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("storage: disk %q is not configured", name)
	}
	return d, nil
}

// Default returns the disk named by STORAGE_DISK.
func (m *Manager) Default() (Disk, error) {
	return m.Disk(m.defaultDisk)
}

// Register plugs in a custom Disk implementation.
func (m *Manager) Register(name string, d Disk) {
	m.mu.Lock()
	m.disks[name] = d
	m.mu.Unlock()
}
