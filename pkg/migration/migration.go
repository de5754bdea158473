// Package migration provides the schema migration runner.
//
// Migrations register themselves from init() in database/migrations:
//
//	func init() {
//	    migration.Register("20260101000000_create_accounts_table", &CreateAccountsTable{})
//	}
//
// and are applied in name order (timestamp prefixes sort chronologically).
// Each Run forms one batch; Rollback reverts the most recent batch.
package migration

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentaldeploy/pkg/logger"
)

// Migration is the interface every migration must implement.
type Migration interface {
	// Up applies the migration.
	Up(db *gorm.DB) error
	// Down reverses the migration.
	Down(db *gorm.DB) error
}

// Entry is a named migration.
type Entry struct {
	Name      string
	Migration Migration
}

// Status describes one known migration.
type Status struct {
	Name  string
	Ran   bool
	Batch int
}

// ErrNotRegistered is returned by Rollback for a recorded migration whose
// code no longer exists.
var ErrNotRegistered = errors.New("migration: not registered")

// migrationRecord is the GORM model stored in the tracking table.
type migrationRecord struct {
	ID    uint      `gorm:"primaryKey;autoIncrement"`
	Name  string    `gorm:"uniqueIndex;size:255;not null"`
	Batch int       `gorm:"not null"`
	RunAt time.Time `gorm:"autoCreateTime"`
}

func (migrationRecord) TableName() string { return "schema_migrations" }

var (
	registryMu sync.Mutex
	registry   []Entry
)

// Register adds a migration to the global registry.
func Register(name string, m Migration) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = append(registry, Entry{Name: name, Migration: m})
}

// Registered returns the registered migrations sorted by name.
func Registered() []Entry {
	registryMu.Lock()
	out := make([]Entry, len(registry))
	copy(out, registry)
	registryMu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Runner executes and tracks migrations.
type Runner struct {
	db      *gorm.DB
	entries []Entry
}

// New creates a Runner over the globally registered migrations.
func New(db *gorm.DB) *Runner {
	return NewWith(db, Registered())
}

// NewWith creates a Runner over an explicit migration list.
func NewWith(db *gorm.DB, entries []Entry) *Runner {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return &Runner{db: db, entries: sorted}
}

func (r *Runner) ensureTable(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&migrationRecord{}); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}
	return nil
}

func (r *Runner) ran(ctx context.Context) (map[string]migrationRecord, error) {
	var records []migrationRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("migration: load records: %w", err)
	}
	out := make(map[string]migrationRecord, len(records))
	for _, rec := range records {
		out[rec.Name] = rec
	}
	return out, nil
}

func (r *Runner) lastBatch(ctx context.Context) (int, error) {
	var maxBatch struct{ Max int }
	if err := r.db.WithContext(ctx).Model(&migrationRecord{}).
		Select("COALESCE(MAX(batch), 0) AS max").
		Scan(&maxBatch).Error; err != nil {
		return 0, fmt.Errorf("migration: read batch: %w", err)
	}
	return maxBatch.Max, nil
}

// Run applies every pending migration in one batch and returns the names it
// applied. Each migration and its tracking row share a transaction.
func (r *Runner) Run(ctx context.Context) ([]string, error) {
	log := logger.WithCtx(ctx)

	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	done, err := r.ran(ctx)
	if err != nil {
		return nil, err
	}

	var pending []Entry
	for _, e := range r.entries {
		if _, ok := done[e.Name]; !ok {
			pending = append(pending, e)
		}
	}
	if len(pending) == 0 {
		log.Info("migration: nothing to migrate")
		return nil, nil
	}

	last, err := r.lastBatch(ctx)
	if err != nil {
		return nil, err
	}
	batch := last + 1

	applied := make([]string, 0, len(pending))
	for _, e := range pending {
		log.Info("migration: running", "name", e.Name, "batch", batch)

		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := e.Migration.Up(tx); err != nil {
				return fmt.Errorf("migration: %s up: %w", e.Name, err)
			}
			if err := tx.Create(&migrationRecord{Name: e.Name, Batch: batch}).Error; err != nil {
				return fmt.Errorf("migration: record %s: %w", e.Name, err)
			}
			return nil
		})
		if err != nil {
			return applied, err
		}
		applied = append(applied, e.Name)
	}

	log.Info("migration: done", "ran", len(applied), "batch", batch)
	return applied, nil
}

// Rollback reverts the most recent batch, newest first, and returns the
// names it reverted.
func (r *Runner) Rollback(ctx context.Context) ([]string, error) {
	log := logger.WithCtx(ctx)

	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	last, err := r.lastBatch(ctx)
	if err != nil {
		return nil, err
	}
	if last == 0 {
		log.Info("migration: nothing to roll back")
		return nil, nil
	}

	var records []migrationRecord
	if err := r.db.WithContext(ctx).Where("batch = ?", last).
		Order("id desc").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("migration: load batch %d: %w", last, err)
	}

	byName := make(map[string]Migration, len(r.entries))
	for _, e := range r.entries {
		byName[e.Name] = e.Migration
	}

	reverted := make([]string, 0, len(records))
	for _, rec := range records {
		m, ok := byName[rec.Name]
		if !ok {
			return reverted, fmt.Errorf("%w: %s", ErrNotRegistered, rec.Name)
		}

		log.Info("migration: rolling back", "name", rec.Name, "batch", last)

		rec := rec
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := m.Down(tx); err != nil {
				return fmt.Errorf("migration: %s down: %w", rec.Name, err)
			}
			return tx.Delete(&rec).Error
		})
		if err != nil {
			return reverted, err
		}
		reverted = append(reverted, rec.Name)
	}

	return reverted, nil
}

// Status reports every known migration and whether it has run.
func (r *Runner) Status(ctx context.Context) ([]Status, error) {
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	done, err := r.ran(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Status, 0, len(r.entries))
	for _, e := range r.entries {
		st := Status{Name: e.Name}
		if rec, ok := done[e.Name]; ok {
			st.Ran = true
			st.Batch = rec.Batch
		}
		out = append(out, st)
	}
	return out, nil
}
