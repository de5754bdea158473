// Package repositories wraps the gorm queries for each entity. Every
// repository is built over a *gorm.DB, which may be the pool or an open
// transaction, so callers decide the unit of work.
package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when no row matches a natural key.
var ErrNotFound = errors.New("repositories: not found")

func findOne[T any](ctx context.Context, db *gorm.DB, column, value string, preload ...string) (*T, error) {
	var out T
	q := db.WithContext(ctx)
	for _, p := range preload {
		q = q.Preload(p)
	}
	err := q.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("repositories: find by %s: %w", column, err)
	}
	return &out, nil
}

// insertOnce inserts v unless a row with the same natural key exists.
// It reports false when the unique index rejected the row, which happens
// when another writer created it after our existence check.
func insertOnce(ctx context.Context, db *gorm.DB, v any, column string) (bool, error) {
	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: column}}, DoNothing: true}).
		Create(v)
	if res.Error != nil {
		return false, fmt.Errorf("repositories: insert: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
