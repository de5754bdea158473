package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentaldeploy/app/models"
)

// BrandSystemRepository handles database operations for BrandSystem.
type BrandSystemRepository struct {
	db *gorm.DB
}

func NewBrandSystemRepository(db *gorm.DB) *BrandSystemRepository {
	return &BrandSystemRepository{db: db}
}

// FindByName looks up a brand system by name.
func (r *BrandSystemRepository) FindByName(ctx context.Context, name string) (*models.BrandSystem, error) {
	return findOne[models.BrandSystem](ctx, r.db, "name", name)
}

// Create persists a new brand system. It returns false when the name is taken.
func (r *BrandSystemRepository) Create(ctx context.Context, b *models.BrandSystem) (bool, error) {
	return insertOnce(ctx, r.db, b, "name")
}
