package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentaldeploy/app/models"
)

// AccessoryRepository handles database operations for Accessory.
type AccessoryRepository struct {
	db *gorm.DB
}

func NewAccessoryRepository(db *gorm.DB) *AccessoryRepository {
	return &AccessoryRepository{db: db}
}

// FindByName looks up an accessory by name.
func (r *AccessoryRepository) FindByName(ctx context.Context, name string) (*models.Accessory, error) {
	return findOne[models.Accessory](ctx, r.db, "name", name)
}

// Create persists a new accessory. It returns false when the name is taken.
func (r *AccessoryRepository) Create(ctx context.Context, a *models.Accessory) (bool, error) {
	return insertOnce(ctx, r.db, a, "name")
}
