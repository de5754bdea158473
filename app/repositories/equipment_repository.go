package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentaldeploy/app/models"
)

// EquipmentRepository handles database operations for Equipment.
type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// FindByName looks up equipment by name, loading its brand systems.
func (r *EquipmentRepository) FindByName(ctx context.Context, name string) (*models.Equipment, error) {
	return findOne[models.Equipment](ctx, r.db, "name", name, "BrandSystems")
}

// Create persists new equipment without touching its associations.
// It returns false when the name is taken.
func (r *EquipmentRepository) Create(ctx context.Context, e *models.Equipment) (bool, error) {
	return insertOnce(ctx, r.db.Omit("BrandSystems"), e, "name")
}

// LinkBrandSystem adds b to the equipment's brand systems. Linking an
// already linked pair is a no-op.
func (r *EquipmentRepository) LinkBrandSystem(ctx context.Context, e *models.Equipment, b *models.BrandSystem) error {
	err := r.db.WithContext(ctx).
		Model(e).
		Omit("BrandSystems.*").
		Association("BrandSystems").
		Append(b)
	if err != nil {
		return fmt.Errorf("repositories: link %q to %q: %w", e.Name, b.Name, err)
	}
	return nil
}
