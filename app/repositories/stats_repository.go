package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentaldeploy/app/models"
)

// CategoryCount is one row of a GROUP BY category query.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// StatsRepository runs the read-only aggregate queries behind the
// deployment status report.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Admins returns every account with the admin role, ordered by email.
func (r *StatsRepository) Admins(ctx context.Context) ([]models.Account, error) {
	var out []models.Account
	err := r.db.WithContext(ctx).
		Where("role = ?", models.RoleAdmin).
		Order("email").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("repositories: list admins: %w", err)
	}
	return out, nil
}

// Count returns the number of rows of model's table.
func (r *StatsRepository) Count(ctx context.Context, model any) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("repositories: count: %w", err)
	}
	return n, nil
}

// EquipmentByCategory counts equipment per category.
func (r *StatsRepository) EquipmentByCategory(ctx context.Context) ([]CategoryCount, error) {
	return r.byCategory(ctx, &models.Equipment{})
}

// AccessoriesByCategory counts accessories per category.
func (r *StatsRepository) AccessoriesByCategory(ctx context.Context) ([]CategoryCount, error) {
	return r.byCategory(ctx, &models.Accessory{})
}

func (r *StatsRepository) byCategory(ctx context.Context, model any) ([]CategoryCount, error) {
	var out []CategoryCount
	err := r.db.WithContext(ctx).
		Model(model).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("category").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("repositories: group by category: %w", err)
	}
	return out, nil
}
