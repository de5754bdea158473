package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentaldeploy/app/models"
)

// AccountRepository handles database operations for Account.
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// FindByEmail looks up an account by its email address.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return findOne[models.Account](ctx, r.db, "email", email)
}

// Create persists a new account. It returns false when the email is taken.
func (r *AccountRepository) Create(ctx context.Context, a *models.Account) (bool, error) {
	return insertOnce(ctx, r.db, a, "email")
}
