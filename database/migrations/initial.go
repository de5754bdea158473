package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentaldeploy/app/models"
	"github.com/shashiranjanraj/rentaldeploy/pkg/migration"
)

func init() {
	migration.Register("20260101000000_create_accounts_table", &CreateAccountsTable{})
	migration.Register("20260101000001_create_catalog_tables", &CreateCatalogTables{})
}

// -------- 0001: accounts --------

type CreateAccountsTable struct{}

func (m *CreateAccountsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Account{})
}

func (m *CreateAccountsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Account{})
}

// -------- 0002: brand systems, accessories, equipment --------

type CreateCatalogTables struct{}

func (m *CreateCatalogTables) Up(db *gorm.DB) error {
	// Equipment last: AutoMigrate creates the join table with it.
	return db.AutoMigrate(&models.BrandSystem{}, &models.Accessory{}, &models.Equipment{})
}

func (m *CreateCatalogTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("equipment_brand_systems", &models.Equipment{}, &models.Accessory{}, &models.BrandSystem{})
}
