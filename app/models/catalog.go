package models

import (
	"time"

	"gorm.io/datatypes"
)

// BrandSystem is a compatible equipment family such as a lens mount
// ("Canon RF") or a lighting system ("Profoto"). Name is the natural key.
type BrandSystem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Accessory is a consumable or add-on sold or rented next to equipment.
type Accessory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Category    string    `gorm:"size:100;not null;index" json:"category"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Equipment is a rentable item.
type Equipment struct {
	ID               uint                        `gorm:"primaryKey" json:"id"`
	Category         string                      `gorm:"size:100;not null;index" json:"category"`
	Brand            string                      `gorm:"size:100;not null" json:"brand"`
	Name             string                      `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description      string                      `gorm:"type:text" json:"description"`
	ShortDescription string                      `gorm:"size:500" json:"short_description"`
	DailyRate        float64                     `gorm:"type:decimal(10,2);not null" json:"daily_rate"`
	Condition        string                      `gorm:"size:50" json:"condition"`
	ImageURLs        datatypes.JSONSlice[string] `json:"image_urls"`
	SerialNumber     string                      `gorm:"size:50;index" json:"serial_number"`
	BrandSystems     []BrandSystem               `gorm:"many2many:equipment_brand_systems;" json:"brand_systems,omitempty"`
	CreatedAt        time.Time                   `json:"created_at"`
	UpdatedAt        time.Time                   `json:"updated_at"`
}

// TableName keeps the uncountable noun singular.
func (Equipment) TableName() string { return "equipment" }
