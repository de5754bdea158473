package models

import "time"

// Role is an account's privilege level.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

// Account is a person able to sign in to the rental application.
// Email is the natural key.
type Account struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	FullName              string    `gorm:"size:255;not null" json:"full_name"`
	Email                 string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash          string    `gorm:"size:255;not null" json:"-"`
	Phone                 string    `gorm:"size:50" json:"phone"`
	Role                  Role      `gorm:"size:20;not null;index" json:"role"`
	IsActive              bool      `gorm:"not null" json:"is_active"`
	Status                string    `gorm:"size:50" json:"status"`
	Balance               float64   `gorm:"type:decimal(12,2);not null" json:"balance"`
	Notes                 string    `gorm:"type:text" json:"notes"`
	PrivacyPolicyAccepted bool      `gorm:"not null" json:"privacy_policy_accepted"`
	TermsAccepted         bool      `gorm:"not null" json:"terms_accepted"`
	EmailVerified         bool      `gorm:"not null" json:"email_verified"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
