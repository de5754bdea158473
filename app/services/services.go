// Package services holds the deployment procedures: admin bootstrap,
// catalog seeding and the status check. Services run against a *gorm.DB and
// open their own transactions.
package services

import "github.com/go-playground/validator/v10"

var validate = validator.New()
