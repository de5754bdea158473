package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentaldeploy/app/models"
	"github.com/shashiranjanraj/rentaldeploy/app/repositories"
	"github.com/shashiranjanraj/rentaldeploy/pkg/metrics"
)

// Prerequisites reported in Report.Missing.
const (
	MissingAdmin     = "admin account"
	MissingEquipment = "equipment"
)

// AdminInfo is the part of an admin account the report shows.
type AdminInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Active   bool   `json:"active"`
}

// GroupedCount is a total with its per-category breakdown.
type GroupedCount struct {
	Total      int64                        `json:"total"`
	ByCategory []repositories.CategoryCount `json:"by_category"`
}

// Report is the deployment status.
type Report struct {
	CheckedAt    time.Time    `json:"checked_at"`
	Admins       []AdminInfo  `json:"admins"`
	Equipment    GroupedCount `json:"equipment"`
	BrandSystems int64        `json:"brand_systems"`
	Accessories  GroupedCount `json:"accessories"`
	Ready        bool         `json:"ready"`
	Missing      []string     `json:"missing"`
}

// StatusService answers whether the deployment is usable. It only reads.
type StatusService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewStatusService(db *gorm.DB) *StatusService {
	return &StatusService{db: db, now: time.Now}
}

// Check gathers the report. The system is ready when at least one admin
// account and at least one piece of equipment exist.
func (s *StatusService) Check(ctx context.Context) (*Report, error) {
	stats := repositories.NewStatsRepository(s.db)
	rep := &Report{CheckedAt: s.now().UTC(), Admins: []AdminInfo{}, Missing: []string{}}

	admins, err := stats.Admins(ctx)
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	for _, a := range admins {
		rep.Admins = append(rep.Admins, AdminInfo{FullName: a.FullName, Email: a.Email, Active: a.IsActive})
	}

	if rep.Equipment.Total, err = stats.Count(ctx, &models.Equipment{}); err != nil {
		return nil, fmt.Errorf("status: equipment: %w", err)
	}
	if rep.Equipment.ByCategory, err = stats.EquipmentByCategory(ctx); err != nil {
		return nil, fmt.Errorf("status: equipment: %w", err)
	}
	if rep.BrandSystems, err = stats.Count(ctx, &models.BrandSystem{}); err != nil {
		return nil, fmt.Errorf("status: brand systems: %w", err)
	}
	if rep.Accessories.Total, err = stats.Count(ctx, &models.Accessory{}); err != nil {
		return nil, fmt.Errorf("status: accessories: %w", err)
	}
	if rep.Accessories.ByCategory, err = stats.AccessoriesByCategory(ctx); err != nil {
		return nil, fmt.Errorf("status: accessories: %w", err)
	}

	if len(rep.Admins) == 0 {
		rep.Missing = append(rep.Missing, MissingAdmin)
	}
	if rep.Equipment.Total == 0 {
		rep.Missing = append(rep.Missing, MissingEquipment)
	}
	rep.Ready = len(rep.Missing) == 0

	metrics.SetReady(rep.Ready)
	return rep, nil
}
