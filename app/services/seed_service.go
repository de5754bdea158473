package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentaldeploy/app/models"
	"github.com/shashiranjanraj/rentaldeploy/app/repositories"
	"github.com/shashiranjanraj/rentaldeploy/database/catalog"
	"github.com/shashiranjanraj/rentaldeploy/pkg/logger"
	"github.com/shashiranjanraj/rentaldeploy/pkg/metrics"
)

// Entity kinds, as used in results, warnings and metric labels.
const (
	EntityBrandSystem = "brand_system"
	EntityAccessory   = "accessory"
	EntityEquipment   = "equipment"
)

// WarningMissingBrandSystem marks equipment whose brand system did not exist
// when the link was attempted.
const WarningMissingBrandSystem = "missing_brand_system"

// Outcome of one catalog entry.
type Outcome string

const (
	OutcomeCreated  Outcome = "created"
	OutcomeExisting Outcome = "existing"
)

// EntityResult records what happened to one catalog entry.
type EntityResult struct {
	Entity  string  `json:"entity"`
	Name    string  `json:"name"`
	Outcome Outcome `json:"outcome"`
	ID      uint    `json:"id,omitempty"`
}

// Warning is a non-fatal problem found while seeding.
type Warning struct {
	Kind      string `json:"kind"`
	Entity    string `json:"entity"`
	Name      string `json:"name"`
	Reference string `json:"reference"`
}

func (w Warning) String() string {
	switch w.Kind {
	case WarningMissingBrandSystem:
		return fmt.Sprintf("%s %q not linked: brand system %q does not exist", w.Entity, w.Name, w.Reference)
	default:
		return fmt.Sprintf("%s %q: %s (%s)", w.Entity, w.Name, w.Kind, w.Reference)
	}
}

// Tally counts outcomes for one entity kind.
type Tally struct {
	Created  int `json:"created"`
	Existing int `json:"existing"`
}

// SeedReport summarises a Seed call. After a failure it covers the entries
// processed before the error.
type SeedReport struct {
	BrandSystems Tally          `json:"brand_systems"`
	Accessories  Tally          `json:"accessories"`
	Equipment    Tally          `json:"equipment"`
	Links        int            `json:"links"`
	Results      []EntityResult `json:"results"`
	Warnings     []Warning      `json:"warnings"`
}

func (r *SeedReport) record(res EntityResult) {
	r.Results = append(r.Results, res)

	var t *Tally
	switch res.Entity {
	case EntityBrandSystem:
		t = &r.BrandSystems
	case EntityAccessory:
		t = &r.Accessories
	default:
		t = &r.Equipment
	}
	if res.Outcome == OutcomeCreated {
		t.Created++
	} else {
		t.Existing++
	}
}

// SeedService materialises a catalog idempotently.
type SeedService struct {
	db       *gorm.DB
	progress func(EntityResult)
}

func NewSeedService(db *gorm.DB) *SeedService {
	return &SeedService{db: db}
}

// OnProgress registers fn to be called after every processed entry.
func (s *SeedService) OnProgress(fn func(EntityResult)) *SeedService {
	s.progress = fn
	return s
}

// Seed ensures every entry of c exists: brand systems first, then
// accessories, then equipment. An entry whose name is already taken is
// skipped. Every creation commits on its own, so after an error the entries
// processed so far stay in place and a rerun picks up from there.
//
// Equipment is linked to its brand system in a second transaction after
// creation. A brand system that does not exist yields a Warning, not an
// error.
func (s *SeedService) Seed(ctx context.Context, c catalog.Catalog) (*SeedReport, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	rep := &SeedReport{Results: []EntityResult{}, Warnings: []Warning{}}

	for _, b := range c.BrandSystems {
		if err := s.seedBrandSystem(ctx, b, rep); err != nil {
			return rep, err
		}
	}
	for _, a := range c.Accessories {
		if err := s.seedAccessory(ctx, a, rep); err != nil {
			return rep, err
		}
	}
	for i, e := range c.Equipment {
		if err := s.seedEquipment(ctx, i+1, e, rep); err != nil {
			return rep, err
		}
	}

	logger.WithCtx(ctx).Info("seed: done",
		"brand_systems_created", rep.BrandSystems.Created,
		"accessories_created", rep.Accessories.Created,
		"equipment_created", rep.Equipment.Created,
		"warnings", len(rep.Warnings),
	)
	return rep, nil
}

// ensure runs create in its own transaction and records the outcome.
// create reports the new row's ID, or found=true when the name was taken.
func (s *SeedService) ensure(
	ctx context.Context,
	entity, name string,
	rep *SeedReport,
	create func(tx *gorm.DB) (id uint, found bool, err error),
) (EntityResult, error) {
	res := EntityResult{Entity: entity, Name: name}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, found, err := create(tx)
		if err != nil {
			return err
		}
		res.ID = id
		if found {
			res.Outcome = OutcomeExisting
		} else {
			res.Outcome = OutcomeCreated
		}
		return nil
	})
	if err != nil {
		metrics.RecordSeed(entity, metrics.OutcomeFailed)
		logger.WithCtx(ctx).Error("seed: failed", "entity", entity, "name", name, "error", err)
		return res, fmt.Errorf("seed: %s %q: %w", entity, name, err)
	}

	log := logger.WithCtx(ctx).With("entity", entity, "name", name)
	if res.Outcome == OutcomeCreated {
		metrics.RecordSeed(entity, metrics.OutcomeCreated)
		log.Info("seed: created", "id", res.ID)
	} else {
		metrics.RecordSeed(entity, metrics.OutcomeExisting)
		log.Info("seed: already exists")
	}

	rep.record(res)
	if s.progress != nil {
		s.progress(res)
	}
	return res, nil
}

func (s *SeedService) seedBrandSystem(ctx context.Context, b catalog.BrandSystem, rep *SeedReport) error {
	_, err := s.ensure(ctx, EntityBrandSystem, b.Name, rep, func(tx *gorm.DB) (uint, bool, error) {
		repo := repositories.NewBrandSystemRepository(tx)
		if found, err := repo.FindByName(ctx, b.Name); err == nil {
			return found.ID, true, nil
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return 0, false, err
		}

		m := &models.BrandSystem{Name: b.Name, Description: b.Description}
		created, err := repo.Create(ctx, m)
		return m.ID, !created, err
	})
	return err
}

func (s *SeedService) seedAccessory(ctx context.Context, a catalog.Accessory, rep *SeedReport) error {
	_, err := s.ensure(ctx, EntityAccessory, a.Name, rep, func(tx *gorm.DB) (uint, bool, error) {
		repo := repositories.NewAccessoryRepository(tx)
		if found, err := repo.FindByName(ctx, a.Name); err == nil {
			return found.ID, true, nil
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return 0, false, err
		}

		m := &models.Accessory{
			Name:        a.Name,
			Category:    a.Category,
			Price:       a.Price,
			Description: a.Description,
		}
		created, err := repo.Create(ctx, m)
		return m.ID, !created, err
	})
	return err
}

func (s *SeedService) seedEquipment(ctx context.Context, index int, e catalog.Equipment, rep *SeedReport) error {
	m := &models.Equipment{
		Category:         e.Category,
		Brand:            e.Brand,
		Name:             e.Name,
		Description:      e.Description,
		ShortDescription: e.ShortDescription,
		DailyRate:        e.DailyRate,
		Condition:        e.Condition,
		ImageURLs:        e.ImageURLs,
		SerialNumber:     catalog.SerialNumber(index),
	}

	res, err := s.ensure(ctx, EntityEquipment, e.Name, rep, func(tx *gorm.DB) (uint, bool, error) {
		repo := repositories.NewEquipmentRepository(tx)
		if found, err := repo.FindByName(ctx, e.Name); err == nil {
			return found.ID, true, nil
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return 0, false, err
		}

		created, err := repo.Create(ctx, m)
		return m.ID, !created, err
	})
	if err != nil {
		return err
	}

	// Only freshly created equipment is linked; existing rows keep whatever
	// associations they already have.
	if res.Outcome != OutcomeCreated || e.BrandSystem == "" {
		return nil
	}
	return s.linkBrandSystem(ctx, m, e.BrandSystem, rep)
}

func (s *SeedService) linkBrandSystem(ctx context.Context, eq *models.Equipment, system string, rep *SeedReport) error {
	var missing bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bs, err := repositories.NewBrandSystemRepository(tx).FindByName(ctx, system)
		if errors.Is(err, repositories.ErrNotFound) {
			missing = true
			return nil
		}
		if err != nil {
			return err
		}
		return repositories.NewEquipmentRepository(tx).LinkBrandSystem(ctx, eq, bs)
	})
	if err != nil {
		logger.WithCtx(ctx).Error("seed: link failed", "equipment", eq.Name, "brand_system", system, "error", err)
		return fmt.Errorf("seed: link %s %q to brand system %q: %w", EntityEquipment, eq.Name, system, err)
	}

	if missing {
		w := Warning{
			Kind:      WarningMissingBrandSystem,
			Entity:    EntityEquipment,
			Name:      eq.Name,
			Reference: system,
		}
		rep.Warnings = append(rep.Warnings, w)
		metrics.SeedDroppedLinks.Inc()
		logger.WithCtx(ctx).Warn("seed: brand system missing, link skipped", "equipment", eq.Name, "brand_system", system)
		return nil
	}

	rep.Links++
	logger.WithCtx(ctx).Debug("seed: linked", "equipment", eq.Name, "brand_system", system)
	return nil
}
