package seeders

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentaldeploy/app/services"
	"github.com/shashiranjanraj/rentaldeploy/database/catalog"
	"github.com/shashiranjanraj/rentaldeploy/pkg/migration"
)

// MigrateStep applies pending schema migrations.
func MigrateStep(db *gorm.DB) Step {
	return Step{
		Name:        "migrate",
		Description: "Apply database migrations",
		Run: func(ctx context.Context) (string, error) {
			applied, err := migration.New(db).Run(ctx)
			if err != nil {
				return "", err
			}
			if len(applied) == 0 {
				return "schema up to date", nil
			}
			return fmt.Sprintf("applied %d migration(s): %s", len(applied), strings.Join(applied, ", ")), nil
		},
	}
}

// AdminStep ensures the administrator account. onResult, when set, sees the
// result so the caller can show generated credentials.
func AdminStep(svc *services.AdminService, p services.AdminParams, onResult func(services.AdminResult)) Step {
	return Step{
		Name:        "admin",
		Description: "Create the administrator account",
		Run: func(ctx context.Context) (string, error) {
			res, err := svc.EnsureAdmin(ctx, p)
			if err != nil {
				return "", err
			}
			if onResult != nil {
				onResult(res)
			}
			if res.Outcome == services.AdminCreated {
				return fmt.Sprintf("administrator %s created", p.Email), nil
			}
			return fmt.Sprintf("administrator %s already exists", p.Email), nil
		},
	}
}

// SeedStep seeds c. onReport, when set, sees the report, including the
// partial one left by a failed run.
func SeedStep(svc *services.SeedService, c catalog.Catalog, onReport func(*services.SeedReport)) Step {
	return Step{
		Name:        "seed",
		Description: "Seed brand systems, accessories and equipment",
		Run: func(ctx context.Context) (string, error) {
			rep, err := svc.Seed(ctx, c)
			if rep != nil && onReport != nil {
				onReport(rep)
			}
			if err != nil {
				return "", err
			}
			return SeedMessage(rep), nil
		},
	}
}

// SeedMessage is the one-line summary of a seed report.
func SeedMessage(rep *services.SeedReport) string {
	msg := fmt.Sprintf("brand systems %d new/%d existing, accessories %d new/%d existing, equipment %d new/%d existing",
		rep.BrandSystems.Created, rep.BrandSystems.Existing,
		rep.Accessories.Created, rep.Accessories.Existing,
		rep.Equipment.Created, rep.Equipment.Existing,
	)
	if n := len(rep.Warnings); n > 0 {
		msg += fmt.Sprintf(", %d warning(s)", n)
	}
	return msg
}
