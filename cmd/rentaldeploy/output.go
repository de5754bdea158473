package main

import (
	"fmt"
	"time"

	"github.com/shashiranjanraj/rentaldeploy/app/services"
	"github.com/shashiranjanraj/rentaldeploy/database/seeders"
	"github.com/shashiranjanraj/rentaldeploy/pkg/console"
)

var entityLabels = map[string]string{
	services.EntityBrandSystem: "Brand system",
	services.EntityAccessory:   "Accessory",
	services.EntityEquipment:   "Equipment",
}

func printEntity(out *console.Printer, r services.EntityResult) {
	label := entityLabels[r.Entity]
	if r.Outcome == services.OutcomeCreated {
		out.Success("%s created: %s", label, r.Name)
		return
	}
	out.Skip("%s already exists: %s", label, r.Name)
}

func printSeedReport(out *console.Printer, rep *services.SeedReport) {
	out.Section("Seeding summary")
	out.KeyValue("Brand systems", tally(rep.BrandSystems))
	out.KeyValue("Accessories", tally(rep.Accessories))
	out.KeyValue("Equipment", tally(rep.Equipment))
	out.KeyValue("Brand system links", rep.Links)
	for _, w := range rep.Warnings {
		out.Warning("%s", w)
	}
}

func tally(t services.Tally) string {
	return fmt.Sprintf("%d new, %d existing", t.Created, t.Existing)
}

func printAdmin(out *console.Printer, res services.AdminResult, email string) {
	if res.Outcome == services.AdminAlreadyExists {
		out.Skip("Administrator %s already exists, left unchanged", email)
		return
	}
	out.Success("Administrator %s created", email)
	if res.GeneratedPassword != "" {
		out.Section("Administrator credentials")
		out.KeyValue("Email", email)
		out.KeyValue("Password", res.GeneratedPassword)
		out.Warning("Store this password now, it will not be shown again")
	}
}

func printStatus(out *console.Printer, rep *services.Report) {
	out.Section("Deployment status")

	out.Info("Administrators: %d", len(rep.Admins))
	for _, a := range rep.Admins {
		state := "inactive"
		if a.Active {
			state = "active"
		}
		out.Item("%s (%s) %s", a.FullName, a.Email, state)
	}

	out.Info("Equipment: %d", rep.Equipment.Total)
	for _, c := range rep.Equipment.ByCategory {
		out.Item("%s: %d", c.Category, c.Count)
	}

	out.Info("Brand systems: %d", rep.BrandSystems)

	out.Info("Accessories: %d", rep.Accessories.Total)
	for _, c := range rep.Accessories.ByCategory {
		out.Item("%s: %d", c.Category, c.Count)
	}

	if rep.Ready {
		out.Success("System is ready to use")
		return
	}
	out.Warning("System is not ready")
	for _, m := range rep.Missing {
		out.Item("missing: %s", m)
	}
}

// stepReporter prints pipeline progress.
type stepReporter struct {
	out *console.Printer
}

func (r stepReporter) StepStarted(step seeders.Step, index, total int) {
	r.out.Info("[%d/%d] %s", index, total, step.Description)
}

func (r stepReporter) StepFinished(step seeders.Step, res seeders.Result) {
	took := res.Duration.Round(time.Millisecond)
	if res.OK {
		r.out.Success("%s: %s (%s)", step.Name, res.Message, took)
		return
	}
	r.out.Error("%s failed after %s: %s", step.Name, took, res.Error)
}

func printSummary(out *console.Printer, sum seeders.Summary) {
	out.Section("Deployment summary")
	out.KeyValue("Steps completed", fmt.Sprintf("%d/%d", sum.Succeeded, sum.Total))
	if sum.OK {
		out.Success("Deployment finished")
		return
	}
	if f := sum.Failed(); f != nil {
		out.Error("Deployment stopped at %q", f.Step)
	}
}
