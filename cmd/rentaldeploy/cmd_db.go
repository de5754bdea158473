package main

import (
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/rentaldeploy/app/services"
	"github.com/shashiranjanraj/rentaldeploy/pkg/migration"
)

// rentaldeploy migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := boot(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		e.out.Info("Running migrations…")
		applied, err := migration.New(e.db).Run(cmd.Context())
		for _, name := range applied {
			e.out.Success("%s", name)
		}
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			e.out.Skip("Nothing to migrate")
		}
		return nil
	},
}

// rentaldeploy migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Rollback the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := boot(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		e.out.Info("Rolling back last batch…")
		reverted, err := migration.New(e.db).Rollback(cmd.Context())
		for _, name := range reverted {
			e.out.Success("%s", name)
		}
		if err != nil {
			return err
		}
		if len(reverted) == 0 {
			e.out.Skip("Nothing to roll back")
		}
		return nil
	},
}

// rentaldeploy migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := boot(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		st, err := migration.New(e.db).Status(cmd.Context())
		if err != nil {
			return err
		}

		e.out.Section("Migrations")
		for _, m := range st {
			if m.Ran {
				e.out.Success("%s (batch %d)", m.Name, m.Batch)
			} else {
				e.out.Skip("%s (pending)", m.Name)
			}
		}
		return nil
	},
}

var (
	seedCatalog string
	seedDisk    string
	seedVerbose bool
)

// rentaldeploy seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed brand systems, accessories and equipment",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := boot(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		ctx := cmd.Context()
		c, err := e.catalog(ctx, seedCatalog, seedDisk)
		if err != nil {
			return err
		}

		svc := services.NewSeedService(e.db)
		if seedVerbose {
			svc.OnProgress(func(r services.EntityResult) { printEntity(e.out, r) })
		}

		e.out.Info("Seeding catalog…")
		rep, err := svc.Seed(ctx, c)
		if rep != nil {
			printSeedReport(e.out, rep)
		}
		return err
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedCatalog, "catalog", "", "catalog file (.json, .yaml) on the storage disk; built-in catalog when empty")
	seedCmd.Flags().StringVar(&seedDisk, "disk", "", "storage disk to read --catalog from (default STORAGE_DISK)")
	seedCmd.Flags().BoolVarP(&seedVerbose, "verbose", "v", false, "print every catalog entry")
}
