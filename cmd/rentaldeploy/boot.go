package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentaldeploy/config"
	"github.com/shashiranjanraj/rentaldeploy/database/catalog"
	"github.com/shashiranjanraj/rentaldeploy/pkg/console"
	"github.com/shashiranjanraj/rentaldeploy/pkg/database"
	"github.com/shashiranjanraj/rentaldeploy/pkg/logger"
	"github.com/shashiranjanraj/rentaldeploy/pkg/storage"
)

// env is what every command gets after boot.
type env struct {
	settings *config.Settings
	db       *gorm.DB
	out      *console.Printer
	closers  []func() error
}

// boot loads settings, initialises logging and opens the database.
func boot(cmd *cobra.Command) (*env, error) {
	ctx := cmd.Context()

	s, err := config.LoadFrom(ctx, configPath, envPath)
	if err != nil {
		return nil, err
	}

	e := &env{settings: s, out: console.New(cmd.OutOrStdout())}

	flush, err := logger.Init(s.App, s.Log)
	if err != nil {
		return nil, err
	}
	e.closers = append(e.closers, func() error { flush(); return nil })

	db, err := database.Connect(s.Database)
	if err != nil {
		e.close()
		return nil, err
	}
	e.closers = append(e.closers, func() error { return database.Close(db) })

	if err := database.Instrument(db); err != nil {
		e.close()
		return nil, err
	}
	e.db = db

	logger.WithCtx(ctx).Debug("boot: ready", "driver", s.Database.Driver, "env", s.App.Env)
	return e, nil
}

// close runs the closers newest first.
func (e *env) close() {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		fmt.Fprintln(os.Stderr, "shutdown:", err)
	}
}

// disk returns the named storage disk, or the default one for "".
func (e *env) disk(ctx context.Context, name string) (storage.Disk, error) {
	mgr, err := storage.NewManager(ctx, e.settings.Storage)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return mgr.Default()
	}
	return mgr.Disk(name)
}

// catalog is the built-in catalog, or the file at path on the given disk.
func (e *env) catalog(ctx context.Context, path, diskName string) (catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	disk, err := e.disk(ctx, diskName)
	if err != nil {
		return catalog.Catalog{}, err
	}
	return catalog.Load(ctx, disk, path)
}
