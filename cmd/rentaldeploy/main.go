package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	// Import migrations so their init() funcs run and register themselves.
	_ "github.com/shashiranjanraj/rentaldeploy/database/migrations"
	"github.com/shashiranjanraj/rentaldeploy/pkg/runid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	ctx = runid.Ensure(ctx)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	var code exitCode
	switch {
	case err == nil:
	case errors.As(err, &code):
		os.Exit(int(code))
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// exitCode ends the process with the given status after the command has
// already reported the problem itself.
type exitCode int

func (c exitCode) Error() string { return fmt.Sprintf("exit status %d", int(c)) }

var (
	configPath string
	envPath    string
)

var rootCmd = &cobra.Command{
	Use:           "rentaldeploy",
	Short:         "Deployment and bootstrap tool for the rental application",
	Long:          "rentaldeploy prepares a rental-equipment database: it applies migrations, creates the administrator account, seeds the catalog and verifies the result.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/app.json", "JSON settings file")
	rootCmd.PersistentFlags().StringVar(&envPath, "env-file", ".env", "dotenv file")

	// Deployment
	rootCmd.AddCommand(deployCmd)
	rootCmd.AddCommand(adminCreateCmd)
	rootCmd.AddCommand(checkCmd)

	// Database
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)

	// Server
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)
}
