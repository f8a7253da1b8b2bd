package main

import (
	"fmt"

	"github.com/SscSPs/ledgerbook/internal/platform/config"
	"github.com/SscSPs/ledgerbook/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back database migrations",
	Long: `Manage the Postgres schema with the migrations found at MIGRATIONS_PATH.

Migrations only apply to the postgres storage driver.`,
	Example: `  # Apply every pending migration
  ledgerbook migrate up

  # Roll back the most recent migration
  ledgerbook migrate down`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requirePostgres(); err != nil {
			return err
		}
		return migrateUp()
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requirePostgres(); err != nil {
			return err
		}
		changed, err := database.MigrateDown(cfg.DatabaseURL, cfg.MigrationsPath)
		if err != nil {
			return err
		}
		if changed {
			logger.Info("Rolled back the most recent migration.")
		} else {
			logger.Info("No migration to roll back.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
}

func requirePostgres() error {
	if cfg.StorageDriver != config.StorageDriverPostgres {
		return fmt.Errorf("migrations need STORAGE_DRIVER=%s, got %q", config.StorageDriverPostgres, cfg.StorageDriver)
	}
	return nil
}

func migrateUp() error {
	logger.Info("Running database migrations...")
	changed, err := database.MigrateUp(cfg.DatabaseURL, cfg.MigrationsPath)
	if err != nil {
		return err
	}
	if changed {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}
	return nil
}
