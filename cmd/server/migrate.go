// cmd/server/migrate.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javajoker/product-service/internal/config"
	"github.com/javajoker/product-service/internal/database"
	"github.com/javajoker/product-service/internal/logging"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the products table and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		log := logging.New(cfg.Log)

		db, err := database.Initialize(cfg.Database, log)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer database.Close(db, log)

		if err := database.RunMigrations(db, log); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		log.Info("Migrations applied")
		return nil
	},
}
