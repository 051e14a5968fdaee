package cmd

import (
	"context"
	"fmt"

	"fast-food/pkg/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, logger, err := boot()
		if err != nil {
			return err
		}
		defer logger.Sync()

		db, err := database.InitDB(config.Database)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer db.Close()

		return runMigrations(cmd.Context(), db, logger)
	},
}

func runMigrations(ctx context.Context, db database.PgxIface, logger *zap.Logger) error {
	applied, err := database.Migrate(ctx, db, database.Migrations(), logger)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("Migrations complete", zap.Strings("applied", applied))
	return nil
}
