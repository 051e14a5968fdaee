package cmd

import (
	"fmt"

	"fast-food/internal/data/entity"
	"fast-food/internal/data/repository"
	"fast-food/internal/usecase"
	"fast-food/pkg/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var adminOpts struct {
	name     string
	email    string
	password string
}

// no endpoint grants the admin role, this command is the only way in
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an administrator account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if adminOpts.password == "" || len(adminOpts.password) > 72 {
			return fmt.Errorf("password must be between 1 and 72 bytes")
		}

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

		users := repository.NewUserRepository(db, logger)
		credentials := usecase.NewCredentialStore(users, logger)

		user, err := credentials.Register(cmd.Context(), adminOpts.name, adminOpts.email, adminOpts.password, entity.RoleAdmin)
		if err != nil {
			return fmt.Errorf("create admin %s: %w", adminOpts.email, err)
		}

		logger.Info("Admin created", zap.String("user_id", user.ID.String()), zap.String("email", user.Email))
		fmt.Fprintf(cmd.OutOrStdout(), "admin %s created (%s)\n", user.Email, user.ID)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminOpts.name, "name", "Administrator", "display name")
	createAdminCmd.Flags().StringVar(&adminOpts.email, "email", "", "login email")
	createAdminCmd.Flags().StringVar(&adminOpts.password, "password", "", "login password")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
}
