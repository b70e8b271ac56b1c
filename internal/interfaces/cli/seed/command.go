package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"campusdesk/internal/infrastructure/auth"
	"campusdesk/internal/infrastructure/config"
	"campusdesk/internal/infrastructure/database"
	"campusdesk/internal/infrastructure/repository"
	"campusdesk/internal/infrastructure/seed"
	"campusdesk/internal/shared/constants"
	"campusdesk/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the initial administrator account",
		Long: `Create the initial super admin account from CAMPUSDESK_SEED_ADMIN_EMAIL
and CAMPUSDESK_SEED_ADMIN_PASSWORD. Does nothing when the account already exists.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	debugMode := env != constants.EnvProduction

	if err := logger.Init(&cfg.Logger, debugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		return fmt.Errorf("CAMPUSDESK_SEED_ADMIN_EMAIL and CAMPUSDESK_SEED_ADMIN_PASSWORD must be set")
	}

	db, err := database.Connect(&cfg.Database, debugMode)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	hasher := auth.NewBcryptPasswordHasher(&cfg.Auth.Password)
	seeder := seed.NewSeeder(repository.NewUserRepository(db), hasher)

	if err := seeder.SeedAdmin(context.Background(), &cfg.Seed); err != nil {
		log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Infow("seeding completed")
	return nil
}
