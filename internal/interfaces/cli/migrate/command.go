package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"campusdesk/internal/infrastructure/config"
	"campusdesk/internal/infrastructure/database"
	"campusdesk/internal/infrastructure/migration"
	"campusdesk/internal/shared/constants"
	"campusdesk/internal/shared/logger"
)

var (
	env   string
	tool  string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, rolling back, and checking status.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVar(&tool, "tool", "golang-migrate", "Migration tool (golang-migrate, goose)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create new goose migration files with the specified name.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the migration (required)")
	cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv() (*gorm.DB, string, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to load config: %w", err)
	}

	debugMode := env != constants.EnvProduction

	if err := logger.Init(&cfg.Logger, debugMode); err != nil {
		return nil, "", nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	db, err := database.Connect(&cfg.Database, debugMode)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to get scripts path: %w", err)
	}

	return db, scriptsPath, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	db, scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(db)

	log.Infow("running up migrations", "environment", env, "tool", tool)

	var strategy migration.Strategy
	switch tool {
	case "goose":
		strategy = migration.NewGooseStrategy(scriptsPath)
	default:
		strategy = migration.NewGolangMigrateStrategy(scriptsPath)
	}

	if err := migration.NewManagerWithStrategy(strategy).Migrate(db); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	db, scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(db)

	log.Infow("running down migrations", "environment", env, "tool", tool, "steps", steps)

	switch tool {
	case "goose":
		strategy := migration.NewGooseStrategy(scriptsPath).(*migration.GooseStrategy)
		if err := strategy.MigrateDown(db, steps); err != nil {
			log.Errorw("down migration failed", "error", err)
			return fmt.Errorf("down migration failed: %w", err)
		}
	default:
		strategy := migration.NewGolangMigrateStrategy(scriptsPath).(*migration.GolangMigrateStrategy)
		if err := strategy.MigrateDown(db, steps); err != nil {
			log.Errorw("down migration failed", "error", err)
			return fmt.Errorf("down migration failed: %w", err)
		}
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	db, scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(db)

	switch tool {
	case "goose":
		strategy := migration.NewGooseStrategy(scriptsPath).(*migration.GooseStrategy)
		version, err := strategy.GetVersion(db)
		if err != nil {
			log.Errorw("failed to get migration version", "error", err)
			return fmt.Errorf("failed to get migration version: %w", err)
		}

		fmt.Printf("\nMigration Status:\n")
		fmt.Printf("  Environment:     %s\n", env)
		fmt.Printf("  Current Version: %d\n", version)

		if err := strategy.Status(db); err != nil {
			return fmt.Errorf("failed to get detailed status: %w", err)
		}
	default:
		strategy := migration.NewGolangMigrateStrategy(scriptsPath).(*migration.GolangMigrateStrategy)
		version, dirty, err := strategy.Version(db)
		if err != nil {
			log.Errorw("failed to get migration version", "error", err)
			return fmt.Errorf("failed to get migration version: %w", err)
		}

		fmt.Printf("\nMigration Status:\n")
		fmt.Printf("  Environment:     %s\n", env)
		fmt.Printf("  Current Version: %d\n", version)
		fmt.Printf("  Dirty:           %t\n", dirty)
	}

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	db, scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(db)

	log.Infow("creating new migration", "name", name)

	strategy := migration.NewGooseStrategy(scriptsPath).(*migration.GooseStrategy)
	if err := strategy.Create(name); err != nil {
		log.Errorw("failed to create migration", "error", err)
		return fmt.Errorf("failed to create migration: %w", err)
	}

	log.Infow("migration created successfully", "name", name)
	return nil
}
