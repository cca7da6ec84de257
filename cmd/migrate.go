package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/castkeep/catalog-api/internal/database"
	"github.com/castkeep/catalog-api/internal/models"
	"github.com/castkeep/catalog-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema for the Podcast Catalog API.

Available subcommands:
  up      - Bring the schema up to date
  down    - Drop the catalog tables
  status  - Show which tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Bring the schema up to date",
	RunE:  runMigrateUp,
}

// migrateDownCmd drops the catalog tables
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Drop the catalog tables",
	Long: `Drop the podcasts and episodes tables.

This destroys all catalog data; a confirmation prompt is shown unless
--dry-run is set.`,
	RunE: runMigrateDown,
}

// migrateStatusCmd shows which tables exist
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

// migrationModels lists every model the schema is derived from
var migrationModels = []any{&models.Podcast{}, &models.Episode{}}

func connect() (*database.DB, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, database.Options{
		MaxConnections:        cfg.Database.MaxConnections,
		MaxIdleConnections:    cfg.Database.MaxIdleConnections,
		ConnectionMaxLifetime: cfg.Database.ConnectionMaxLifetime,
		EnableForeignKeys:     cfg.Database.EnableForeignKeys,
		Verbose:               cfg.Database.Verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun {
		fmt.Println("Dry run mode - no changes will be made")
		for _, model := range migrationModels {
			fmt.Printf("Would migrate %T\n", model)
		}
		return nil
	}

	db, err := connect()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.AutoMigrate(migrationModels...); err != nil {
		return err
	}

	fmt.Println("Schema is up to date")
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun {
		fmt.Println("Dry run mode - no changes will be made")
		for _, model := range migrationModels {
			fmt.Printf("Would drop table for %T\n", model)
		}
		return nil
	}

	// Confirmation prompt for destructive action
	fmt.Print("WARNING: This will drop the catalog tables and destroy all data. Continue? (y/N): ")
	var response string
	_, _ = fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Migration rollback cancelled")
		return nil
	}

	db, err := connect()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	// Episodes reference podcasts, so they go first
	if err := db.Migrator().DropTable(&models.Episode{}, &models.Podcast{}); err != nil {
		return fmt.Errorf("dropping tables: %w", err)
	}

	fmt.Println("Catalog tables dropped")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := connect()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	fmt.Println("Database Migration Status")
	fmt.Println("=========================")
	for _, model := range migrationModels {
		state := "missing"
		if db.Migrator().HasTable(model) {
			state = "present"
		}
		fmt.Printf("%-20T %s\n", model, state)
	}

	return nil
}
