package commands

import (
	"fmt"
	"os"

	"zfast-backend/internal/config"
	"zfast-backend/internal/database"
	"zfast-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	// Global flags
	dbDriver string
	dbURL    string
	verbose  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "zfastctl",
	Short: "Maintenance tasks for the Z-FAST site backend",
	Long: `zfastctl runs offline maintenance against the site database.

The database is taken from the same DB_DRIVER and DATABASE_URL settings the
server uses (.env, config.yaml or the environment) unless --driver and --db
are given.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbDriver, "driver", "", "Database driver (sqlite or postgres)")
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database URL or SQLite file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// openDatabase loads the server configuration, applies flag overrides and opens the store
func openDatabase() (*gorm.DB, *config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}
	if dbDriver != "" {
		cfg.DatabaseDriver = dbDriver
	}
	if dbURL != "" {
		cfg.DatabaseURL = dbURL
	}

	level := "warn"
	gormLevel := gormlogger.Silent
	if verbose {
		level = "debug"
		gormLevel = gormlogger.Info
	}
	logger.Setup(level)

	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL, &database.Options{LogLevel: gormLevel})
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return db, cfg, nil
}
