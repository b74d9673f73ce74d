package commands

import (
	"fmt"
	"os"

	"zfast-backend/internal/database"

	"github.com/spf13/cobra"
)

var seedFile string

// seedCmd fills an empty database with the admin account and demo content
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the admin account, site settings and demo content",
	Long: `Seed inserts the admin account and every site setting that does not exist yet,
then fills each content table that is still empty. Running it twice is harmless.

Examples:
  zfastctl seed                         # Use the built-in seed data
  zfastctl seed --file seed_data.yaml   # Use a custom YAML file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd)
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML seed file (defaults to the built-in data)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command) error {
	var opts database.SeedOptions
	if seedFile != "" {
		raw, err := os.ReadFile(seedFile)
		if err != nil {
			return fmt.Errorf("read seed file: %w", err)
		}
		if opts.Data, err = database.LoadSeedData(raw); err != nil {
			return err
		}
	}

	db, cfg, err := openDatabase()
	if err != nil {
		return err
	}
	defer database.Close(db)

	opts.BcryptCost = cfg.BcryptCost
	if err := database.Seed(cmd.Context(), db, opts); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Database seeded")
	return nil
}
