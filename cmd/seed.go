package cmd

import (
	"fmt"
	"os"

	"wavefm/config"
	"wavefm/db"
	"wavefm/repository"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Initialize the database schema and seed the track catalog",
	Long: `Connect to the database, create missing tables and insert the sample
track catalog if no tracks exist yet. Seeding is idempotent: a non-empty
catalog is left untouched.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		if err := db.ConnectDB(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
			os.Exit(1)
		}
		defer db.DB.Close()

		if err := db.InitDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize database: %v\n", err)
			os.Exit(1)
		}

		trackRepo := repository.NewMySQLTrackRepository(db.DB)
		seeded, err := db.SeedTracks(trackRepo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed track catalog: %v\n", err)
			os.Exit(1)
		}
		if seeded {
			fmt.Println("Track catalog seeded.")
		} else {
			fmt.Println("Track catalog already populated, nothing to do.")
		}
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
