package cmd

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"time-commander/internal"
	"time-commander/internal/tui"
)

var (
	verbose bool
	dbPath  string
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "time-commander",
	Short: "Track working time from the terminal",
	Long: `An interactive terminal stopwatch for tracking working time.

Start and stop a timer while you work; every stop is recorded, and records
are rolled up into a daily history (total time, pauses, first start, last
end) shown next to the timer and exportable to a file.

Keys inside the tracker:
  s   start the timer
  d   stop the timer and record the session
  e   export the daily history to CSV
  q   quit (a running timer is stopped and recorded first)

Quick Start:
  time-commander                # run the interactive tracker
  time-commander history        # print the daily history
  time-commander export         # write the history to a file`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		timer := internal.NewTimer(store)
		cache := internal.NewHistoryCache(store)
		cache.Refresh()

		return tui.Run(timer, cache, resolveConfig().ExportFile)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file (default from config or ./"+internal.DefaultDatabaseFile+")")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// resolveConfig loads the user config with the --db flag applied on top.
func resolveConfig() internal.Config {
	cfg := internal.LoadConfig()
	if dbPath != "" {
		cfg.Database = dbPath
	}
	return cfg
}

// openStore opens (creating if needed) the configured database and makes
// sure the schema exists.
func openStore() (*internal.SQLiteStore, *sql.DB, error) {
	cfg := resolveConfig()
	db, err := internal.OpenDatabase(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database %s: %w", cfg.Database, err)
	}
	if err := internal.Migrate(db); err != nil {
		db.Close()
		return nil, nil, err
	}
	return internal.NewSQLiteStore(db), db, nil
}
