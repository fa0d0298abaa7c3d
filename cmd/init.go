package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database schema",
	Long: `Create the record table in the database if it does not already exist.

Safe to run repeatedly; existing records are never touched. The tracker
runs the same migration on startup, so this is only needed to prepare a
database ahead of time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Database ready: %s\n", resolveConfig().Database)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
