package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"time-commander/internal"
	"time-commander/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the daily history to a file",
	Long: `Aggregate all recorded sessions and write the daily history to a file.

Supported formats: csv (default), json, yaml. Without --out, CSV goes to the
configured export file in the working directory and other formats to the
same name with their own extension.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		store, db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		cache := internal.NewHistoryCache(store)
		cache.Refresh()
		rows := cache.Rows()

		out := exportOut
		if out == "" {
			out = resolveConfig().ExportFile
			if ext := exporter.Extension(); ext != "csv" {
				out = strings.TrimSuffix(out, ".csv") + "." + ext
			}
		}

		if err := export.WriteFile(exportFormat, out, rows); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d day(s) to %s\n", len(rows), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "Export format (csv, json, yaml)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default derived from config and format)")
}
