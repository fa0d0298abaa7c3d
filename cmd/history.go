package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"time-commander/internal"
)

var (
	// Styles
	historyHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62"))

	historyDateStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("212"))

	historyTotalStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the aggregated daily history",
	Long: `Print the daily history table: one row per calendar date with the
total tracked time, number of pauses, first start and last end.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		cache := internal.NewHistoryCache(store)
		cache.Refresh()
		rows := cache.Rows()

		if len(rows) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No history yet. Run the tracker and stop a timer to record a session.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			historyHeaderStyle.Render("Date"),
			historyHeaderStyle.Render("Start"),
			historyHeaderStyle.Render("End"),
			historyHeaderStyle.Render("Total"),
			historyHeaderStyle.Render("Pauses"),
		)
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				historyDateStyle.Render(row.RecordDate),
				row.StartTime,
				row.EndTime,
				historyTotalStyle.Render(internal.FormatDuration(row.TotalDuration)),
				strconv.Itoa(row.TotalPauses),
			)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
