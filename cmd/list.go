package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadopc/worklog/internal/timesheet"
)

var listMonth string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.close()

		entries := sess.store.List()
		if listMonth != "" {
			entries = timesheet.ForMonth(entries, listMonth)
		}
		if len(entries) == 0 {
			fmt.Println("No entries.")
			return nil
		}

		printEntryTable(entries)
		fmt.Printf("\n%d entries, %.2f hours total\n", len(entries), timesheet.TotalHours(entries))
		return nil
	},
}

func printEntryTable(entries []timesheet.Entry) {
	fmt.Printf("%-5s %-12s %-7s %-7s %-12s %s\n", "ID", "Date", "Start", "End", "Break (mins)", "Hours")
	for _, e := range entries {
		fmt.Printf("%-5d %-12s %-7s %-7s %-12d %.2f\n",
			e.ID, e.Date, e.Start, e.End, e.BreakMinutes, e.Hours)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listMonth, "month", "", "only entries in this month (YYYY-MM)")
}
