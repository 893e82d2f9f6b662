package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadopc/worklog/internal/timesheet"
)

var (
	reportMonth string
	reportWeek  bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize hours, per-month totals and overtime",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.close()

		entries := sess.store.List()
		if len(entries) == 0 {
			fmt.Println("No entries.")
			return nil
		}

		months := timesheet.Months(entries)
		fmt.Printf("Entries:        %d\n", len(entries))
		fmt.Printf("Total hours:    %.2f\n", timesheet.TotalHours(entries))
		fmt.Printf("Avg per entry:  %.2f\n", timesheet.AverageHours(entries))
		fmt.Printf("Months tracked: %d\n", len(months))

		fmt.Println("\nPer month:")
		for _, m := range months {
			monthEntries := timesheet.ForMonth(entries, m)
			fmt.Printf("  %s  %7.2f hours  (%d entries)\n", m, timesheet.TotalHours(monthEntries), len(monthEntries))
		}

		// Overtime for one month against the configured monthly target.
		month := months[0]
		if reportMonth != "" {
			month = reportMonth
		}
		total := timesheet.TotalHours(timesheet.ForMonth(entries, month))
		ot := timesheet.Overtime(total, sess.cfg.MonthlyTargetHours)
		state := "ahead of"
		if !ot.OverTarget {
			state = "behind"
		}
		fmt.Printf("\n%s: %.2f of %.2f target hours, %+.2f (%s target)\n",
			month, total, sess.cfg.MonthlyTargetHours, ot.Delta, state)

		if reportWeek {
			year, week := timesheet.Today().ISOWeek()
			var weekTotal float64
			for _, h := range timesheet.WeeklyHeatmap(entries)[timesheet.Week{Year: year, Week: week}] {
				weekTotal += h
			}
			wot := timesheet.Overtime(weekTotal, sess.cfg.WeeklyTargetHours)
			wstate := "ahead of"
			if !wot.OverTarget {
				wstate = "behind"
			}
			fmt.Printf("%d-W%02d: %.2f of %.2f target hours, %+.2f (%s target)\n",
				year, week, weekTotal, sess.cfg.WeeklyTargetHours, wot.Delta, wstate)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportMonth, "month", "", "month for the overtime line (YYYY-MM, default latest)")
	reportCmd.Flags().BoolVar(&reportWeek, "week", false, "also report the current ISO week against the weekly target")
}
