package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadopc/worklog/internal/timesheet"
)

var (
	addDate  string
	addStart string
	addEnd   string
	addBreak int
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a work session",
	Long: `Log a work session. Hours are derived from start, end and break and the
entry is rejected if they come out non-positive.

Examples:
  worklog add --start 09:00 --end 17:00 --break 30
  worklog add --date 2024-01-05 --start 08:15 --end 12:45`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := timesheet.Today()
		if addDate != "" {
			var err error
			if date, err = timesheet.ParseDate(addDate); err != nil {
				return err
			}
		}
		start, err := timesheet.ParseClock(addStart)
		if err != nil {
			return err
		}
		end, err := timesheet.ParseClock(addEnd)
		if err != nil {
			return err
		}

		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.close()

		e, err := sess.store.Add(date, start, end, addBreak)
		if err = reportFlush(err); err != nil {
			return err
		}

		fmt.Printf("Added entry %d: %s %s–%s, %d min break, %.2f hours\n",
			e.ID, e.Date, e.Start, e.End, e.BreakMinutes, e.Hours)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addDate, "date", "", "workday (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVar(&addStart, "start", "", "start time (HH:MM)")
	addCmd.Flags().StringVar(&addEnd, "end", "", "end time (HH:MM)")
	addCmd.Flags().IntVar(&addBreak, "break", 0, "break in minutes")
	addCmd.MarkFlagRequired("start")
	addCmd.MarkFlagRequired("end")
}
