package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sadopc/worklog/internal/timesheet"
)

var (
	updDate  string
	updStart string
	updEnd   string
	updBreak int
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rewrite an entry, recomputing its hours",
	Long: `Rewrite an entry. Flags that are not given keep the entry's current
values; hours are always recomputed and the update is rejected as a whole if
they come out non-positive.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.close()

		var current *timesheet.Entry
		for _, e := range sess.store.List() {
			if e.ID == id {
				current = &e
				break
			}
		}
		if current == nil {
			return timesheet.ErrNotFound
		}

		date, start, end, brk := current.Date, current.Start, current.End, current.BreakMinutes
		if cmd.Flags().Changed("date") {
			if date, err = timesheet.ParseDate(updDate); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("start") {
			if start, err = timesheet.ParseClock(updStart); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("end") {
			if end, err = timesheet.ParseClock(updEnd); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("break") {
			brk = updBreak
		}

		e, err := sess.store.Update(id, date, start, end, brk)
		if err = reportFlush(err); err != nil {
			return err
		}

		fmt.Printf("Updated entry %d: %s %s–%s, %d min break, %.2f hours\n",
			e.ID, e.Date, e.Start, e.End, e.BreakMinutes, e.Hours)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVar(&updDate, "date", "", "workday (YYYY-MM-DD)")
	updateCmd.Flags().StringVar(&updStart, "start", "", "start time (HH:MM)")
	updateCmd.Flags().StringVar(&updEnd, "end", "", "end time (HH:MM)")
	updateCmd.Flags().IntVar(&updBreak, "break", 0, "break in minutes")
}
