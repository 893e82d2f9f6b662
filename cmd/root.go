package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sadopc/worklog/internal/tui"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "worklog",
	Short: "Track daily working hours",
	Long: `worklog records daily work sessions (date, start, end, break) and derives
worked hours, monthly breakdowns and overtime against configured targets.

Run without arguments to open the interactive TUI. Subcommands cover the same
operations for scripting:

  worklog add --start 09:00 --end 17:00 --break 30
  worklog list --month 2024-01
  worklog report
  worklog export csv timesheet.csv
  worklog import timesheet.csv`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.close()

		app := tui.NewApp(sess.store, sess.cfg)
		p := tea.NewProgram(app, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
}
