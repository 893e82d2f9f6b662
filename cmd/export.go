package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/worklog/internal/export"
	"github.com/sadopc/worklog/internal/timesheet"
)

var exportMonth string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export entries to CSV or JSON",
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv [path]",
	Short: "Export entries as CSV",
	Long: `Export entries as CSV with the columns Date, Start, End, Break (mins),
Hours, newest first. The default path is worklog-<date>.csv in your home
directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(args, "csv", export.ToCSV)
	},
}

var exportJSONCmd = &cobra.Command{
	Use:   "json [path]",
	Short: "Export entries as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(args, "json", export.ToJSON)
	},
}

func runExport(args []string, ext string, encode func([]timesheet.Entry, string) error) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	entries := sess.store.List()
	if exportMonth != "" {
		entries = timesheet.ForMonth(entries, exportMonth)
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		stamp := time.Now().Format("2006-01-02")
		if exportMonth != "" {
			stamp = exportMonth
		}
		path = filepath.Join(home, fmt.Sprintf("worklog-%s.%s", stamp, ext))
	}

	if err := encode(entries, path); err != nil {
		return err
	}
	fmt.Printf("Exported %d entries to %s\n", len(entries), path)
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportJSONCmd)
	exportCmd.PersistentFlags().StringVar(&exportMonth, "month", "", "only entries in this month (YYYY-MM)")
}
