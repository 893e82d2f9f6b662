package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadopc/worklog/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Bulk-import entries from CSV",
	Long: `Bulk-import entries from a CSV file with the columns Date, Start, End,
Break (mins). Every row goes through the normal validation; rows that fail
are skipped and reported, the rest are imported.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.close()

		sum, err := importer.FromCSVFile(sess.store, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d entries, skipped %d.\n", sum.Accepted, sum.Skipped)
		for _, re := range sum.Errors {
			fmt.Printf("  %s\n", re)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
