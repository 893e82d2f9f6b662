package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadopc/worklog/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		path, err := config.Path()
		if err != nil {
			return err
		}
		dataPath, err := cfg.DataPath()
		if err != nil {
			return err
		}

		fmt.Printf("config file:          %s\n", path)
		fmt.Printf("storage:              %s\n", cfg.Storage)
		fmt.Printf("data file:            %s\n", dataPath)
		fmt.Printf("weekly target hours:  %.2f\n", cfg.WeeklyTargetHours)
		fmt.Printf("monthly target hours: %.2f\n", cfg.MonthlyTargetHours)
		fmt.Printf("debug:                %v\n", cfg.Debug)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
