package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskline/taskline/internal/ui"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"statistics"},
	Short:   "Show task statistics",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		taskStore, err := GetStore()
		if err != nil {
			return fmt.Errorf("could not initialize the task store: %w", err)
		}
		defer func() { _ = taskStore.Close() }()

		stats, err := taskStore.Statistics()
		if err != nil {
			return fmt.Errorf("failed to compute statistics: %w", err)
		}

		ui.RenderStatistics(stats)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
