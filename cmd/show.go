package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskline/taskline/internal/ui"
)

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:   "show <task_id>",
	Short: "Show a task's full details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskStore, err := GetStore()
		if err != nil {
			return fmt.Errorf("could not initialize the task store: %w", err)
		}
		defer func() { _ = taskStore.Close() }()

		task, err := resolveTask(taskStore, args[0])
		if err != nil {
			return err
		}

		ui.RenderTaskDetail(task)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
