package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskline/taskline/internal/ui"
	"github.com/taskline/taskline/models"
)

var (
	listStatus   string
	listCategory string
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List tasks, newest first. Filters combine with AND.

Examples:
  taskline list
  taskline list --status todo
  taskline list --category work --status in-progress`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var filter models.TaskFilter

		if listStatus != "" {
			status, err := models.ParseStatus(listStatus)
			if err != nil {
				return err
			}
			filter.Status = &status
		}
		if listCategory != "" {
			filter.Category = &listCategory
		}

		taskStore, err := GetStore()
		if err != nil {
			return fmt.Errorf("could not initialize the task store: %w", err)
		}
		defer func() { _ = taskStore.Close() }()

		tasks, err := taskStore.ListTasks(filter)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		ui.RenderTaskList(tasks)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "filter by status: todo, in-progress, done, cancelled")
	listCmd.Flags().StringVar(&listCategory, "category", "", "filter by category")
}
