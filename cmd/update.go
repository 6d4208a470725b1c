package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskline/taskline/internal/ui"
	"github.com/taskline/taskline/models"
)

var (
	updateTitle       string
	updateDescription string
	updateCategory    string
	updatePriority    string
	updateStatus      string
	updateDue         string
	updateClearDue    bool
)

// updateCmd represents the update command.
var updateCmd = &cobra.Command{
	Use:   "update <task_id>",
	Short: "Update fields of a task",
	Long: `Update a task. Only the flags you pass are changed; everything else is left
as it was. Setting --status here changes the status directly without touching
the completion timestamp; use 'taskline done' to complete a task properly.`,
	Example: `  taskline update 1756164020123456 --title "Buy oat milk"
  taskline update 1756164020123456 --priority urgent --due 2026-09-15
  taskline update 1756164020123456 --clear-due`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		var update models.TaskUpdate
		if cmd.Flags().Changed("title") {
			update.Title = &updateTitle
		}
		if cmd.Flags().Changed("description") {
			update.Description = &updateDescription
		}
		if cmd.Flags().Changed("category") {
			update.Category = &updateCategory
		}
		if cmd.Flags().Changed("priority") {
			p, err := models.ParsePriority(updatePriority)
			if err != nil {
				return err
			}
			update.Priority = &p
		}
		if cmd.Flags().Changed("status") {
			s, err := models.ParseStatus(updateStatus)
			if err != nil {
				return err
			}
			update.Status = &s
		}
		if updateClearDue {
			update.ClearDueDate = true
		} else if cmd.Flags().Changed("due") {
			due, err := parseDueDate(updateDue)
			if err != nil {
				return err
			}
			update.DueDate = due
		}

		if update.IsZero() {
			return fmt.Errorf("nothing to update: pass at least one field flag")
		}

		taskStore, err := GetStore()
		if err != nil {
			return fmt.Errorf("could not initialize the task store: %w", err)
		}
		defer func() { _ = taskStore.Close() }()

		updated, err := taskStore.UpdateTask(id, update)
		if err != nil {
			return err
		}

		fmt.Println("Task updated:")
		ui.RenderTaskDetail(updated)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	updateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "new description")
	updateCmd.Flags().StringVar(&updateCategory, "category", "", "new category")
	updateCmd.Flags().StringVarP(&updatePriority, "priority", "p", "", "new priority: low, medium, high, urgent")
	updateCmd.Flags().StringVarP(&updateStatus, "status", "s", "", "new status: todo, in-progress, done, cancelled")
	updateCmd.Flags().StringVar(&updateDue, "due", "", "new due date, YYYY-MM-DD or \"YYYY-MM-DD HH:MM\"")
	updateCmd.Flags().BoolVar(&updateClearDue, "clear-due", false, "remove the due date")
}
