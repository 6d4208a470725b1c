package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/taskline/taskline/models"
)

// startCmd represents the start command.
var startCmd = &cobra.Command{
	Use:   "start [task_id]",
	Short: "Mark a task as in progress",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		taskStore, err := GetStore()
		if err != nil {
			HandleFatalError("Error: Could not initialize the task store.", err)
		}
		defer func() { _ = taskStore.Close() }()

		var task models.Task

		if len(args) > 0 {
			task, err = resolveTask(taskStore, args[0])
			if err != nil {
				HandleFatalError(fmt.Sprintf("Error: Could not find task with ID '%s'.", args[0]), err)
			}
		} else {
			status := models.StatusTodo
			task, err = selectTaskInteractive(taskStore, models.TaskFilter{Status: &status}, "Select task to start")
			if err != nil {
				if err == promptui.ErrInterrupt {
					fmt.Println("Operation cancelled.")
					return
				}
				if err == ErrNoTasksFound {
					fmt.Println("No todo tasks available to start.")
					return
				}
				HandleFatalError("Error: Could not select a task.", err)
			}
		}

		updated, err := taskStore.MarkTaskInProgress(task.ID)
		if err != nil {
			HandleFatalError(fmt.Sprintf("Error: Failed to start task '%s'.", task.Title), err)
		}

		fmt.Printf("Task '%s' (ID: %d) is now in progress.\n", updated.Title, updated.ID)
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
