package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/taskline/taskline/models"
)

// cancelCmd represents the cancel command.
var cancelCmd = &cobra.Command{
	Use:   "cancel [task_id]",
	Short: "Mark a task as cancelled",
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
			task, err = selectNotDoneTask(taskStore, "Select task to cancel")
			if err != nil {
				if err == promptui.ErrInterrupt {
					fmt.Println("Operation cancelled.")
					return
				}
				if err == ErrNoTasksFound {
					fmt.Println("No active tasks available to cancel.")
					return
				}
				HandleFatalError("Error: Could not select a task.", err)
			}
		}

		updated, err := taskStore.MarkTaskCancelled(task.ID)
		if err != nil {
			HandleFatalError(fmt.Sprintf("Error: Failed to cancel task '%s'.", task.Title), err)
		}

		fmt.Printf("Task '%s' (ID: %d) cancelled.\n", updated.Title, updated.ID)
	},
}

func init() {
	rootCmd.AddCommand(cancelCmd)
}
