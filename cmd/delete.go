package cmd

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/taskline/taskline/models"
)

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:   "delete [task_id]",
	Short: "Delete a task",
	Long:  `Delete a task by its ID. If no ID is provided, an interactive list is shown. A confirmation prompt is always displayed before deletion; deletion is permanent.`,
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
			task, err = selectTaskInteractive(taskStore, models.TaskFilter{}, "Select task to delete")
			if err != nil {
				if err == promptui.ErrInterrupt {
					fmt.Println("Deletion cancelled.")
					return
				}
				if err == ErrNoTasksFound {
					fmt.Println("No tasks available to delete.")
					return
				}
				HandleFatalError("Error: Could not select a task.", err)
			}
		}

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Are you sure you want to delete task '%s' (ID: %d)", task.Title, task.ID),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			if err == promptui.ErrAbort {
				fmt.Println("Deletion cancelled.")
				return
			}
			fmt.Fprintf(os.Stderr, "Confirmation prompt failed: %v\n", err)
			os.Exit(1)
		}

		if err := taskStore.DeleteTask(task.ID); err != nil {
			HandleFatalError(fmt.Sprintf("Error: Failed to delete task %d.", task.ID), err)
		}

		fmt.Printf("Task %d deleted.\n", task.ID)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
