package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/taskline/taskline/models"
	"github.com/taskline/taskline/store"
)

// doneCmd represents the done command.
var doneCmd = &cobra.Command{
	Use:     "done [task_id]",
	Aliases: []string{"complete", "finish"},
	Short:   "Mark a task as done",
	Long:    `Mark a task as completed. If task_id is provided, it marks that task directly. Otherwise, it presents an interactive list to choose from.`,
	Example: `  # Interactive mode
  taskline done

  # Complete a specific task
  taskline done 1756164020123456`,
	Args: cobra.MaximumNArgs(1),
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
			task, err = selectNotDoneTask(taskStore, "Select task to mark as done")
			if err != nil {
				if err == promptui.ErrInterrupt {
					fmt.Println("Operation cancelled.")
					return
				}
				if err == ErrNoTasksFound {
					fmt.Println("No active tasks available to mark as done.")
					return
				}
				HandleFatalError("Error: Could not select a task.", err)
			}
		}

		if task.Status == models.StatusDone {
			fmt.Printf("Task '%s' (ID: %d) is already completed.\n", task.Title, task.ID)
			return
		}

		updated, err := taskStore.MarkTaskDone(task.ID)
		if err != nil {
			HandleFatalError(fmt.Sprintf("Error: Failed to mark task '%s' as done.", task.Title), err)
		}

		fmt.Printf("Task '%s' (ID: %d) marked as done.\n", updated.Title, updated.ID)
	},
}

// selectNotDoneTask prompts for a task that is not yet completed. The store
// filter is exact-match only, so the not-done narrowing happens here.
func selectNotDoneTask(taskStore store.TaskStore, label string) (models.Task, error) {
	tasks, err := taskStore.ListTasks(models.TaskFilter{})
	if err != nil {
		return models.Task{}, err
	}
	candidates := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != models.StatusDone {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return models.Task{}, ErrNoTasksFound
	}

	prompt := promptui.Select{
		Label: label,
		Items: candidates,
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}?",
			Active:   `> {{ .Title | cyan }} (ID: {{ .ID }}, Status: {{ .Status }})`,
			Inactive: `  {{ .Title | faint }} (ID: {{ .ID }}, Status: {{ .Status }})`,
			Selected: `{{ "✔" | green }} {{ .Title | faint }} (ID: {{ .ID }})`,
		},
	}
	i, _, err := prompt.Run()
	if err != nil {
		return models.Task{}, err
	}
	return candidates[i], nil
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
