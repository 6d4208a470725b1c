package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskline/taskline/internal/ui"
	"github.com/taskline/taskline/models"
)

var (
	addDescription string
	addCategory    string
	addPriority    string
	addDue         string
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long:  `Add a new task with the given title. Description, category, priority and due date are optional flags.`,
	Example: `  taskline add "Buy milk"
  taskline add "Ship release" -d "tag and push v1.2" --category work --priority high --due "2026-09-01 17:00"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.TrimSpace(strings.Join(args, " "))

		var priority models.TaskPriority
		if addPriority != "" {
			p, err := models.ParsePriority(addPriority)
			if err != nil {
				return err
			}
			priority = p
		}

		dueDate, err := parseDueDate(addDue)
		if err != nil {
			return err
		}

		task, err := models.NewTask(title, addDescription, addCategory, priority, dueDate)
		if err != nil {
			return err
		}

		taskStore, err := GetStore()
		if err != nil {
			return fmt.Errorf("could not initialize the task store: %w", err)
		}
		defer func() { _ = taskStore.Close() }()

		created, err := taskStore.CreateTask(task)
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		fmt.Println("Task created:")
		ui.RenderTaskDetail(created)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "task description")
	addCmd.Flags().StringVar(&addCategory, "category", "", "task category (default \"Default\")")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "task priority: low, medium, high, urgent (default medium)")
	addCmd.Flags().StringVar(&addDue, "due", "", "due date, YYYY-MM-DD or \"YYYY-MM-DD HH:MM\"")
}
