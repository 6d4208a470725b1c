package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/taskline/taskline/internal/ui"
	"github.com/taskline/taskline/models"
	"github.com/taskline/taskline/store"
)

// errExitMenu signals that the user chose to leave the interactive loop.
var errExitMenu = errors.New("exit menu")

// interactiveCmd represents the interactive command.
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Interactive menu for common taskline operations",
	Long: `Interactive mode provides a guided menu for taskline operations:
adding, viewing, filtering, updating, completing and deleting tasks, plus
statistics. Use arrow keys to navigate and Enter to select. Errors inside the
menu are reported and return you to the menu; only Exit leaves the loop.`,
	Aliases: []string{"menu"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		taskStore, err := GetStore()
		if err != nil {
			HandleFatalError("Error: Could not initialize the task store.", err)
		}
		defer func() { _ = taskStore.Close() }()

		fmt.Println("Welcome to taskline interactive mode.")
		fmt.Println("Use arrow keys to navigate, Enter to select, Ctrl+C to exit.")
		fmt.Println()

		for runInteractiveMenu(taskStore) {
		}

		fmt.Println("Goodbye!")
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// MenuItem represents a menu option.
type MenuItem struct {
	Label  string
	Action func(store.TaskStore) error
}

// menuItems builds the menu for the current collection state. Actions take
// the session store; they never construct one themselves.
func menuItems(stats models.Statistics) []MenuItem {
	return []MenuItem{
		{Label: "Add a new task", Action: handleAddTask},
		{Label: fmt.Sprintf("View all tasks (%d total)", stats.Total), Action: handleViewAllTasks},
		{Label: "Filter tasks by status", Action: handleFilterByStatus},
		{Label: "Filter tasks by category", Action: handleFilterByCategory},
		{Label: "Update a task", Action: handleUpdateTask},
		{Label: fmt.Sprintf("Mark a task as done (%d open)", stats.Todo+stats.InProgress), Action: handleMarkTaskDone},
		{Label: "Delete a task", Action: handleDeleteTask},
		{Label: "View statistics", Action: handleStatistics},
		{Label: "Exit", Action: func(store.TaskStore) error { return errExitMenu }},
	}
}

// runInteractiveMenu displays the main menu once and handles the selection.
// It returns false when the loop should stop. The store is constructed once
// by the command and lives for the whole session.
func runInteractiveMenu(taskStore store.TaskStore) bool {
	stats, _ := taskStore.Statistics()
	items := menuItems(stats)

	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}

	prompt := promptui.Select{
		Label: "What would you like to do",
		Items: labels,
		Size:  len(labels),
	}

	i, _, err := prompt.Run()
	if err != nil {
		// Ctrl+C on the menu means exit.
		return false
	}

	if err := items[i].Action(taskStore); err != nil {
		if errors.Is(err, errExitMenu) {
			return false
		}
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) {
			fmt.Println("Cancelled.")
			return true
		}
		// Everything else is recoverable: report and return to the menu.
		PrintError(fmt.Sprintf("Error: %v", err), err)
	}

	fmt.Println()
	return true
}

func handleAddTask(taskStore store.TaskStore) error {
	titlePrompt := promptui.Prompt{
		Label: "Task title",
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("title must not be empty")
			}
			return nil
		},
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return err
	}

	description, err := promptOptional("Description (optional)")
	if err != nil {
		return err
	}
	category, err := promptOptional(fmt.Sprintf("Category (optional, default %q)", models.DefaultCategory))
	if err != nil {
		return err
	}

	priority, err := selectPriority(models.PriorityMedium)
	if err != nil {
		return err
	}

	dueInput, err := promptOptional("Due date, YYYY-MM-DD or YYYY-MM-DD HH:MM (optional)")
	if err != nil {
		return err
	}
	dueDate, err := parseDueDate(dueInput)
	if err != nil {
		// Matches the original behavior: an unparseable date skips the
		// field instead of aborting the whole add.
		fmt.Println("Invalid date format; the task will have no due date.")
		dueDate = nil
	}

	task, err := models.NewTask(title, description, category, priority, dueDate)
	if err != nil {
		return err
	}

	created, err := taskStore.CreateTask(task)
	if err != nil {
		return err
	}

	fmt.Println("\nTask created:")
	ui.RenderTaskDetail(created)
	return nil
}

func handleViewAllTasks(taskStore store.TaskStore) error {
	tasks, err := taskStore.ListTasks(models.TaskFilter{})
	if err != nil {
		return err
	}
	ui.RenderTaskList(tasks)
	return nil
}

func handleFilterByStatus(taskStore store.TaskStore) error {
	status, err := selectStatus("Filter by status")
	if err != nil {
		return err
	}
	tasks, err := taskStore.ListTasks(models.TaskFilter{Status: &status})
	if err != nil {
		return err
	}
	ui.RenderTaskList(tasks)
	return nil
}

func handleFilterByCategory(taskStore store.TaskStore) error {
	categories, err := taskStore.Categories()
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		fmt.Println("No categories yet.")
		return nil
	}

	prompt := promptui.Select{
		Label: "Filter by category",
		Items: categories,
	}
	_, category, err := prompt.Run()
	if err != nil {
		return err
	}

	tasks, err := taskStore.ListTasks(models.TaskFilter{Category: &category})
	if err != nil {
		return err
	}
	ui.RenderTaskList(tasks)
	return nil
}

func handleUpdateTask(taskStore store.TaskStore) error {
	task, err := selectTaskInteractive(taskStore, models.TaskFilter{}, "Select task to update")
	if err != nil {
		return err
	}

	fmt.Println("\nCurrent task:")
	ui.RenderTaskDetail(task)
	fmt.Println("\nEnter new values (press Enter to keep the current one):")

	var update models.TaskUpdate

	if title, err := promptWithDefault("Title", task.Title); err != nil {
		return err
	} else if title != task.Title {
		update.Title = &title
	}
	if description, err := promptWithDefault("Description", task.Description); err != nil {
		return err
	} else if description != task.Description {
		update.Description = &description
	}
	if category, err := promptWithDefault("Category", task.Category); err != nil {
		return err
	} else if category != task.Category {
		update.Category = &category
	}

	priority, err := selectPriority(task.Priority)
	if err != nil {
		return err
	}
	if priority != task.Priority {
		update.Priority = &priority
	}

	status, err := selectStatus(fmt.Sprintf("Status (current: %s)", task.Status))
	if err != nil {
		return err
	}
	if status != task.Status {
		update.Status = &status
	}

	currentDue := "none"
	if task.DueDate != nil {
		currentDue = task.DueDate.Format("2006-01-02 15:04")
	}
	dueInput, err := promptOptional(fmt.Sprintf("Due date (current: %s)", currentDue))
	if err != nil {
		return err
	}
	if dueInput != "" {
		dueDate, err := parseDueDate(dueInput)
		if err != nil {
			fmt.Println("Invalid date format; keeping the current due date.")
		} else {
			update.DueDate = dueDate
		}
	}

	if !update.IsZero() {
		task, err = taskStore.UpdateTask(task.ID, update)
		if err != nil {
			return err
		}
	}

	// Moving into done through the bulk edit does not set the completion
	// timestamp; complete the transition properly in that case.
	if status == models.StatusDone && task.CompletedAt == nil {
		task, err = taskStore.MarkTaskDone(task.ID)
		if err != nil {
			return err
		}
	}

	fmt.Println("\nTask updated:")
	ui.RenderTaskDetail(task)
	return nil
}

func handleMarkTaskDone(taskStore store.TaskStore) error {
	task, err := selectNotDoneTask(taskStore, "Select task to mark as done")
	if err != nil {
		if err == ErrNoTasksFound {
			fmt.Println("No active tasks available to mark as done.")
			return nil
		}
		return err
	}

	updated, err := taskStore.MarkTaskDone(task.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Task '%s' marked as done.\n", updated.Title)
	return nil
}

func handleDeleteTask(taskStore store.TaskStore) error {
	task, err := selectTaskInteractive(taskStore, models.TaskFilter{}, "Select task to delete")
	if err != nil {
		if err == ErrNoTasksFound {
			fmt.Println("No tasks available to delete.")
			return nil
		}
		return err
	}

	confirm := promptui.Prompt{
		Label:     fmt.Sprintf("Delete task '%s' (ID: %d)", task.Title, task.ID),
		IsConfirm: true,
	}
	if _, err := confirm.Run(); err != nil {
		fmt.Println("Deletion cancelled.")
		return nil
	}

	if err := taskStore.DeleteTask(task.ID); err != nil {
		return err
	}
	fmt.Printf("Task %d deleted.\n", task.ID)
	return nil
}

func handleStatistics(taskStore store.TaskStore) error {
	stats, err := taskStore.Statistics()
	if err != nil {
		return err
	}
	ui.RenderStatistics(stats)
	return nil
}

// promptOptional asks for a value that may be left empty.
func promptOptional(label string) (string, error) {
	prompt := promptui.Prompt{Label: label}
	value, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// promptWithDefault asks for a value, keeping the current one on empty input.
func promptWithDefault(label, current string) (string, error) {
	prompt := promptui.Prompt{
		Label:   fmt.Sprintf("%s (current: %s)", label, current),
		Default: current,
	}
	value, err := prompt.Run()
	if err != nil {
		return "", err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return current, nil
	}
	return value, nil
}

func selectPriority(current models.TaskPriority) (models.TaskPriority, error) {
	priorities := models.AllPriorities()
	cursor := 0
	for i, p := range priorities {
		if p == current {
			cursor = i
		}
	}
	prompt := promptui.Select{
		Label:     fmt.Sprintf("Priority (current: %s)", current),
		Items:     priorities,
		CursorPos: cursor,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return priorities[i], nil
}

func selectStatus(label string) (models.TaskStatus, error) {
	statuses := models.AllStatuses()
	prompt := promptui.Select{
		Label: label,
		Items: statuses,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return statuses[i], nil
}
