package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskline/taskline/models"
)

const displayTimeLayout = "2006-01-02 15:04"

func statusStyle(s models.TaskStatus) lipgloss.Style {
	switch s {
	case models.StatusDone:
		return StyleSuccess
	case models.StatusInProgress:
		return StyleWarning
	case models.StatusCancelled:
		return StyleSubtle
	default:
		return StylePrimary
	}
}

func priorityStyle(p models.TaskPriority) lipgloss.Style {
	switch p {
	case models.PriorityUrgent:
		return StyleError
	case models.PriorityHigh:
		return StyleWarning
	case models.PriorityLow:
		return StyleSubtle
	default:
		return StyleTitle
	}
}

// RenderTaskList prints a one-line summary per task.
func RenderTaskList(tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Println(StyleSubtle.Render("No tasks found."))
		return
	}

	fmt.Println(StyleHeader.Render(fmt.Sprintf("%d task(s)", len(tasks))))
	for _, t := range tasks {
		line := fmt.Sprintf("%d  %s  [%s]  %s  %s",
			t.ID,
			statusStyle(t.Status).Render(string(t.Status)),
			t.Category,
			priorityStyle(t.Priority).Render(string(t.Priority)),
			StyleTitle.Render(t.Title),
		)
		if t.DueDate != nil {
			due := "due " + t.DueDate.Format(displayTimeLayout)
			if t.IsOverdue() {
				due = StyleError.Render(due + " (overdue)")
			} else {
				due = StyleSubtle.Render(due)
			}
			line += "  " + due
		}
		fmt.Println(line)
	}
}

// RenderTaskDetail prints every field of a single task.
func RenderTaskDetail(t models.Task) {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(StyleSubtle.Render(label+":") + " " + value + "\n")
	}

	row("ID", fmt.Sprintf("%d", t.ID))
	row("Title", StyleTitle.Render(t.Title))
	row("Description", t.Description)
	row("Category", t.Category)
	row("Priority", priorityStyle(t.Priority).Render(string(t.Priority)))

	status := statusStyle(t.Status).Render(string(t.Status))
	if t.IsOverdue() {
		status += " " + StyleError.Render("(overdue)")
	}
	row("Status", status)

	if t.DueDate != nil {
		row("Due date", t.DueDate.Format(displayTimeLayout))
	} else {
		row("Due date", StyleSubtle.Render("none"))
	}
	row("Created", t.CreatedAt.Format(displayTimeLayout))
	row("Updated", t.UpdatedAt.Format(displayTimeLayout))
	if t.CompletedAt != nil {
		row("Completed", t.CompletedAt.Format(displayTimeLayout))
	}

	fmt.Print(b.String())
}

// RenderStatistics prints the aggregate counters.
func RenderStatistics(st models.Statistics) {
	fmt.Println(StyleHeader.Render("Task statistics"))
	fmt.Printf("%s %d\n", StyleSubtle.Render("Total:"), st.Total)
	fmt.Printf("%s %d\n", StyleSubtle.Render("Todo:"), st.Todo)
	fmt.Printf("%s %d\n", StyleSubtle.Render("In progress:"), st.InProgress)
	fmt.Printf("%s %d\n", StyleSubtle.Render("Done:"), st.Done)
	fmt.Printf("%s %d\n", StyleSubtle.Render("Cancelled:"), st.Cancelled)
	fmt.Printf("%s %s\n", StyleSubtle.Render("Overdue:"), StyleError.Render(fmt.Sprintf("%d", st.Overdue)))
	fmt.Printf("%s %.1f%%\n", StyleSubtle.Render("Completion rate:"), st.CompletionRate)
}
