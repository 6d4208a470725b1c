package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/taskline/taskline/models"
	"github.com/taskline/taskline/store"
)

// dueDateLayouts are the accepted textual due-date formats, tried in order.
var dueDateLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseDueDate parses a due date in one of the accepted layouts. An empty
// string means "no due date" and returns nil without error.
func parseDueDate(input string) (*time.Time, error) {
	if input == "" {
		return nil, nil
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.ParseInLocation(layout, input, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid due date %q (expected YYYY-MM-DD or YYYY-MM-DD HH:MM)", input)
}

// parseTaskID parses a task identifier argument.
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task ID %q: must be an integer", arg)
	}
	return id, nil
}

// resolveTask parses the id argument and fetches the matching task.
func resolveTask(taskStore store.TaskStore, arg string) (models.Task, error) {
	id, err := parseTaskID(arg)
	if err != nil {
		return models.Task{}, err
	}
	return taskStore.GetTask(id)
}
