package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/taskline/taskline/models"
)

func TestMenuItems(t *testing.T) {
	items := menuItems(models.Statistics{Total: 3, Todo: 1, InProgress: 1, Done: 1})

	if len(items) != 9 {
		t.Fatalf("menu should have 9 entries, got %d", len(items))
	}

	if !strings.Contains(items[1].Label, "3 total") {
		t.Errorf("view-all label should show the total count, got %q", items[1].Label)
	}
	if !strings.Contains(items[5].Label, "2 open") {
		t.Errorf("mark-done label should count open tasks, got %q", items[5].Label)
	}

	exit := items[len(items)-1]
	if exit.Label != "Exit" {
		t.Fatalf("last entry should be Exit, got %q", exit.Label)
	}
	// The exit action never touches the store.
	if err := exit.Action(nil); !errors.Is(err, errExitMenu) {
		t.Errorf("exit action should signal menu exit, got %v", err)
	}
}
