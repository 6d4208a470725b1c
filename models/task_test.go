package models

import (
	"testing"
	"time"
)

func TestNewTask(t *testing.T) {
	due := time.Now().Add(24 * time.Hour)

	task, err := NewTask("Buy milk", "2 liters", "errands", PriorityHigh, &due)
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}

	if task.Title != "Buy milk" {
		t.Errorf("Title mismatch: got %q, want %q", task.Title, "Buy milk")
	}
	if task.Status != StatusTodo {
		t.Errorf("New task should start as todo, got %q", task.Status)
	}
	if task.ID == 0 {
		t.Error("New task should have a generated ID")
	}
	if task.CreatedAt.IsZero() || task.UpdatedAt.IsZero() {
		t.Error("New task should have timestamps set")
	}
	if !task.CreatedAt.Equal(task.UpdatedAt) {
		t.Error("CreatedAt and UpdatedAt should match at construction")
	}
	if task.CompletedAt != nil {
		t.Error("New task should not have a completion time")
	}
	if task.DueDate == nil || !task.DueDate.Equal(due) {
		t.Errorf("DueDate mismatch: got %v, want %v", task.DueDate, due)
	}
}

func TestNewTask_Defaults(t *testing.T) {
	task, err := NewTask("Minimal", "", "", "", nil)
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}

	if task.Category != DefaultCategory {
		t.Errorf("Category default mismatch: got %q, want %q", task.Category, DefaultCategory)
	}
	if task.Priority != PriorityMedium {
		t.Errorf("Priority default mismatch: got %q, want %q", task.Priority, PriorityMedium)
	}
}

func TestNewTask_EmptyTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t"} {
		if _, err := NewTask(title, "", "", "", nil); err == nil {
			t.Errorf("NewTask(%q) should fail", title)
		}
	}
}

func TestNextID_Unique(t *testing.T) {
	seen := make(map[int64]struct{})
	prev := int64(0)
	for i := 0; i < 10000; i++ {
		id := NextID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate ID issued: %d", id)
		}
		if id <= prev {
			t.Fatalf("IDs should be strictly increasing: %d after %d", id, prev)
		}
		seen[id] = struct{}{}
		prev = id
	}
}

func TestTask_MarkDone(t *testing.T) {
	task, err := NewTask("Finish report", "", "", "", nil)
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}

	task.MarkDone()

	if task.Status != StatusDone {
		t.Errorf("Status mismatch: got %q, want %q", task.Status, StatusDone)
	}
	if task.CompletedAt == nil {
		t.Fatal("MarkDone should set CompletedAt")
	}
	if !task.UpdatedAt.Equal(*task.CompletedAt) {
		t.Error("MarkDone should refresh UpdatedAt together with CompletedAt")
	}
}

func TestTask_MarkInProgressAndCancelled(t *testing.T) {
	task, err := NewTask("Spike", "", "", "", nil)
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}

	task.MarkInProgress()
	if task.Status != StatusInProgress {
		t.Errorf("Status mismatch: got %q, want %q", task.Status, StatusInProgress)
	}
	if task.CompletedAt != nil {
		t.Error("MarkInProgress should not set CompletedAt")
	}

	task.MarkCancelled()
	if task.Status != StatusCancelled {
		t.Errorf("Status mismatch: got %q, want %q", task.Status, StatusCancelled)
	}
	if task.CompletedAt != nil {
		t.Error("MarkCancelled should not set CompletedAt")
	}
}

func TestTask_IsOverdue(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name    string
		due     *time.Time
		status  TaskStatus
		overdue bool
	}{
		{"no due date", nil, StatusTodo, false},
		{"future due date", &future, StatusTodo, false},
		{"past due date, todo", &past, StatusTodo, true},
		{"past due date, in progress", &past, StatusInProgress, true},
		{"past due date, cancelled", &past, StatusCancelled, true},
		{"past due date, done", &past, StatusDone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{Status: tt.status, DueDate: tt.due}
			if got := task.IsOverdue(); got != tt.overdue {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.overdue)
			}
		})
	}
}

func TestTask_ApplyUpdate(t *testing.T) {
	due := time.Now().Add(time.Hour)
	task, err := NewTask("Original", "desc", "work", PriorityLow, &due)
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}
	before := task.UpdatedAt

	newTitle := "Renamed"
	newPriority := PriorityUrgent
	task.ApplyUpdate(TaskUpdate{Title: &newTitle, Priority: &newPriority})

	if task.Title != "Renamed" {
		t.Errorf("Title not applied: got %q", task.Title)
	}
	if task.Priority != PriorityUrgent {
		t.Errorf("Priority not applied: got %q", task.Priority)
	}
	// Unset fields stay untouched.
	if task.Description != "desc" || task.Category != "work" {
		t.Error("unset fields should be left unchanged")
	}
	if task.DueDate == nil {
		t.Error("unset due date should be left unchanged")
	}
	if task.UpdatedAt.Before(before) {
		t.Error("ApplyUpdate should refresh UpdatedAt")
	}
}

func TestTask_ApplyUpdate_PermissiveStatus(t *testing.T) {
	task, err := NewTask("Reopen me", "", "", "", nil)
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}
	task.MarkDone()

	// The bulk-edit path can move a task out of done and never touches
	// CompletedAt.
	reopened := StatusTodo
	task.ApplyUpdate(TaskUpdate{Status: &reopened})

	if task.Status != StatusTodo {
		t.Errorf("Status not applied: got %q", task.Status)
	}
	if task.CompletedAt == nil {
		t.Error("ApplyUpdate should not clear CompletedAt")
	}
}

func TestTask_ApplyUpdate_ClearDueDate(t *testing.T) {
	due := time.Now().Add(time.Hour)
	task, err := NewTask("Due task", "", "", "", &due)
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}

	other := due.Add(time.Hour)
	task.ApplyUpdate(TaskUpdate{DueDate: &other, ClearDueDate: true})

	if task.DueDate != nil {
		t.Error("ClearDueDate should win over DueDate and remove the due date")
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    TaskStatus
		wantErr bool
	}{
		{"todo", StatusTodo, false},
		{"In-Progress", StatusInProgress, false},
		{" done ", StatusDone, false},
		{"cancelled", StatusCancelled, false},
		{"pending", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStatus(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    TaskPriority
		wantErr bool
	}{
		{"low", PriorityLow, false},
		{"MEDIUM", PriorityMedium, false},
		{"high", PriorityHigh, false},
		{"urgent", PriorityUrgent, false},
		{"critical", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePriority(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePriority(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePriority(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
