package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func sameOptionalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func TestTaskRecordRoundTrip(t *testing.T) {
	due := time.Now().Add(48 * time.Hour)
	task, err := NewTask("Round trip", "all fields set", "work", PriorityUrgent, &due)
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}
	task.MarkDone()

	restored, err := TaskFromRecord(task.Record())
	if err != nil {
		t.Fatalf("TaskFromRecord failed: %v", err)
	}

	if restored.ID != task.ID {
		t.Errorf("ID mismatch: got %d, want %d", restored.ID, task.ID)
	}
	if restored.Title != task.Title || restored.Description != task.Description || restored.Category != task.Category {
		t.Error("text fields should survive the round trip")
	}
	if restored.Priority != task.Priority || restored.Status != task.Status {
		t.Error("enum fields should survive the round trip")
	}
	if !restored.CreatedAt.Equal(task.CreatedAt) || !restored.UpdatedAt.Equal(task.UpdatedAt) {
		t.Error("timestamps should survive the round trip")
	}
	if !sameOptionalTime(restored.DueDate, task.DueDate) {
		t.Errorf("DueDate mismatch: got %v, want %v", restored.DueDate, task.DueDate)
	}
	if !sameOptionalTime(restored.CompletedAt, task.CompletedAt) {
		t.Errorf("CompletedAt mismatch: got %v, want %v", restored.CompletedAt, task.CompletedAt)
	}
}

func TestTaskRecord_WireShape(t *testing.T) {
	task, err := NewTask("Wire check", "", "", "", nil)
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}

	data, err := json.Marshal(task.Record())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	s := string(data)

	for _, key := range []string{"task_id", "title", "description", "category", "priority", "status", "created_at", "updated_at", "due_date", "completed_at"} {
		if !strings.Contains(s, `"`+key+`"`) {
			t.Errorf("serialized record missing key %q", key)
		}
	}
	// Optional timestamps are encoded as null, not as a zero time.
	if !strings.Contains(s, `"due_date":null`) {
		t.Error("unset due_date should serialize as null")
	}
	if !strings.Contains(s, `"status":"todo"`) {
		t.Error("status should serialize as its label text")
	}
}

func TestTaskFromRecord_Defaults(t *testing.T) {
	rec := TaskRecord{
		TaskID:    42,
		Title:     "Sparse record",
		CreatedAt: time.Now().Format(time.RFC3339Nano),
		UpdatedAt: time.Now().Format(time.RFC3339Nano),
	}

	task, err := TaskFromRecord(rec)
	if err != nil {
		t.Fatalf("TaskFromRecord failed: %v", err)
	}

	if task.Category != DefaultCategory {
		t.Errorf("Category default mismatch: got %q", task.Category)
	}
	if task.Priority != PriorityMedium {
		t.Errorf("Priority default mismatch: got %q", task.Priority)
	}
	if task.Status != StatusTodo {
		t.Errorf("Status default mismatch: got %q", task.Status)
	}
}

func TestTaskFromRecord_Invalid(t *testing.T) {
	now := time.Now().Format(time.RFC3339Nano)

	tests := []struct {
		name string
		rec  TaskRecord
	}{
		{"unknown status", TaskRecord{TaskID: 1, Title: "x", Status: "archived", CreatedAt: now, UpdatedAt: now}},
		{"unknown priority", TaskRecord{TaskID: 1, Title: "x", Priority: "asap", CreatedAt: now, UpdatedAt: now}},
		{"bad created_at", TaskRecord{TaskID: 1, Title: "x", CreatedAt: "yesterday", UpdatedAt: now}},
		{"bad due_date", TaskRecord{TaskID: 1, Title: "x", CreatedAt: now, UpdatedAt: now, DueDate: strPtr("soon")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := TaskFromRecord(tt.rec); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func strPtr(s string) *string { return &s }
