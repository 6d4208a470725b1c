package models

import (
	"fmt"
	"time"
)

// recordTimeLayout is the timestamp encoding used in the backing file.
// RFC 3339 with nanoseconds keeps the round trip lossless.
const recordTimeLayout = time.RFC3339Nano

// TaskRecord is the flat wire representation of a Task in the backing file.
// Timestamps are ISO-8601 strings (null when unset) and enums are encoded as
// their label text, so the format survives reordering of the enum constants.
type TaskRecord struct {
	TaskID      int64   `json:"task_id" yaml:"task_id"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	Category    string  `json:"category" yaml:"category"`
	Priority    string  `json:"priority" yaml:"priority"`
	Status      string  `json:"status" yaml:"status"`
	CreatedAt   string  `json:"created_at" yaml:"created_at"`
	UpdatedAt   string  `json:"updated_at" yaml:"updated_at"`
	DueDate     *string `json:"due_date" yaml:"due_date"`
	CompletedAt *string `json:"completed_at" yaml:"completed_at"`
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(recordTimeLayout)
	return &s
}

func parseOptionalTime(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(recordTimeLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Record converts the task to its wire representation.
func (t Task) Record() TaskRecord {
	return TaskRecord{
		TaskID:      t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt.Format(recordTimeLayout),
		UpdatedAt:   t.UpdatedAt.Format(recordTimeLayout),
		DueDate:     formatOptionalTime(t.DueDate),
		CompletedAt: formatOptionalTime(t.CompletedAt),
	}
}

// TaskFromRecord rebuilds a task from its wire representation. Missing
// category, priority and status fall back to their defaults, matching the
// defaults applied at construction; unknown enum labels and malformed
// timestamps are errors.
func TaskFromRecord(rec TaskRecord) (Task, error) {
	t := Task{
		ID:          rec.TaskID,
		Title:       rec.Title,
		Description: rec.Description,
		Category:    rec.Category,
	}
	if t.Category == "" {
		t.Category = DefaultCategory
	}

	if rec.Priority == "" {
		t.Priority = PriorityMedium
	} else {
		p, err := ParsePriority(rec.Priority)
		if err != nil {
			return Task{}, fmt.Errorf("task %d: %w", rec.TaskID, err)
		}
		t.Priority = p
	}

	if rec.Status == "" {
		t.Status = StatusTodo
	} else {
		st, err := ParseStatus(rec.Status)
		if err != nil {
			return Task{}, fmt.Errorf("task %d: %w", rec.TaskID, err)
		}
		t.Status = st
	}

	createdAt, err := time.Parse(recordTimeLayout, rec.CreatedAt)
	if err != nil {
		return Task{}, fmt.Errorf("task %d: invalid created_at: %w", rec.TaskID, err)
	}
	t.CreatedAt = createdAt

	updatedAt, err := time.Parse(recordTimeLayout, rec.UpdatedAt)
	if err != nil {
		return Task{}, fmt.Errorf("task %d: invalid updated_at: %w", rec.TaskID, err)
	}
	t.UpdatedAt = updatedAt

	if t.DueDate, err = parseOptionalTime(rec.DueDate); err != nil {
		return Task{}, fmt.Errorf("task %d: invalid due_date: %w", rec.TaskID, err)
	}
	if t.CompletedAt, err = parseOptionalTime(rec.CompletedAt); err != nil {
		return Task{}, fmt.Errorf("task %d: invalid completed_at: %w", rec.TaskID, err)
	}

	return t, nil
}
