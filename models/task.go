package models

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
)

// TaskStatus represents the possible statuses of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusDone       TaskStatus = "done"
	StatusCancelled  TaskStatus = "cancelled"
)

// TaskPriority represents the priority levels of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// DefaultCategory is assigned to tasks created without an explicit category.
const DefaultCategory = "Default"

// AllStatuses returns the status labels in display order.
func AllStatuses() []TaskStatus {
	return []TaskStatus{StatusTodo, StatusInProgress, StatusDone, StatusCancelled}
}

// AllPriorities returns the priority labels in ascending order of urgency.
func AllPriorities() []TaskPriority {
	return []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// ParseStatus converts a label string into a TaskStatus.
func ParseStatus(s string) (TaskStatus, error) {
	switch TaskStatus(strings.ToLower(strings.TrimSpace(s))) {
	case StatusTodo:
		return StatusTodo, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusDone:
		return StatusDone, nil
	case StatusCancelled:
		return StatusCancelled, nil
	}
	return "", fmt.Errorf("unknown status %q (valid: todo, in-progress, done, cancelled)", s)
}

// ParsePriority converts a label string into a TaskPriority.
func ParsePriority(s string) (TaskPriority, error) {
	switch TaskPriority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityLow:
		return PriorityLow, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityHigh:
		return PriorityHigh, nil
	case PriorityUrgent:
		return PriorityUrgent, nil
	}
	return "", fmt.Errorf("unknown priority %q (valid: low, medium, high, urgent)", s)
}

// Task represents a unit of trackable work.
//
// DueDate and CompletedAt are pointers so that "not set" survives the
// serialization round trip as null rather than a zero time.
type Task struct {
	ID          int64        `validate:"required"`
	Title       string       `validate:"required,min=1,max=255"`
	Description string
	Category    string       `validate:"required"`
	Priority    TaskPriority `validate:"required,oneof=low medium high urgent"`
	Status      TaskStatus   `validate:"required,oneof=todo in-progress done cancelled"`
	CreatedAt   time.Time    `validate:"required"`
	UpdatedAt   time.Time    `validate:"required"`
	DueDate     *time.Time
	CompletedAt *time.Time
}

// lastID holds the most recently issued task identifier.
var lastID atomic.Int64

// NextID issues a process-unique task identifier. Identifiers are
// microsecond-epoch integers; when the clock has not advanced past the last
// issued value the counter steps forward instead, so two rapid calls can
// never collide.
func NextID() int64 {
	for {
		last := lastID.Load()
		id := time.Now().UnixMicro()
		if id <= last {
			id = last + 1
		}
		if lastID.CompareAndSwap(last, id) {
			return id
		}
	}
}

// NewTask constructs a task in the todo state. Empty category and priority
// fall back to their defaults; an empty title is a validation error.
func NewTask(title, description, category string, priority TaskPriority, dueDate *time.Time) (Task, error) {
	if strings.TrimSpace(title) == "" {
		return Task{}, fmt.Errorf("task title must not be empty")
	}
	if category == "" {
		category = DefaultCategory
	}
	if priority == "" {
		priority = PriorityMedium
	}

	now := time.Now()
	t := Task{
		ID:          NextID(),
		Title:       title,
		Description: description,
		Category:    category,
		Priority:    priority,
		Status:      StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
		DueDate:     dueDate,
	}
	if err := ValidateStruct(t); err != nil {
		return Task{}, err
	}
	return t, nil
}

// MarkDone sets the task to done and records the completion time. Each call
// refreshes both timestamps, so callers should guard against re-marking an
// already completed task.
func (t *Task) MarkDone() {
	now := time.Now()
	t.Status = StatusDone
	t.CompletedAt = &now
	t.UpdatedAt = now
}

// MarkInProgress sets the task to in-progress.
func (t *Task) MarkInProgress() {
	t.Status = StatusInProgress
	t.UpdatedAt = time.Now()
}

// MarkCancelled sets the task to cancelled.
func (t *Task) MarkCancelled() {
	t.Status = StatusCancelled
	t.UpdatedAt = time.Now()
}

// TaskUpdate is a sparse set of field changes. A nil field means "leave
// unchanged". ClearDueDate removes the due date and wins over DueDate.
type TaskUpdate struct {
	Title        *string
	Description  *string
	Category     *string
	Priority     *TaskPriority
	Status       *TaskStatus
	DueDate      *time.Time
	ClearDueDate bool
}

// IsZero reports whether the update carries no changes.
func (u TaskUpdate) IsZero() bool {
	return u.Title == nil && u.Description == nil && u.Category == nil &&
		u.Priority == nil && u.Status == nil && u.DueDate == nil && !u.ClearDueDate
}

// ApplyUpdate applies the set fields of u and refreshes UpdatedAt.
//
// This is the bulk-edit path: it accepts any valid status value without
// enforcing the transition graph and never touches CompletedAt. Only
// MarkDone couples the status change with a completion timestamp.
func (t *Task) ApplyUpdate(u TaskUpdate) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Category != nil {
		t.Category = *u.Category
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.ClearDueDate {
		t.DueDate = nil
	} else if u.DueDate != nil {
		t.DueDate = u.DueDate
	}
	t.UpdatedAt = time.Now()
}

// IsOverdue reports whether the due date has passed and the task is not done.
// Tasks without a due date are never overdue.
func (t *Task) IsOverdue() bool {
	return t.DueDate != nil && t.Status != StatusDone && t.DueDate.Before(time.Now())
}

// TaskFilter selects tasks by exact match on status and/or category.
// Nil fields match everything.
type TaskFilter struct {
	Status   *TaskStatus
	Category *string
}

// Matches reports whether t satisfies every set filter field.
func (f TaskFilter) Matches(t Task) bool {
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.Category != nil && t.Category != *f.Category {
		return false
	}
	return true
}

// global validator instance
var validate = validator.New()

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var msgs []string
	for _, e := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
