package store

import "github.com/taskline/taskline/models"

// TaskStore defines the interface for task persistence.
// It outlines the contract for managing tasks, including CRUD operations,
// filtering, aggregate statistics, backup, restore, and resource cleanup.
type TaskStore interface {
	// Initialize configures the store with necessary parameters, such as
	// file path and data format. It loads existing tasks once; a missing
	// backing file is the normal first-run state and a malformed one is
	// reported and replaced by an empty collection rather than returned
	// as an error. It must be called before any other store operation.
	Initialize(config map[string]string) error

	// CreateTask adds a new task to the store and persists the collection.
	// It returns the stored task, with an identifier generated when the
	// given one is zero.
	CreateTask(task models.Task) (models.Task, error)

	// GetTask retrieves a task by its identifier. It returns ErrNotFound
	// (wrapped) when no task matches.
	GetTask(id int64) (models.Task, error)

	// UpdateTask applies a sparse set of field changes to the task with the
	// given identifier and persists the collection. Unset fields are left
	// unchanged. It returns the updated task.
	UpdateTask(id int64, update models.TaskUpdate) (models.Task, error)

	// DeleteTask removes a task by its identifier and persists the
	// collection. When no task matches it returns ErrNotFound without
	// mutating or persisting anything.
	DeleteTask(id int64) error

	// MarkTaskDone sets the task's status to done, records the completion
	// time, and persists the collection.
	MarkTaskDone(id int64) (models.Task, error)

	// MarkTaskInProgress sets the task's status to in-progress and persists
	// the collection.
	MarkTaskInProgress(id int64) (models.Task, error)

	// MarkTaskCancelled sets the task's status to cancelled and persists
	// the collection.
	MarkTaskCancelled(id int64) (models.Task, error)

	// ListTasks returns a snapshot of the tasks matching every set filter
	// field, sorted by creation time descending. A zero filter returns all
	// tasks.
	ListTasks(filter models.TaskFilter) ([]models.Task, error)

	// Categories returns the distinct category labels across all tasks,
	// sorted lexicographically.
	Categories() ([]string, error)

	// Statistics tallies the collection: total, per-status counts, overdue
	// count evaluated at call time, and the completion rate.
	Statistics() (models.Statistics, error)

	// Backup copies the backing file to the given destination path.
	Backup(destinationPath string) error

	// Restore replaces the backing file with the contents of the given
	// source path and reloads the collection. This operation is
	// destructive to current data.
	Restore(sourcePath string) error

	// Close releases any resources held by the store, such as the file
	// lock. It should be called when the store is no longer needed.
	Close() error
}
