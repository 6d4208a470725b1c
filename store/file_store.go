package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
	yaml "gopkg.in/yaml.v3"

	"github.com/taskline/taskline/models"
)

const (
	defaultDataFile   = "tasks.json"
	dataFileKey       = "dataFile"
	dataFileFormatKey = "dataFileFormat"
	formatJSON        = "json"
	formatYAML        = "yaml"
	defaultDataFormat = formatJSON
)

// FileTaskStore implements the TaskStore interface on top of a single flat
// file holding a sequence of task records. The whole collection is loaded
// once at Initialize and rewritten in full after every mutation; an advisory
// file lock is held for the store's lifetime so a second instance fails fast
// instead of silently racing on the file.
type FileTaskStore struct {
	filePath string
	format   string // "json" or "yaml"
	flk      *flock.Flock
	tasks    []models.Task
}

// NewFileTaskStore creates a new instance of FileTaskStore.
// It does not initialize the store; Initialize must be called separately.
func NewFileTaskStore() *FileTaskStore {
	return &FileTaskStore{}
}

// Initialize configures the FileTaskStore.
// It expects a 'dataFile' key in the config map specifying the path to the
// data file (default 'tasks.json') and an optional 'dataFileFormat' of json
// or yaml. Existing tasks are loaded once; a file that cannot be read or
// parsed is reported on stderr and the store starts empty, so prior data on
// disk stays untouched until the next save.
func (s *FileTaskStore) Initialize(config map[string]string) error {
	if val, ok := config[dataFileKey]; ok && val != "" {
		s.filePath = val
	} else {
		s.filePath = defaultDataFile
	}

	if val, ok := config[dataFileFormatKey]; ok && val != "" {
		switch strings.ToLower(val) {
		case formatJSON, formatYAML:
			s.format = strings.ToLower(val)
		default:
			return fmt.Errorf("unsupported dataFileFormat: %s. Supported formats are json, yaml", val)
		}
	} else {
		s.format = defaultDataFormat
	}

	if s.filePath == defaultDataFile && s.format != formatJSON {
		ext := filepath.Ext(s.filePath)
		s.filePath = strings.TrimSuffix(s.filePath, ext) + "." + s.format
	}

	dir := filepath.Dir(s.filePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	s.flk = flock.New(s.filePath + ".lock")
	locked, err := s.flk.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock for %s: %w", s.filePath, err)
	}
	if !locked {
		return fmt.Errorf("data file %s is locked by another instance", s.filePath)
	}

	if err := s.loadFromFile(); err != nil {
		// A broken backing file is not fatal: report it and start empty.
		// The file itself is left alone until the first save.
		fmt.Fprintf(os.Stderr, "Warning: could not load tasks from %s: %v. Starting with an empty task list.\n", s.filePath, err)
		s.tasks = nil
	}
	return nil
}

// loadFromFile reads the whole backing file into memory. A missing file is
// the normal first-run state, not an error.
func (s *FileTaskStore) loadFromFile() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.tasks = nil
			return nil
		}
		return &StorageError{Op: "read", Path: s.filePath, Err: err}
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		s.tasks = nil
		return nil
	}

	var records []models.TaskRecord
	switch s.format {
	case formatJSON:
		if err := json.Unmarshal(data, &records); err != nil {
			return &StorageError{Op: "read", Path: s.filePath, Err: err}
		}
	case formatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return &StorageError{Op: "read", Path: s.filePath, Err: err}
		}
	default:
		return fmt.Errorf("unsupported data format for loading: %s", s.format)
	}

	tasks := make([]models.Task, 0, len(records))
	for _, rec := range records {
		task, err := models.TaskFromRecord(rec)
		if err != nil {
			return &StorageError{Op: "read", Path: s.filePath, Err: err}
		}
		tasks = append(tasks, task)
	}
	s.tasks = tasks
	return nil
}

// saveToFile rewrites the whole backing file from the in-memory collection.
// The write goes through a temporary file and a rename so readers never see
// a partial file.
func (s *FileTaskStore) saveToFile() error {
	records := make([]models.TaskRecord, 0, len(s.tasks))
	for _, task := range s.tasks {
		records = append(records, task.Record())
	}

	var marshaled []byte
	var err error
	switch s.format {
	case formatJSON:
		marshaled, err = json.MarshalIndent(records, "", "  ")
	case formatYAML:
		marshaled, err = yaml.Marshal(records)
	default:
		return fmt.Errorf("unsupported data format for saving: %s", s.format)
	}
	if err != nil {
		return &StorageError{Op: "write", Path: s.filePath, Err: err}
	}

	tempFilePath := s.filePath + ".tmp"
	defer func() { _ = os.Remove(tempFilePath) }()

	if err := os.WriteFile(tempFilePath, marshaled, 0o644); err != nil {
		return &StorageError{Op: "write", Path: s.filePath, Err: err}
	}
	if err := os.Rename(tempFilePath, s.filePath); err != nil {
		return &StorageError{Op: "write", Path: s.filePath, Err: err}
	}
	return nil
}

// indexOf returns the position of the task with the given id, or -1.
func (s *FileTaskStore) indexOf(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// CreateTask adds a new task to the store and persists the collection.
// A zero identifier is replaced by a generated one; timestamps are filled in
// when unset so tasks rebuilt from records keep their history.
func (s *FileTaskStore) CreateTask(task models.Task) (models.Task, error) {
	if task.ID == 0 {
		task.ID = models.NextID()
	} else if s.indexOf(task.ID) >= 0 {
		return models.Task{}, fmt.Errorf("task with ID %d already exists", task.ID)
	}

	now := time.Now()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = now
	}
	if task.Category == "" {
		task.Category = models.DefaultCategory
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Status == "" {
		task.Status = models.StatusTodo
	}

	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, fmt.Errorf("validation failed for new task: %w", err)
	}

	s.tasks = append(s.tasks, task)

	// No rollback on save failure: the mutation already happened in memory
	// and stays valid for the rest of the session.
	if err := s.saveToFile(); err != nil {
		return task, err
	}
	return task, nil
}

// GetTask retrieves a task by its identifier via a linear scan.
func (s *FileTaskStore) GetTask(id int64) (models.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return s.tasks[i], nil
}

// UpdateTask applies a sparse update to an existing task and persists.
// Validation runs on a copy, so an invalid update leaves the stored task
// untouched.
func (s *FileTaskStore) UpdateTask(id int64, update models.TaskUpdate) (models.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}

	task := s.tasks[i]
	task.ApplyUpdate(update)
	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, fmt.Errorf("validation failed for updated task: %w", err)
	}

	s.tasks[i] = task
	if err := s.saveToFile(); err != nil {
		return task, err
	}
	return task, nil
}

// DeleteTask removes a task by its identifier. Deletion is permanent and
// immediate; a missing id returns ErrNotFound without touching the file.
func (s *FileTaskStore) DeleteTask(id int64) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return s.saveToFile()
}

// MarkTaskDone marks a task as completed and persists the collection.
func (s *FileTaskStore) MarkTaskDone(id int64) (models.Task, error) {
	return s.transition(id, (*models.Task).MarkDone)
}

// MarkTaskInProgress marks a task as in progress and persists the collection.
func (s *FileTaskStore) MarkTaskInProgress(id int64) (models.Task, error) {
	return s.transition(id, (*models.Task).MarkInProgress)
}

// MarkTaskCancelled marks a task as cancelled and persists the collection.
func (s *FileTaskStore) MarkTaskCancelled(id int64) (models.Task, error) {
	return s.transition(id, (*models.Task).MarkCancelled)
}

func (s *FileTaskStore) transition(id int64, apply func(*models.Task)) (models.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	apply(&s.tasks[i])
	task := s.tasks[i]
	if err := s.saveToFile(); err != nil {
		return task, err
	}
	return task, nil
}

// ListTasks returns a snapshot of the matching tasks sorted by creation time
// descending. Ties fall back to id descending so the order is deterministic.
func (s *FileTaskStore) ListTasks(filter models.TaskFilter) ([]models.Task, error) {
	result := make([]models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if filter.Matches(task) {
			result = append(result, task)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

// Categories returns the distinct category labels, sorted.
func (s *FileTaskStore) Categories() ([]string, error) {
	seen := make(map[string]struct{}, len(s.tasks))
	for _, task := range s.tasks {
		seen[task.Category] = struct{}{}
	}
	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories, nil
}

// Statistics tallies the collection at call time.
func (s *FileTaskStore) Statistics() (models.Statistics, error) {
	return models.ComputeStatistics(s.tasks), nil
}

// Backup copies the backing file to the given destination path.
func (s *FileTaskStore) Backup(destinationPath string) error {
	input, err := os.ReadFile(s.filePath)
	if err != nil {
		return &StorageError{Op: "read", Path: s.filePath, Err: err}
	}
	if err := os.WriteFile(destinationPath, input, 0o644); err != nil {
		return &StorageError{Op: "write", Path: destinationPath, Err: err}
	}
	return nil
}

// Restore replaces the backing file with the contents of sourcePath and
// reloads the collection. Unlike Initialize, a source that fails to parse is
// an error here: the caller explicitly asked for this data. When the reload
// fails the file has already been replaced, so the pre-restore collection is
// dropped rather than kept where a later save would clobber the restored file.
func (s *FileTaskStore) Restore(sourcePath string) error {
	sourceData, err := os.ReadFile(sourcePath)
	if err != nil {
		return &StorageError{Op: "read", Path: sourcePath, Err: err}
	}

	tempFilePath := s.filePath + ".tmp_restore"
	defer func() { _ = os.Remove(tempFilePath) }()

	if err := os.WriteFile(tempFilePath, sourceData, 0o644); err != nil {
		return &StorageError{Op: "write", Path: s.filePath, Err: err}
	}
	if err := os.Rename(tempFilePath, s.filePath); err != nil {
		return &StorageError{Op: "write", Path: s.filePath, Err: err}
	}

	if err := s.loadFromFile(); err != nil {
		s.tasks = nil
		return fmt.Errorf("restored file %s could not be loaded: %w", s.filePath, err)
	}
	return nil
}

// Close releases the advisory file lock held since Initialize.
// flock.Unlock is idempotent, so Close is safe to call more than once.
func (s *FileTaskStore) Close() error {
	if s.flk != nil {
		return s.flk.Unlock()
	}
	return nil
}
