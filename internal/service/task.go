package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xolan/timora/internal/model"
	"github.com/xolan/timora/internal/store"
	"github.com/xolan/timora/internal/timeutil"
)

// Task-specific errors
var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmployeeNotFound = errors.New("employee not found")
)

// TaskService provides operations for managing tasks
type TaskService struct {
	store *store.Store
	now   func() time.Time
	newID func() string
}

// NewTaskService creates a new TaskService. A nil newID uses random UUIDs.
func NewTaskService(st *store.Store, now func() time.Time, newID func() string) *TaskService {
	if newID == nil {
		newID = uuid.NewString
	}
	return &TaskService{store: st, now: now, newID: newID}
}

// List returns all tasks in insertion order
func (s *TaskService) List() []model.Task {
	return s.store.Tasks()
}

// Get returns the task with the given id
func (s *TaskService) Get(id string) (model.Task, bool) {
	return s.store.Task(id)
}

// Create adds a task. An empty id is replaced by a generated one.
func (s *TaskService) Create(t model.Task) (model.Task, error) {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return model.Task{}, ErrEmptyTitle
	}
	if t.ID == "" {
		t.ID = s.newID()
	}
	created, err := s.store.AddTask(t)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

// Update merges patch into the task. Returns false if the id is unknown.
func (s *TaskService) Update(id string, patch model.TaskPatch) (bool, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return false, ErrEmptyTitle
	}
	return s.store.UpdateTask(id, patch)
}

// Delete removes the task. Returns false if the id is unknown.
func (s *TaskService) Delete(id string) bool {
	return s.store.DeleteTask(id)
}

// Assign sets the task's assignee. The employee must exist.
func (s *TaskService) Assign(taskID, employeeID string) (bool, error) {
	if !s.employeeExists(employeeID) {
		return false, fmt.Errorf("%w: %s", ErrEmployeeNotFound, employeeID)
	}
	return s.store.UpdateTask(taskID, model.TaskPatch{AssignedTo: model.Ptr(employeeID)})
}

// Unassign clears the task's assignee
func (s *TaskService) Unassign(taskID string) (bool, error) {
	return s.store.UpdateTask(taskID, model.TaskPatch{AssignedTo: model.Ptr("")})
}

// ToggleComplete flips a task between completed and todo and returns the
// updated task
func (s *TaskService) ToggleComplete(id string) (model.Task, error) {
	task, ok := s.store.Task(id)
	if !ok {
		return model.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	next := model.StatusCompleted
	if task.Status == model.StatusCompleted {
		next = model.StatusTodo
	}
	if _, err := s.store.UpdateTask(id, model.TaskPatch{Status: &next}); err != nil {
		return model.Task{}, err
	}

	task, _ = s.store.Task(id)
	return task, nil
}

// Today returns the tasks due today, in-progress first, then todo, then
// completed, and by priority within each status
func (s *TaskService) Today() []model.Task {
	return DueOn(s.store.Tasks(), s.now())
}

// DueOn returns the tasks due on day's calendar date, in display order
func DueOn(tasks []model.Task, day time.Time) []model.Task {
	var due []model.Task
	for _, t := range tasks {
		if t.DueDate != nil && timeutil.SameDay(day, *t.DueDate) {
			due = append(due, t)
		}
	}
	SortForDisplay(due)
	return due
}

// SortForDisplay orders tasks by status rank then priority rank, both
// descending. Equal tasks keep their relative order.
func SortForDisplay(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if si, sj := tasks[i].Status.Rank(), tasks[j].Status.Rank(); si != sj {
			return si > sj
		}
		return tasks[i].Priority.Rank() > tasks[j].Priority.Rank()
	})
}

// Progress returns how many of the given tasks are completed
func Progress(tasks []model.Task) (completed, total int) {
	for _, t := range tasks {
		if t.Status == model.StatusCompleted {
			completed++
		}
	}
	return completed, len(tasks)
}

func (s *TaskService) employeeExists(id string) bool {
	if id == "" {
		return false
	}
	for _, e := range s.store.Employees() {
		if e.ID == id {
			return true
		}
	}
	return false
}
