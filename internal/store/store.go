// Package store holds the in-memory collections of tasks, projects,
// employees and time entries. A single Store is created at startup and
// passed to every component that reads or mutates domain state.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/xolan/timora/internal/model"
)

// Store errors
var (
	ErrEmptyID     = errors.New("id cannot be empty")
	ErrDuplicateID = errors.New("id already exists")
)

// Snapshot is a consistent copy of all four collections
type Snapshot struct {
	Tasks       []model.Task
	Projects    []model.Project
	Employees   []model.Employee
	TimeEntries []model.TimeEntry
	// Version is the store version the copies were taken at
	Version uint64
}

// Store is the process-wide entity store. All methods are safe for
// concurrent use; every mutation is applied under a single lock.
type Store struct {
	mu        sync.RWMutex
	now       func() time.Time
	version   uint64
	tasks     []model.Task
	projects  []model.Project
	employees []model.Employee
	entries   []model.TimeEntry
}

// New creates an empty Store using the wall clock for timestamps
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock creates an empty Store with a custom clock (useful for testing)
func NewWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}

// Version returns a counter that changes on every successful mutation
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Snapshot returns copies of every collection read under one lock
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Tasks:       cloneTasks(s.tasks),
		Projects:    append([]model.Project{}, s.projects...),
		Employees:   append([]model.Employee{}, s.employees...),
		TimeEntries: cloneEntries(s.entries),
		Version:     s.version,
	}
}

// Tasks returns a copy of all tasks in insertion order
func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTasks(s.tasks)
}

// Task returns the task with the given id
func (s *Store) Task(id string) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.taskIndex(id); i >= 0 {
		return s.tasks[i].Clone(), true
	}
	return model.Task{}, false
}

// AddTask appends a task. Zero timestamps default to now, an empty
// priority to medium and an empty status to todo.
func (s *Store) AddTask(t model.Task) (model.Task, error) {
	if t.ID == "" {
		return model.Task{}, ErrEmptyID
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if t.Status == "" {
		t.Status = model.StatusTodo
	}
	if err := validateTask(t); err != nil {
		return model.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.taskIndex(t.ID) >= 0 {
		return model.Task{}, fmt.Errorf("task %q: %w", t.ID, ErrDuplicateID)
	}
	now := s.now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.CreatedAt
	}
	t = t.Clone()
	s.tasks = append(s.tasks, t)
	s.version++
	return t.Clone(), nil
}

// UpdateTask merges the patch into the task with the given id and refreshes
// UpdatedAt. Returns false without error if the id is unknown.
func (s *Store) UpdateTask(id string, patch model.TaskPatch) (bool, error) {
	if err := patch.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return false, nil
	}
	patch.Apply(&s.tasks[i])
	s.tasks[i].UpdatedAt = s.now()
	s.version++
	return true, nil
}

// DeleteTask removes the task with the given id. Time entries pointing at it
// are kept. Returns false if the id is unknown.
func (s *Store) DeleteTask(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	s.version++
	return true
}

// Projects returns a copy of all projects in insertion order
func (s *Store) Projects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Project{}, s.projects...)
}

// Project returns the project with the given id
func (s *Store) Project(id string) (model.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return model.Project{}, false
}

// AddProject appends a project
func (s *Store) AddProject(p model.Project) (model.Project, error) {
	if p.ID == "" {
		return model.Project{}, ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.projects {
		if existing.ID == p.ID {
			return model.Project{}, fmt.Errorf("project %q: %w", p.ID, ErrDuplicateID)
		}
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	s.projects = append(s.projects, p)
	s.version++
	return p, nil
}

// UpdateProject merges the patch into the project with the given id.
// Returns false if the id is unknown.
func (s *Store) UpdateProject(id string, patch model.ProjectPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			patch.Apply(&s.projects[i])
			s.version++
			return true
		}
	}
	return false
}

// Employees returns a copy of all employees in insertion order
func (s *Store) Employees() []model.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Employee{}, s.employees...)
}

// AddEmployee appends an employee
func (s *Store) AddEmployee(e model.Employee) (model.Employee, error) {
	if e.ID == "" {
		return model.Employee{}, ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.employees {
		if existing.ID == e.ID {
			return model.Employee{}, fmt.Errorf("employee %q: %w", e.ID, ErrDuplicateID)
		}
	}
	s.employees = append(s.employees, e)
	s.version++
	return e, nil
}

// TimeEntries returns a copy of all time entries in insertion order
func (s *Store) TimeEntries() []model.TimeEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEntries(s.entries)
}

// AddTimeEntry appends a time entry. The task id is not checked.
func (s *Store) AddTimeEntry(e model.TimeEntry) (model.TimeEntry, error) {
	if e.ID == "" {
		return model.TimeEntry{}, ErrEmptyID
	}
	if e.Duration < 0 {
		return model.TimeEntry{}, model.ErrNegativeSeconds
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entryIndex(e.ID) >= 0 {
		return model.TimeEntry{}, fmt.Errorf("time entry %q: %w", e.ID, ErrDuplicateID)
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	e = e.Clone()
	s.entries = append(s.entries, e)
	s.version++
	return e.Clone(), nil
}

// UpdateTimeEntry merges the patch into the entry with the given id.
// Returns false without error if the id is unknown.
func (s *Store) UpdateTimeEntry(id string, patch model.TimeEntryPatch) (bool, error) {
	if err := patch.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.entryIndex(id)
	if i < 0 {
		return false, nil
	}
	patch.Apply(&s.entries[i])
	s.version++
	return true, nil
}

func (s *Store) taskIndex(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) entryIndex(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func validateTask(t model.Task) error {
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidPriority, t.Priority)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidStatus, t.Status)
	}
	if t.EstimatedHours != nil && *t.EstimatedHours < 0 {
		return model.ErrNegativeHours
	}
	return nil
}

func cloneTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

func cloneEntries(entries []model.TimeEntry) []model.TimeEntry {
	out := make([]model.TimeEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}
