package store

import (
	"fmt"

	"github.com/xolan/timora/internal/model"
)

// SeedProjects loads projects only when the collection is empty.
// Returns true if the projects were loaded. The batch is validated before
// anything is stored.
func (s *Store) SeedProjects(projects []model.Project) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.projects) > 0 || len(projects) == 0 {
		return false, nil
	}
	seen := make(map[string]bool, len(projects))
	batch := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if err := checkID("project", p.ID, seen); err != nil {
			return false, err
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = s.now()
		}
		batch = append(batch, p)
	}
	s.projects = batch
	s.version++
	return true, nil
}

// SeedEmployees loads employees only when the collection is empty
func (s *Store) SeedEmployees(employees []model.Employee) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.employees) > 0 || len(employees) == 0 {
		return false, nil
	}
	seen := make(map[string]bool, len(employees))
	for _, e := range employees {
		if err := checkID("employee", e.ID, seen); err != nil {
			return false, err
		}
	}
	s.employees = append([]model.Employee{}, employees...)
	s.version++
	return true, nil
}

// SeedTasks loads tasks only when the collection is empty, applying the same
// defaults and validation as AddTask
func (s *Store) SeedTasks(tasks []model.Task) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tasks) > 0 || len(tasks) == 0 {
		return false, nil
	}
	seen := make(map[string]bool, len(tasks))
	batch := make([]model.Task, 0, len(tasks))
	now := s.now()
	for _, t := range tasks {
		if err := checkID("task", t.ID, seen); err != nil {
			return false, err
		}
		if t.Priority == "" {
			t.Priority = model.PriorityMedium
		}
		if t.Status == "" {
			t.Status = model.StatusTodo
		}
		if err := validateTask(t); err != nil {
			return false, fmt.Errorf("task %q: %w", t.ID, err)
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		if t.UpdatedAt.IsZero() {
			t.UpdatedAt = t.CreatedAt
		}
		batch = append(batch, t.Clone())
	}
	s.tasks = batch
	s.version++
	return true, nil
}

// SeedTimeEntries bulk-imports time entries only when the collection is empty
func (s *Store) SeedTimeEntries(entries []model.TimeEntry) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) > 0 || len(entries) == 0 {
		return false, nil
	}
	seen := make(map[string]bool, len(entries))
	batch := make([]model.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if err := checkID("time entry", e.ID, seen); err != nil {
			return false, err
		}
		if e.Duration < 0 {
			return false, fmt.Errorf("time entry %q: %w", e.ID, model.ErrNegativeSeconds)
		}
		if e.CreatedAt.IsZero() {
			e.CreatedAt = s.now()
		}
		batch = append(batch, e.Clone())
	}
	s.entries = batch
	s.version++
	return true, nil
}

func checkID(kind, id string, seen map[string]bool) error {
	if id == "" {
		return fmt.Errorf("%s: %w", kind, ErrEmptyID)
	}
	if seen[id] {
		return fmt.Errorf("%s %q: %w", kind, id, ErrDuplicateID)
	}
	seen[id] = true
	return nil
}
