package service

import (
	"strings"

	"github.com/xolan/timora/internal/model"
)

// Filter returns the tasks matching every non-empty field of f, in
// insertion order
func (s *TaskService) Filter(f TaskFilter) []model.Task {
	return FilterTasks(s.store.Tasks(), f)
}

// FilterTasks applies f to tasks
func FilterTasks(tasks []model.Task, f TaskFilter) []model.Task {
	query := strings.ToLower(strings.TrimSpace(f.Search))
	result := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Title), query) &&
			!strings.Contains(strings.ToLower(t.Description), query) {
			continue
		}
		if f.Status != "" && f.Status != "all" && string(t.Status) != f.Status {
			continue
		}
		switch f.Assignee {
		case "", "all":
		case "none":
			if t.AssignedTo != "" {
				continue
			}
		default:
			if t.AssignedTo != f.Assignee {
				continue
			}
		}
		result = append(result, t)
	}
	return result
}
