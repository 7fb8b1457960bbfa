package seed

import (
	"time"

	"github.com/xolan/timora/internal/model"
	"github.com/xolan/timora/internal/timeutil"
)

// Demo returns the built-in sample dataset. Due dates and entry times are
// placed relative to now so that today's list and the calendar have content.
func Demo(now time.Time) Dataset {
	today := timeutil.StartOfDay(now)
	at := func(days, hour int) time.Time {
		return today.AddDate(0, 0, days).Add(time.Duration(hour) * time.Hour)
	}
	due := func(days int) *time.Time {
		t := at(days, 18)
		return &t
	}
	created := at(-14, 9)

	projects := []model.Project{
		{ID: "proj-web", Name: "Website Redesign", Description: "New marketing site", Color: "#3b82f6", CreatedAt: created},
		{ID: "proj-app", Name: "Mobile App", Description: "iOS and Android client", Color: "#10b981", CreatedAt: created},
		{ID: "proj-ops", Name: "Internal Tools", Description: "Ops dashboards and scripts", Color: "#f59e0b", CreatedAt: created},
	}

	employees := []model.Employee{
		{ID: "emp-1", Name: "Alex Chen", Email: "alex@example.com", Role: "Engineer"},
		{ID: "emp-2", Name: "Sam Rivera", Email: "sam@example.com", Role: "Designer"},
		{ID: "emp-3", Name: "Jordan Lee", Email: "jordan@example.com", Role: "Product Manager"},
	}

	task := func(id, title string, pr model.Priority, st model.Status, project, assignee string, dueIn int, estimate float64) model.Task {
		return model.Task{
			ID:             id,
			Title:          title,
			Priority:       pr,
			Status:         st,
			ProjectID:      project,
			AssignedTo:     assignee,
			DueDate:        due(dueIn),
			EstimatedHours: model.Ptr(estimate),
			CreatedAt:      created,
			UpdatedAt:      created,
		}
	}

	tasks := []model.Task{
		task("task-1", "Design landing page", model.PriorityHigh, model.StatusInProgress, "proj-web", "emp-2", 0, 6),
		task("task-2", "Write API documentation", model.PriorityMedium, model.StatusTodo, "proj-app", "emp-1", 0, 3),
		task("task-3", "Fix login crash", model.PriorityUrgent, model.StatusTodo, "proj-app", "emp-1", 0, 2),
		task("task-4", "Review sprint board", model.PriorityLow, model.StatusCompleted, "proj-ops", "emp-3", 0, 1),
		task("task-5", "Set up CI pipeline", model.PriorityHigh, model.StatusTodo, "proj-ops", "", 2, 4),
		task("task-6", "Prepare user interviews", model.PriorityMedium, model.StatusTodo, "proj-web", "emp-3", 5, 5),
		task("task-7", "Migrate analytics events", model.PriorityMedium, model.StatusCancelled, "proj-web", "", -3, 2),
	}
	tasks[0].Description = "Hero section, pricing table and footer"
	tasks[2].Description = "App crashes when the session token expires"

	entry := func(id, taskID, project, employee string, days, hour, seconds int) model.TimeEntry {
		start := at(days, hour)
		end := start.Add(time.Duration(seconds) * time.Second)
		return model.TimeEntry{
			ID:         id,
			TaskID:     taskID,
			ProjectID:  project,
			EmployeeID: employee,
			StartTime:  start,
			EndTime:    &end,
			Duration:   seconds,
			CreatedAt:  end,
		}
	}

	entries := []model.TimeEntry{
		entry("entry-1", "task-1", "proj-web", "emp-2", -2, 9, 5400),
		entry("entry-2", "task-1", "proj-web", "emp-2", -1, 14, 3600),
		entry("entry-3", "task-2", "proj-app", "emp-1", -1, 10, 2700),
		entry("entry-4", "task-3", "proj-app", "emp-1", -1, 16, 1800),
		entry("entry-5", "task-4", "proj-ops", "emp-3", -3, 11, 1200),
		entry("entry-6", "task-6", "proj-web", "emp-3", -4, 13, 2400),
	}

	return Dataset{
		Projects:    projects,
		Employees:   employees,
		Tasks:       tasks,
		TimeEntries: entries,
	}
}
