package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/timora/internal/cli"
	"github.com/xolan/timora/internal/model"
	"github.com/xolan/timora/internal/service"
)

// TaskListOptions selects which tasks ListTasks prints
type TaskListOptions struct {
	Today    bool
	Status   string
	Assignee string
	Search   string
}

// ListTasks prints the tasks matching opts. With Today set only tasks due
// today are listed, in daily display order.
func ListTasks(deps *cli.Deps, opts TaskListOptions) {
	status := strings.ToLower(strings.TrimSpace(opts.Status))
	if status != "" && status != "all" && !model.Status(status).Valid() {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v: %q\n", model.ErrInvalidStatus, opts.Status)
		deps.Exit(1)
		return
	}

	filter := service.TaskFilter{
		Search:   opts.Search,
		Status:   status,
		Assignee: strings.TrimSpace(opts.Assignee),
	}

	var tasks []model.Task
	if opts.Today {
		tasks = service.FilterTasks(deps.Services.Task.Today(), filter)
	} else {
		tasks = deps.Services.Task.Filter(filter)
	}

	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No tasks found")
		return
	}

	employees := deps.Services.Employee.Names()
	projects := make(map[string]string)
	for _, p := range deps.Services.Project.List() {
		projects[p.ID] = p.Name
	}
	now := deps.Services.Now()

	for _, t := range tasks {
		check := " "
		if t.Status == model.StatusCompleted {
			check = "x"
		}
		assignee := employees[t.AssignedTo]
		if assignee == "" {
			assignee = "-"
		}
		project := projects[t.ProjectID]
		if project == "" {
			project = "-"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "[%s] %-32s %-7s %-12s %-18s %-16s %s\n",
			check,
			cli.Truncate(t.Title, 32),
			cli.PriorityLabel(t.Priority),
			t.Status,
			cli.Truncate(project, 18),
			cli.Truncate(assignee, 16),
			cli.FormatDueDate(t.DueDate, now),
		)
	}

	completed, total := service.Progress(tasks)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "%d %s, %d completed\n", total, cli.Pluralize("task", total), completed)
}
