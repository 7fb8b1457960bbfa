package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/timora/internal/cli"
	"github.com/xolan/timora/internal/model"
	"github.com/xolan/timora/internal/service"
	"github.com/xolan/timora/internal/tui/ui"
)

// lookups resolves ids to display names
type lookups struct {
	employees map[string]string
	projects  map[string]string
}

func loadLookups(services *service.Services) lookups {
	l := lookups{
		employees: services.Employee.Names(),
		projects:  make(map[string]string),
	}
	for _, p := range services.Project.List() {
		l.projects[p.ID] = p.Name
	}
	return l
}

func (l lookups) employee(id string) string {
	if id == "" {
		return "unassigned"
	}
	if name, ok := l.employees[id]; ok {
		return name
	}
	return id
}

func (l lookups) project(id string) string {
	if id == "" {
		return "no project"
	}
	if name, ok := l.projects[id]; ok {
		return name
	}
	return id
}

// TaskRenderOptions configures how a task list is rendered
type TaskRenderOptions struct {
	Width  int
	Cursor int // Currently selected task index (-1 for none)
	Now    time.Time
	// ShowDue adds the due date column
	ShowDue bool
}

// RenderTaskList renders tasks with a done marker, priority badge, project
// and assignee
func RenderTaskList(tasks []model.Task, names lookups, styles ui.Styles, opts TaskRenderOptions) string {
	if len(tasks) == 0 {
		return ""
	}

	titleWidth := opts.Width - 60
	if titleWidth < 20 {
		titleWidth = 20
	}

	var b strings.Builder
	for i, t := range tasks {
		check := "[ ]"
		title := styles.TaskNormal.Render(fmt.Sprintf("%-*s", titleWidth, cli.Truncate(t.Title, titleWidth)))
		if t.Status == model.StatusCompleted {
			check = "[x]"
			title = styles.TaskDone.Render(fmt.Sprintf("%-*s", titleWidth, cli.Truncate(t.Title, titleWidth)))
		}

		parts := []string{
			check,
			title,
			styles.Priority(t.Priority).Render(cli.PriorityLabel(t.Priority)),
			styles.TaskProject.Render(fmt.Sprintf("%-16s", cli.Truncate(names.project(t.ProjectID), 16))),
			styles.TaskAssignee.Render(fmt.Sprintf("%-14s", cli.Truncate(names.employee(t.AssignedTo), 14))),
		}
		if opts.ShowDue {
			parts = append(parts, styles.TaskDue.Render(cli.FormatDueDate(t.DueDate, opts.Now)))
		}

		line := strings.Join(parts, " ")
		if i == opts.Cursor {
			line = styles.TaskSelected.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// dataChanged tells every view to reload
func dataChanged() tea.Msg {
	return ui.DataChangedMsg{}
}

// clampCursor keeps cursor inside a list of n items
func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// progressBar renders a bar of width cells filled to done/total
func progressBar(done, total, width int) string {
	if total <= 0 || width <= 0 {
		return strings.Repeat("░", max(width, 0))
	}
	filled := done * width / total
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
