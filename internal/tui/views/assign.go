package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/timora/internal/model"
	"github.com/xolan/timora/internal/service"
	"github.com/xolan/timora/internal/tui/ui"
)

// assignMode is the input state of the assign view
type assignMode int

const (
	assignBrowse assignMode = iota
	assignSearch
	assignPick
)

// AssignModel lists every task with search and assignee filters and lets
// the user assign or unassign the selected task
type AssignModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width     int
	height    int
	all       []model.Task
	tasks     []model.Task
	employees []model.Employee
	names     lookups
	cursor    int
	loading   bool
	err       error

	// Filters
	search   textinput.Model
	assignee string // "all", "none" or an employee id

	// Employee picker
	mode       assignMode
	pickCursor int
}

// NewAssignModel creates a new assign view model
func NewAssignModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) AssignModel {
	ti := textinput.New()
	ti.Placeholder = "Search tasks..."
	ti.CharLimit = 100
	ti.Width = 40

	return AssignModel{
		services: services,
		styles:   styles,
		keys:     keys,
		search:   ti,
		assignee: "all",
		loading:  true,
	}
}

// assignLoadedMsg is sent when tasks and employees are loaded
type assignLoadedMsg struct {
	tasks     []model.Task
	employees []model.Employee
	names     lookups
}

// assignDoneMsg is the result of an assign or unassign
type assignDoneMsg struct {
	err error
}

// Init implements tea.Model
func (m AssignModel) Init() tea.Cmd {
	return m.loadTasks()
}

// Update implements tea.Model
func (m AssignModel) Update(msg tea.Msg) (AssignModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case assignSearch:
			return m.handleSearch(msg)
		case assignPick:
			return m.handlePick(msg)
		}
		return m.handleKey(msg)

	case assignLoadedMsg:
		m.loading = false
		m.all = msg.tasks
		m.employees = msg.employees
		m.names = msg.names
		m.applyFilter()
		return m, nil

	case assignDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		return m, tea.Batch(m.loadTasks(), dataChanged)

	case ui.DataChangedMsg:
		return m, m.loadTasks()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	if m.mode == assignSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AssignModel) handleKey(msg tea.KeyMsg) (AssignModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Search):
		m.mode = assignSearch
		m.search.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Filter):
		m.assignee = m.nextAssignee()
		m.applyFilter()
	case key.Matches(msg, m.keys.Assign):
		if len(m.tasks) > 0 && len(m.employees) > 0 {
			m.mode = assignPick
			m.pickCursor = 0
			current := m.tasks[m.cursor].AssignedTo
			for i, e := range m.employees {
				if e.ID == current {
					m.pickCursor = i
				}
			}
		}
	case key.Matches(msg, m.keys.Unassign):
		if len(m.tasks) > 0 && m.tasks[m.cursor].AssignedTo != "" {
			return m, m.unassign(m.tasks[m.cursor].ID)
		}
	}
	return m, nil
}

// handleSearch filters as the user types; enter keeps the query, esc clears it
func (m AssignModel) handleSearch(msg tea.KeyMsg) (AssignModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		m.mode = assignBrowse
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.mode = assignBrowse
		m.search.Blur()
		m.search.SetValue("")
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m AssignModel) handlePick(msg tea.KeyMsg) (AssignModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.pickCursor > 0 {
			m.pickCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.pickCursor < len(m.employees)-1 {
			m.pickCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.mode = assignBrowse
		if len(m.tasks) == 0 {
			return m, nil
		}
		return m, m.assign(m.tasks[m.cursor].ID, m.employees[m.pickCursor].ID)
	case key.Matches(msg, m.keys.Back):
		m.mode = assignBrowse
	}
	return m, nil
}

// nextAssignee cycles all, none, then each employee
func (m AssignModel) nextAssignee() string {
	order := []string{"all", "none"}
	for _, e := range m.employees {
		order = append(order, e.ID)
	}
	for i, v := range order {
		if v == m.assignee {
			return order[(i+1)%len(order)]
		}
	}
	return "all"
}

func (m *AssignModel) applyFilter() {
	m.tasks = service.FilterTasks(m.all, service.TaskFilter{
		Search:   m.search.Value(),
		Assignee: m.assignee,
	})
	m.cursor = clampCursor(m.cursor, len(m.tasks))
}

// View implements tea.Model
func (m AssignModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Assign Tasks"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.styles.Muted.Render("Loading..."))
		return b.String()
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	filter := "all"
	switch m.assignee {
	case "all":
	case "none":
		filter = "unassigned"
	default:
		filter = m.names.employee(m.assignee)
	}
	b.WriteString(m.styles.Muted.Render("Assignee: "))
	b.WriteString(m.styles.TaskAssignee.Render(filter))
	if m.mode == assignSearch {
		b.WriteString("\n")
		b.WriteString(m.search.View())
	} else if q := m.search.Value(); q != "" {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  Search: %q", q)))
	}
	b.WriteString("\n\n")

	if m.mode == assignPick && len(m.tasks) > 0 {
		return b.String() + m.renderPicker()
	}

	if len(m.tasks) == 0 {
		b.WriteString(m.styles.Muted.Render("No tasks match"))
		return b.String()
	}

	b.WriteString(RenderTaskList(m.tasks, m.names, m.styles, TaskRenderOptions{
		Width:   m.width,
		Cursor:  m.cursor,
		Now:     m.services.Now(),
		ShowDue: true,
	}))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d of %d tasks", len(m.tasks), len(m.all))))

	return b.String()
}

func (m AssignModel) renderPicker() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Assign %q to:\n\n", m.tasks[m.cursor].Title))
	for i, e := range m.employees {
		line := e.Name
		if e.Role != "" {
			line += m.styles.Muted.Render(" (" + e.Role + ")")
		}
		if i == m.pickCursor {
			b.WriteString(m.styles.TaskSelected.Render("▸ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Enter to assign, Esc to cancel"))
	return m.styles.Dialog.Render(b.String())
}

// SetSize sets the view dimensions
func (m *AssignModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m AssignModel) IsInputMode() bool {
	return m.mode != assignBrowse
}

// Selected returns the task under the cursor
func (m AssignModel) Selected() (model.Task, bool) {
	if len(m.tasks) == 0 {
		return model.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func (m AssignModel) loadTasks() tea.Cmd {
	return func() tea.Msg {
		tasks := m.services.Task.List()
		service.SortForDisplay(tasks)
		return assignLoadedMsg{
			tasks:     tasks,
			employees: m.services.Employee.List(),
			names:     loadLookups(m.services),
		}
	}
}

func (m AssignModel) assign(taskID, employeeID string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.Task.Assign(taskID, employeeID)
		return assignDoneMsg{err: err}
	}
}

func (m AssignModel) unassign(taskID string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.Task.Unassign(taskID)
		return assignDoneMsg{err: err}
	}
}
