package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/timora/internal/model"
	"github.com/xolan/timora/internal/service"
	"github.com/xolan/timora/internal/tui/ui"
)

// TasksModel shows the tasks due today with completion progress
type TasksModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	tasks   []model.Task
	names   lookups
	now     time.Time
	cursor  int
	follow  string // task id the cursor tracks across a reload
	loading bool
	err     error
}

// NewTasksModel creates a new tasks view model
func NewTasksModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) TasksModel {
	return TasksModel{
		services: services,
		styles:   styles,
		keys:     keys,
		loading:  true,
	}
}

// tasksLoadedMsg is sent when today's tasks are loaded
type tasksLoadedMsg struct {
	tasks []model.Task
	names lookups
	now   time.Time
}

// taskToggledMsg is sent after a task's completion was flipped
type taskToggledMsg struct {
	task model.Task
	err  error
}

// Init implements tea.Model
func (m TasksModel) Init() tea.Cmd {
	return m.loadTasks()
}

// Update implements tea.Model
func (m TasksModel) Update(msg tea.Msg) (TasksModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if len(m.tasks) > 0 {
				return m, m.toggleTask(m.tasks[m.cursor].ID)
			}
		}

	case tasksLoadedMsg:
		m.loading = false
		m.err = nil
		m.tasks = msg.tasks
		m.names = msg.names
		m.now = msg.now
		m.cursor = clampCursor(m.cursor, len(m.tasks))
		if m.follow != "" {
			for i, t := range m.tasks {
				if t.ID == m.follow {
					m.cursor = i
				}
			}
			m.follow = ""
		}

	case taskToggledMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.follow = msg.task.ID
		return m, tea.Batch(m.loadTasks(), dataChanged)

	case ui.DataChangedMsg:
		return m, m.loadTasks()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// View implements tea.Model
func (m TasksModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Today's Tasks"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	if len(m.tasks) == 0 {
		b.WriteString(m.styles.Muted.Render("No tasks due today"))
		return b.String()
	}

	completed, total := service.Progress(m.tasks)
	b.WriteString(m.styles.StatBar.Render(progressBar(completed, total, 30)))
	b.WriteString(fmt.Sprintf("  %d/%d completed", completed, total))
	b.WriteString("\n\n")

	b.WriteString(RenderTaskList(m.tasks, m.names, m.styles, TaskRenderOptions{
		Width:  m.width,
		Cursor: m.cursor,
		Now:    m.now,
	}))

	return b.String()
}

// SetSize sets the view dimensions
func (m *TasksModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the task under the cursor
func (m TasksModel) Selected() (model.Task, bool) {
	if len(m.tasks) == 0 {
		return model.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// loadTasks creates a command to load today's tasks
func (m TasksModel) loadTasks() tea.Cmd {
	return func() tea.Msg {
		return tasksLoadedMsg{
			tasks: m.services.Task.Today(),
			names: loadLookups(m.services),
			now:   m.services.Now(),
		}
	}
}

// toggleTask creates a command to flip a task between completed and todo
func (m TasksModel) toggleTask(id string) tea.Cmd {
	return func() tea.Msg {
		task, err := m.services.Task.ToggleComplete(id)
		return taskToggledMsg{task: task, err: err}
	}
}
