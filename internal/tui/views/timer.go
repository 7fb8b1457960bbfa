package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/timora/internal/cli"
	"github.com/xolan/timora/internal/model"
	"github.com/xolan/timora/internal/service"
	"github.com/xolan/timora/internal/timer"
	"github.com/xolan/timora/internal/tui/ui"
)

// TimerModel is the focus timer: pick a task, start, pause, resume, stop
// into a time entry, or reset
type TimerModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width    int
	height   int
	status   service.TimerStatus
	tasks    []model.Task
	names    lookups
	taskTime service.TaskTime
	cursor   int
	notice   string
	err      error

	// session is bumped whenever the timer leaves or re-enters Running, so a
	// tick scheduled for an earlier running period is ignored
	session int

	// Input state for the entry description on stop
	inputMode bool
	input     textinput.Model
}

// NewTimerModel creates a new timer view model
func NewTimerModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) TimerModel {
	ti := textinput.New()
	ti.Placeholder = "What did you work on? (optional)"
	ti.CharLimit = 200
	ti.Width = 50

	return TimerModel{
		services: services,
		styles:   styles,
		keys:     keys,
		input:    ti,
	}
}

// timerLoadedMsg carries the selectable tasks. The timer status is read
// when the message is applied, never from the load.
type timerLoadedMsg struct {
	tasks []model.Task
	names lookups
}

// timerActionMsg is the result of a timer transition
type timerActionMsg struct {
	entry *model.TimeEntry
	err   error
}

// Init implements tea.Model
func (m TimerModel) Init() tea.Cmd {
	return m.loadStatus()
}

// Update implements tea.Model
func (m TimerModel) Update(msg tea.Msg) (TimerModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inputMode {
			return m.handleInputMode(msg)
		}
		return m.handleKey(msg)

	case timerLoadedMsg:
		m.tasks = msg.tasks
		m.names = msg.names
		m.cursor = clampCursor(m.cursor, len(m.tasks))
		return m.applyStatus()

	case timerActionMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		if msg.entry != nil {
			m.notice = fmt.Sprintf("Recorded %s on %s", cli.FormatDuration(msg.entry.Duration), m.taskTitle(msg.entry.TaskID))
			m, cmd = m.applyStatus()
			return m, tea.Batch(cmd, dataChanged)
		}
		return m.applyStatus()

	case taskTimeMsg:
		m.taskTime = service.TaskTime(msg)
		return m, nil

	case ui.TimerTickMsg:
		if msg.Session != m.session || m.status.Phase() != timer.Running {
			return m, nil
		}
		if m.services.Timer.External() {
			m.services.Timer.Tick()
		}
		m.status = m.services.Timer.Status()
		return m, m.scheduleTick()

	case ui.DataChangedMsg:
		return m, m.loadStatus()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	if m.inputMode {
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m TimerModel) handleKey(msg tea.KeyMsg) (TimerModel, tea.Cmd) {
	phase := m.status.Phase()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, m.loadTaskTime()
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, m.loadTaskTime()

	case key.Matches(msg, m.keys.Start):
		if phase == timer.Idle && len(m.tasks) > 0 {
			return m, m.startTimer(m.tasks[m.cursor].ID)
		}
	case key.Matches(msg, m.keys.Pause):
		switch phase {
		case timer.Running:
			return m, m.pauseTimer()
		case timer.Paused:
			return m, m.resumeTimer()
		}
	case key.Matches(msg, m.keys.Stop):
		if phase != timer.Idle {
			m.inputMode = true
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		}
	case key.Matches(msg, m.keys.Reset):
		if phase != timer.Idle {
			return m, m.resetTimer()
		}
	}

	return m, nil
}

// handleInputMode handles key events while the stop description is edited
func (m TimerModel) handleInputMode(msg tea.KeyMsg) (TimerModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		desc := strings.TrimSpace(m.input.Value())
		m.inputMode = false
		m.input.Blur()
		return m, m.stopTimer(desc)
	case key.Matches(msg, m.keys.Back): // Escape
		m.inputMode = false
		m.input.Blur()
		m.input.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applyStatus takes the live timer status. Commands finish out of order, so
// a status captured when a command ran may already be stale. Entering
// Running starts a new tick session; any other phase invalidates pending
// ticks.
func (m TimerModel) applyStatus() (TimerModel, tea.Cmd) {
	wasRunning := m.status.Phase() == timer.Running
	status := m.services.Timer.Status()
	m.status = status
	running := status.Phase() == timer.Running

	var cmds []tea.Cmd
	switch {
	case running && !wasRunning:
		m.session++
		cmds = append(cmds, m.scheduleTick())
	case !running && wasRunning:
		m.session++
	}
	cmds = append(cmds, m.loadTaskTime())
	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m TimerModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Focus Timer"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	state := m.status.State
	switch m.status.Phase() {
	case timer.Running:
		b.WriteString(m.styles.TimerRunning.Render("● Running"))
	case timer.Paused:
		b.WriteString(m.styles.TimerPaused.Render("❚❚ Paused"))
	default:
		b.WriteString(m.styles.TimerIdle.Render("○ Idle"))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.TimerClock.Render(cli.FormatClock(state.ElapsedSeconds)))
	b.WriteString("\n")

	if m.status.Task != nil {
		b.WriteString(m.styles.StatLabel.Render("Task:"))
		b.WriteString(" ")
		b.WriteString(m.styles.StatValue.Render(m.status.Task.Title))
		b.WriteString("\n")
		if m.status.Project != nil {
			b.WriteString(m.styles.StatLabel.Render("Project:"))
			b.WriteString(" ")
			b.WriteString(m.styles.TaskProject.Render(m.status.Project.Name))
			b.WriteString("\n")
		}
		if state.StartTime != nil {
			b.WriteString(m.styles.StatLabel.Render("Started:"))
			b.WriteString(" ")
			b.WriteString(m.styles.StatValue.Render(cli.FormatStartTime(*state.StartTime, m.services.Now())))
			b.WriteString("\n")
		}
	}

	if m.inputMode {
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Stop and record"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("Enter to save, Esc to cancel"))
		return b.String()
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Success.Render(m.notice))
		b.WriteString("\n")
	}

	if m.status.Phase() == timer.Idle {
		b.WriteString("\n")
		if len(m.tasks) == 0 {
			b.WriteString(m.styles.Muted.Render("No open tasks to track"))
			return b.String()
		}
		b.WriteString(m.styles.StatLabel.Render("Select a task"))
		b.WriteString("\n")
		b.WriteString(RenderTaskList(m.tasks, m.names, m.styles, TaskRenderOptions{
			Width:   m.width,
			Cursor:  m.cursor,
			Now:     m.services.Now(),
			ShowDue: true,
		}))
	}

	b.WriteString(m.renderTaskTime())
	return b.String()
}

// renderTaskTime shows the tracked total and the most recent entries of the
// bound or selected task
func (m TimerModel) renderTaskTime() string {
	if m.taskTime.TaskID == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Tracked:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(cli.FormatDuration(m.taskTime.TotalSeconds)))
	b.WriteString("\n")
	for _, e := range m.taskTime.Recent {
		line := fmt.Sprintf("  %-22s %8s  %s",
			cli.FormatStartTime(e.StartTime, m.services.Now()),
			cli.FormatDuration(e.Duration),
			m.names.employee(e.EmployeeID),
		)
		if e.Description != "" {
			line += "  " + cli.Truncate(e.Description, 30)
		}
		b.WriteString(m.styles.Muted.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// SetSize sets the view dimensions
func (m *TimerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m TimerModel) IsInputMode() bool {
	return m.inputMode
}

// focusTaskID is the task whose tracked time is shown
func (m TimerModel) focusTaskID() string {
	if id := m.status.State.CurrentTaskID; id != "" {
		return id
	}
	if len(m.tasks) > 0 {
		return m.tasks[m.cursor].ID
	}
	return ""
}

func (m TimerModel) taskTitle(id string) string {
	if t, ok := m.services.Task.Get(id); ok {
		return t.Title
	}
	return id
}

// loadStatus creates a command to load the open tasks and refresh the status
func (m TimerModel) loadStatus() tea.Cmd {
	return func() tea.Msg {
		var open []model.Task
		for _, t := range m.services.Task.List() {
			if t.Status == model.StatusTodo || t.Status == model.StatusInProgress {
				open = append(open, t)
			}
		}
		service.SortForDisplay(open)
		return timerLoadedMsg{
			tasks: open,
			names: loadLookups(m.services),
		}
	}
}

// taskTimeMsg carries the tracked time of one task
type taskTimeMsg service.TaskTime

func (m TimerModel) loadTaskTime() tea.Cmd {
	id := m.focusTaskID()
	if id == "" {
		return nil
	}
	return func() tea.Msg {
		return taskTimeMsg(m.services.Entry.TaskTime(id))
	}
}

func (m TimerModel) startTimer(taskID string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.Timer.Start(taskID)
		return timerActionMsg{err: err}
	}
}

func (m TimerModel) pauseTimer() tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.Timer.Pause()
		return timerActionMsg{err: err}
	}
}

func (m TimerModel) resumeTimer() tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.Timer.Resume()
		return timerActionMsg{err: err}
	}
}

func (m TimerModel) stopTimer(description string) tea.Cmd {
	return func() tea.Msg {
		entry, err := m.services.Timer.Stop(description)
		return timerActionMsg{entry: entry, err: err}
	}
}

func (m TimerModel) resetTimer() tea.Cmd {
	return func() tea.Msg {
		m.services.Timer.Reset()
		return timerActionMsg{}
	}
}

// scheduleTick returns a command that delivers one tick for the current
// session after a second
func (m TimerModel) scheduleTick() tea.Cmd {
	session := m.session
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return ui.TimerTickMsg{Session: session}
	})
}
