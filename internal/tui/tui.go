// Package tui provides the Terminal User Interface for timora.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/timora/internal/service"
	"github.com/xolan/timora/internal/tui/ui"
	"github.com/xolan/timora/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabTasks Tab = iota
	TabCalendar
	TabTimer
	TabAssign
	TabStats
	TabConfig
)

var tabNames = []string{"Tasks", "Calendar", "Timer", "Assign", "Stats", "Config"}

// Model is the root TUI model
type Model struct {
	// Services
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	// View models
	tasksView    views.TasksModel
	calendarView views.CalendarModel
	timerView    views.TimerModel
	assignView   views.AssignModel
	statsView    views.StatsModel
	configView   views.ConfigModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabTasks,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		tasksView:     views.NewTasksModel(services, styles, keys),
		calendarView:  views.NewCalendarModel(services, styles, keys),
		timerView:     views.NewTimerModel(services, styles, keys),
		assignView:    views.NewAssignModel(services, styles, keys),
		statsView:     views.NewStatsModel(services, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tasksView.Init(),
		m.calendarView.Init(),
		m.timerView.Init(),
		m.assignView.Init(),
		m.statsView.Init(),
		m.configView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While a view captures input every key goes to it
		if !m.isInputMode() {
			if model, cmd, handled := m.handleGlobalKey(msg); handled {
				return model, cmd
			}
		}
		return m.updateActive(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // Account for tabs and status bar
		m.tasksView.SetSize(m.width, contentHeight)
		m.calendarView.SetSize(m.width, contentHeight)
		m.timerView.SetSize(m.width, contentHeight)
		m.assignView.SetSize(m.width, contentHeight)
		m.statsView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		newTheme := m.themeProvider.CurrentName()
		m.styles = m.themeProvider.Styles()

		model, cmd := m.broadcast(ui.ThemeChangedMsg{
			ThemeName: newTheme,
			Styles:    m.styles,
		})
		return model, tea.Batch(cmd, m.saveThemeConfig(newTheme))
	}

	// Everything else reaches every view; each ignores what it does not own
	return m.broadcast(msg)
}

// handleGlobalKey handles tab switching, help and quit
func (m Model) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	tabKeys := []key.Binding{m.keys.Tab1, m.keys.Tab2, m.keys.Tab3, m.keys.Tab4, m.keys.Tab5, m.keys.Tab6}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil, true

	case key.Matches(msg, m.keys.NextTab):
		m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
		return m, m.initCurrentView(), true

	case key.Matches(msg, m.keys.PrevTab):
		m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
		return m, m.initCurrentView(), true
	}

	for i, binding := range tabKeys {
		if key.Matches(msg, binding) {
			m.activeTab = Tab(i)
			return m, m.initCurrentView(), true
		}
	}
	return m, nil, false
}

// updateActive sends msg to the active view only
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.activeTab {
	case TabTasks:
		m.tasksView, cmd = m.tasksView.Update(msg)
	case TabCalendar:
		m.calendarView, cmd = m.calendarView.Update(msg)
	case TabTimer:
		m.timerView, cmd = m.timerView.Update(msg)
	case TabAssign:
		m.assignView, cmd = m.assignView.Update(msg)
	case TabStats:
		m.statsView, cmd = m.statsView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}
	return m, cmd
}

// broadcast sends msg to every view
func (m Model) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 6)
	m.tasksView, cmds[0] = m.tasksView.Update(msg)
	m.calendarView, cmds[1] = m.calendarView.Update(msg)
	m.timerView, cmds[2] = m.timerView.Update(msg)
	m.assignView, cmds[3] = m.assignView.Update(msg)
	m.statsView, cmds[4] = m.statsView.Update(msg)
	m.configView, cmds[5] = m.configView.Update(msg)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabTasks:
		b.WriteString(m.tasksView.View())
	case TabCalendar:
		b.WriteString(m.calendarView.View())
	case TabTimer:
		b.WriteString(m.timerView.View())
	case TabAssign:
		b.WriteString(m.assignView.View())
	case TabStats:
		b.WriteString(m.statsView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(label))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.isInputMode() {
		parts = append(parts, m.renderKeyHelp("Enter", "confirm"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	} else {
		switch m.activeTab {
		case TabTasks:
			parts = append(parts, m.renderKeyHelp("space", "toggle"))
		case TabCalendar:
			parts = append(parts, m.renderKeyHelp("←→↑↓", "move"))
			parts = append(parts, m.renderKeyHelp("t", "today"))
		case TabTimer:
			parts = append(parts, m.renderKeyHelp("s", "start"))
			parts = append(parts, m.renderKeyHelp("p", "pause"))
			parts = append(parts, m.renderKeyHelp("x", "stop"))
			parts = append(parts, m.renderKeyHelp("r", "reset"))
		case TabAssign:
			parts = append(parts, m.renderKeyHelp("a", "assign"))
			parts = append(parts, m.renderKeyHelp("u", "unassign"))
			parts = append(parts, m.renderKeyHelp("f", "filter"))
			parts = append(parts, m.renderKeyHelp("/", "search"))
		case TabConfig:
			parts = append(parts, m.renderKeyHelp("t", "themes"))
		}

		parts = append(parts, m.renderKeyHelp("1-6", "views"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")

	// Fill to width
	if padding := m.width - lipgloss.Width(content); padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isInputMode reports whether the active view is capturing keyboard input
func (m Model) isInputMode() bool {
	switch m.activeTab {
	case TabTimer:
		return m.timerView.IsInputMode()
	case TabAssign:
		return m.assignView.IsInputMode()
	case TabConfig:
		return m.configView.IsInputMode()
	}
	return false
}

// initCurrentView reloads the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabTasks:
		return m.tasksView.Init()
	case TabCalendar:
		return m.calendarView.Init()
	case TabTimer:
		return m.timerView.Init()
	case TabAssign:
		return m.assignView.Init()
	case TabStats:
		return m.statsView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		if err := m.services.Config.SetTheme(themeName); err != nil {
			m.services.Logger().Warn("failed to save theme",
				slog.String("theme", themeName),
				slog.Any("error", err),
			)
		}
		return nil
	}
}

// GetThemeProvider returns the theme provider for use by views
func (m Model) GetThemeProvider() *ui.ThemeProvider {
	return m.themeProvider
}

// renderHelpOverlay renders the key reference for the active view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-6    Switch views\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabTasks:
		help.WriteString(m.styles.StatLabel.Render("Tasks:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate up/down\n")
		help.WriteString("  Space      Toggle completed\n")
	case TabCalendar:
		help.WriteString(m.styles.StatLabel.Render("Calendar:"))
		help.WriteString("\n")
		help.WriteString("  h/l        Previous/next day\n")
		help.WriteString("  j/k        Next/previous week\n")
		help.WriteString("  t          Jump to today\n")
	case TabTimer:
		help.WriteString(m.styles.StatLabel.Render("Timer:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Choose task\n")
		help.WriteString("  s          Start timer\n")
		help.WriteString("  p/Space    Pause or resume\n")
		help.WriteString("  x          Stop and record\n")
		help.WriteString("  r          Reset without recording\n")
	case TabAssign:
		help.WriteString(m.styles.StatLabel.Render("Assign:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate up/down\n")
		help.WriteString("  a          Assign to an employee\n")
		help.WriteString("  u          Unassign\n")
		help.WriteString("  f          Cycle assignee filter\n")
		help.WriteString("  /          Search tasks\n")
	case TabStats:
		help.WriteString(m.styles.StatLabel.Render("Stats:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Select project\n")
	case TabConfig:
		help.WriteString(m.styles.StatLabel.Render("Config:"))
		help.WriteString("\n")
		help.WriteString("  t/Enter    Open theme selector\n")
		help.WriteString("  j/k        Navigate themes\n")
		help.WriteString("  Enter      Select theme\n")
		help.WriteString("  Esc        Cancel\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.Muted.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the TUI application. Timer ticks are driven by the program
// loop, so the background tick driver is switched off first.
func Run(services *service.Services) error {
	services.Timer.UseExternalTicks()
	p := tea.NewProgram(New(services), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
