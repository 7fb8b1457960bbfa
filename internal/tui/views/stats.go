package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/timora/internal/cli"
	"github.com/xolan/timora/internal/service"
	"github.com/xolan/timora/internal/tui/ui"
)

const statsBarWidth = 24

// StatsModel is the model for the stats view
type StatsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	result  *service.StatsResult
	names   lookups
	cursor  int
	loading bool
}

// NewStatsModel creates a new stats view model
func NewStatsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) StatsModel {
	return StatsModel{
		services: services,
		styles:   styles,
		keys:     keys,
		loading:  true,
	}
}

// statsLoadedMsg is sent when stats are loaded
type statsLoadedMsg struct {
	result service.StatsResult
	names  lookups
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return m.loadStats()
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.result == nil {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.result.Projects)-1 {
				m.cursor++
			}
		}

	case statsLoadedMsg:
		m.loading = false
		m.result = &msg.result
		m.names = msg.names
		m.cursor = clampCursor(m.cursor, len(msg.result.Projects))

	case ui.DataChangedMsg:
		return m, m.loadStats()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Time Statistics"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}
	if m.result == nil {
		b.WriteString("No data")
		return b.String()
	}

	totals := m.result.Totals
	b.WriteString(m.renderStatLine("Total hours:", fmt.Sprintf("%.2f", totals.TotalHours)))
	b.WriteString(m.renderStatLine("Tasks:", fmt.Sprintf("%d", totals.TotalTasks)))
	b.WriteString(m.renderStatLine("Employees:", fmt.Sprintf("%d", totals.TotalEmployees)))
	b.WriteString(m.renderStatLine("Time entries:", fmt.Sprintf("%d %s", totals.TotalTimeEntries, cli.Pluralize("entry", totals.TotalTimeEntries))))
	if totals.OrphanSeconds > 0 {
		b.WriteString(m.renderStatLine("Unassigned time:", cli.FormatDuration(totals.OrphanSeconds)))
	}

	if len(m.result.Projects) == 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("No projects found"))
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(m.styles.ViewTitle.Render("By Project"))
	b.WriteString("\n")

	maxSeconds := 0
	for _, ps := range m.result.Projects {
		if s := ps.Seconds(); s > maxSeconds {
			maxSeconds = s
		}
	}

	for i, ps := range m.result.Projects {
		bar := m.styles.StatBar.Render(progressBar(ps.Seconds(), maxSeconds, statsBarWidth))
		line := fmt.Sprintf("%-20s %s %6.2fh  %d %s",
			cli.Truncate(ps.ProjectName, 20),
			bar,
			ps.TotalHours,
			ps.TaskCount,
			cli.Pluralize("task", ps.TaskCount))
		if i == m.cursor {
			b.WriteString(m.styles.TaskSelected.Render("▸ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	// Employee breakdown for the selected project
	ps := m.result.Projects[m.cursor]
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render(ps.ProjectName))
	b.WriteString("\n")
	if len(ps.Employees) == 0 {
		b.WriteString(m.styles.Muted.Render("  No time tracked"))
		b.WriteString("\n")
	}
	for _, share := range ps.Employees {
		b.WriteString(fmt.Sprintf("  %-20s %s\n",
			m.styles.TaskAssignee.Render(m.names.employee(share.EmployeeID)),
			m.styles.StatValue.Render(cli.FormatDuration(share.Seconds))))
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *StatsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadStats creates a command to load stats
func (m StatsModel) loadStats() tea.Cmd {
	return func() tea.Msg {
		return statsLoadedMsg{
			result: m.services.Stats.Report(),
			names:  loadLookups(m.services),
		}
	}
}

func (m StatsModel) renderStatLine(label, value string) string {
	return m.styles.StatLabel.Render(label) + " " + m.styles.StatValue.Render(value) + "\n"
}
