package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/timora/internal/cli"
	"github.com/xolan/timora/internal/service"
	"github.com/xolan/timora/internal/timeutil"
	"github.com/xolan/timora/internal/tui/ui"
)

// CalendarModel shows a month grid with task due dates and the tasks due on
// the selected day
type CalendarModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width    int
	height   int
	selected time.Time
	grid     service.CalendarMonth
	loading  bool
}

// NewCalendarModel creates a new calendar view model
func NewCalendarModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) CalendarModel {
	return CalendarModel{
		services: services,
		styles:   styles,
		keys:     keys,
		selected: timeutil.StartOfDay(services.Now()),
		loading:  true,
	}
}

// calendarLoadedMsg is sent when a month grid is built
type calendarLoadedMsg struct {
	grid service.CalendarMonth
}

// Init implements tea.Model
func (m CalendarModel) Init() tea.Cmd {
	return m.loadMonth()
}

// Update implements tea.Model
func (m CalendarModel) Update(msg tea.Msg) (CalendarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Left):
			return m.moveTo(m.selected.AddDate(0, 0, -1))
		case key.Matches(msg, m.keys.Right):
			return m.moveTo(m.selected.AddDate(0, 0, 1))
		case key.Matches(msg, m.keys.Up):
			return m.moveTo(m.selected.AddDate(0, 0, -7))
		case key.Matches(msg, m.keys.Down):
			return m.moveTo(m.selected.AddDate(0, 0, 7))
		case key.Matches(msg, m.keys.Today):
			return m.moveTo(timeutil.StartOfDay(m.services.Now()))
		}

	case calendarLoadedMsg:
		m.loading = false
		m.grid = msg.grid

	case ui.DataChangedMsg:
		return m, m.loadMonth()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// moveTo selects day, reloading the grid when the month changes
func (m CalendarModel) moveTo(day time.Time) (CalendarModel, tea.Cmd) {
	sameMonth := day.Year() == m.selected.Year() && day.Month() == m.selected.Month()
	m.selected = day
	if sameMonth && !m.loading {
		return m, nil
	}
	return m, m.loadMonth()
}

// View implements tea.Model
func (m CalendarModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render(m.selected.Format("January 2006")))
	b.WriteString("\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}

	weekStart := m.services.Calendar.WeekStart()
	header := make([]string, 7)
	for i := range header {
		header[i] = m.styles.CalendarHeader.Render(((weekStart + time.Weekday(i)) % 7).String()[:3])
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	var selectedDay service.CalendarDay
	for _, week := range m.grid.Weeks {
		cells := make([]string, len(week))
		for i, day := range week {
			if timeutil.SameDay(day.Date, m.selected) {
				selectedDay = day
			}
			cells[i] = m.renderDay(day)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render(m.selected.Format("Mon Jan 2")))
	b.WriteString("\n")
	if len(selectedDay.Events) == 0 {
		b.WriteString(m.styles.Muted.Render("  No tasks due"))
		b.WriteString("\n")
	}
	for _, ev := range selectedDay.Events {
		marker := lipgloss.NewStyle().Foreground(lipgloss.Color(ev.Color)).Render("●")
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			marker,
			m.styles.Priority(ev.Priority).Render(cli.PriorityLabel(ev.Priority)),
			ev.Title,
		))
	}

	return b.String()
}

func (m CalendarModel) renderDay(day service.CalendarDay) string {
	label := fmt.Sprintf("%d", day.Date.Day())
	if len(day.Events) > 0 {
		label = fmt.Sprintf("%d•%d", day.Date.Day(), len(day.Events))
	}

	switch {
	case timeutil.SameDay(day.Date, m.selected):
		return m.styles.CalendarCursor.Render(label)
	case !day.InMonth:
		return m.styles.CalendarOutside.Render(fmt.Sprintf("%d", day.Date.Day()))
	case day.IsToday:
		return m.styles.CalendarToday.Render(label)
	case len(day.Events) > 0:
		return m.styles.CalendarBusy.Render(label)
	}
	return m.styles.CalendarDay.Render(label)
}

// SetSize sets the view dimensions
func (m *CalendarModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadMonth creates a command to build the grid for the selected month
func (m CalendarModel) loadMonth() tea.Cmd {
	month := m.selected
	return func() tea.Msg {
		return calendarLoadedMsg{grid: m.services.Calendar.Month(month)}
	}
}
