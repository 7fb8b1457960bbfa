package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/timora/internal/config"
	"github.com/xolan/timora/internal/service"
	"github.com/xolan/timora/internal/tui/ui"
)

// maxVisibleThemes is the height of the theme picker
const maxVisibleThemes = 10

// ConfigModel shows the active settings, what the store holds and a theme
// picker. Every other setting is edited in config.toml.
type ConfigModel struct {
	services      *service.Services
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap

	width  int
	height int

	config    config.Config
	path      string
	exists    bool
	counts    storeCounts
	themeName string

	selectingTheme bool
	themes         []string
	themeCursor    int
	themeOffset    int
}

// storeCounts is the size of each collection at load time
type storeCounts struct {
	projects, employees, tasks, entries int
}

type configLoadedMsg struct {
	config config.Config
	path   string
	exists bool
	counts storeCounts
}

// NewConfigModel creates a new config view model
func NewConfigModel(services *service.Services, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) ConfigModel {
	current := themeProvider.CurrentName()
	return ConfigModel{
		services:      services,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		themes:        themeProvider.AvailableThemes(),
		themeCursor:   max(themeProvider.IndexOf(current), 0),
		themeName:     current,
	}
}

// Init implements tea.Model
func (m ConfigModel) Init() tea.Cmd {
	return m.loadConfig()
}

// Update implements tea.Model
func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.selectingTheme {
			return m.updatePicker(msg)
		}
		if key.Matches(msg, m.keys.Theme) && len(m.themes) > 0 {
			m.selectingTheme = true
			m.updateThemeOffset()
		}

	case configLoadedMsg:
		m.config = msg.config
		m.path = msg.path
		m.exists = msg.exists
		m.counts = msg.counts
		m.themeName = m.themeProvider.CurrentName()
		m.resetThemeCursor()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.themeName = msg.ThemeName
		return m, m.loadConfig()

	case ui.DataChangedMsg:
		return m, m.loadConfig()
	}

	return m, nil
}

func (m ConfigModel) updatePicker(msg tea.KeyMsg) (ConfigModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
			m.updateThemeOffset()
		}

	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(m.themes)-1 {
			m.themeCursor++
			m.updateThemeOffset()
		}

	case key.Matches(msg, m.keys.Select):
		name := m.themes[m.themeCursor]
		m.selectingTheme = false
		return m, func() tea.Msg {
			return ui.ThemeChangeRequestMsg{ThemeName: name}
		}

	case key.Matches(msg, m.keys.Back):
		m.selectingTheme = false
		m.resetThemeCursor()
	}

	return m, nil
}

func (m *ConfigModel) resetThemeCursor() {
	if i := m.themeProvider.IndexOf(m.themeName); i >= 0 {
		m.themeCursor = i
	}
	m.updateThemeOffset()
}

// updateThemeOffset scrolls the picker so the cursor stays visible
func (m *ConfigModel) updateThemeOffset() {
	switch {
	case m.themeCursor < m.themeOffset:
		m.themeOffset = m.themeCursor
	case m.themeCursor >= m.themeOffset+maxVisibleThemes:
		m.themeOffset = m.themeCursor - maxVisibleThemes + 1
	}
}

// settings lists the config.toml keys in file order
func (m ConfigModel) settings() [][2]string {
	c := m.config
	return [][2]string{
		{"acting_employee", orNone(c.ActingEmployee)},
		{"duration_source", c.DurationSource},
		{"seed_file", orNone(c.SeedFile)},
		{"load_demo_data", strconv.FormatBool(c.LoadDemoData)},
		{"week_start_day", c.WeekStartDay},
		{"log_level", c.LogLevel},
		{"log_format", c.LogFormat},
		{"log_file", orNone(c.LogFile)},
	}
}

// View implements tea.Model
func (m ConfigModel) View() string {
	var b strings.Builder
	rule := strings.Repeat("─", min(50, max(m.width, 20)))

	b.WriteString(m.styles.ViewTitle.Render("Configuration"))
	b.WriteString("\n\n")
	b.WriteString(m.line("Config file", m.path))
	b.WriteString(m.styles.StatLabel.Render("Status:") + " ")
	if m.exists {
		b.WriteString(m.styles.Success.Render("File exists"))
	} else {
		b.WriteString(m.styles.Warning.Render("Using defaults (no config file)"))
	}
	b.WriteString("\n\n" + rule + "\n\n")

	for _, kv := range m.settings() {
		b.WriteString(m.line(kv[0], kv[1]))
	}
	if m.selectingTheme {
		b.WriteString(m.renderThemePicker())
		return b.String()
	}
	b.WriteString(m.line("theme", m.themeName))

	b.WriteString("\n" + rule + "\n\n")
	b.WriteString(m.styles.ViewTitle.Render("Data"))
	b.WriteString("\n")
	b.WriteString(m.line("Projects", strconv.Itoa(m.counts.projects)))
	b.WriteString(m.line("Employees", strconv.Itoa(m.counts.employees)))
	b.WriteString(m.line("Tasks", strconv.Itoa(m.counts.tasks)))
	b.WriteString(m.line("Time entries", strconv.Itoa(m.counts.entries)))
	b.WriteString(m.line("Source", m.dataSource()))

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Press Enter or 't' to change theme"))
	return b.String()
}

// dataSource names where the startup data came from
func (m ConfigModel) dataSource() string {
	switch {
	case m.config.SeedFile != "":
		return m.config.SeedFile
	case m.config.LoadDemoData:
		return "built-in demo"
	}
	return "empty"
}

func (m ConfigModel) renderThemePicker() string {
	var b strings.Builder

	b.WriteString(m.styles.StatLabel.Render("theme:") + " ")
	b.WriteString(m.styles.StatValue.Render("Select a theme"))
	b.WriteString("\n\n")

	end := min(m.themeOffset+maxVisibleThemes, len(m.themes))
	if m.themeOffset > 0 {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  ↑ %d more", m.themeOffset)) + "\n")
	}
	for i := m.themeOffset; i < end; i++ {
		name := m.themes[i]
		label := name
		if name == m.themeName {
			label += " (current)"
		}
		switch {
		case i == m.themeCursor:
			b.WriteString(m.styles.TaskSelected.Render("▸ " + label))
		case name == m.themeName:
			b.WriteString("  " + m.styles.Success.Render(label))
		default:
			b.WriteString("  " + m.styles.StatValue.Render(label))
		}
		b.WriteString("\n")
	}
	if rest := len(m.themes) - end; rest > 0 {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  ↓ %d more", rest)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("↑/↓ navigate  Enter select  Esc cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *ConfigModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true while the theme picker is open
func (m ConfigModel) IsInputMode() bool {
	return m.selectingTheme
}

func (m ConfigModel) loadConfig() tea.Cmd {
	return func() tea.Msg {
		snap := m.services.Store.Snapshot()
		return configLoadedMsg{
			config: m.services.Config.Get(),
			path:   m.services.Config.GetPath(),
			exists: m.services.Config.Exists(),
			counts: storeCounts{
				projects:  len(snap.Projects),
				employees: len(snap.Employees),
				tasks:     len(snap.Tasks),
				entries:   len(snap.TimeEntries),
			},
		}
	}
}

func (m ConfigModel) line(label, value string) string {
	return m.styles.StatLabel.Render(label+":") + " " + m.styles.StatValue.Render(value) + "\n"
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
