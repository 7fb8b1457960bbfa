package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"

	"github.com/xolan/timora/internal/model"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Content area
	ViewTitle lipgloss.Style
	Muted     lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Task list
	TaskSelected lipgloss.Style
	TaskNormal   lipgloss.Style
	TaskDone     lipgloss.Style
	TaskProject  lipgloss.Style
	TaskAssignee lipgloss.Style
	TaskDue      lipgloss.Style

	// Priority badges
	PriorityLow    lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityHigh   lipgloss.Style
	PriorityUrgent lipgloss.Style

	// Calendar
	CalendarHeader  lipgloss.Style
	CalendarDay     lipgloss.Style
	CalendarOutside lipgloss.Style
	CalendarToday   lipgloss.Style
	CalendarBusy    lipgloss.Style
	CalendarCursor  lipgloss.Style

	// Timer
	TimerRunning lipgloss.Style
	TimerPaused  lipgloss.Style
	TimerIdle    lipgloss.Style
	TimerClock   lipgloss.Style

	// Stats
	StatLabel lipgloss.Style
	StatValue lipgloss.Style
	StatBar   lipgloss.Style

	// Input
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Dialog
	Dialog lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// Priority returns the badge style for p
func (s Styles) Priority(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityUrgent:
		return s.PriorityUrgent
	case model.PriorityHigh:
		return s.PriorityHigh
	case model.PriorityLow:
		return s.PriorityLow
	}
	return s.PriorityMedium
}

// palette maps semantic roles to colors
type palette struct {
	primary   lipgloss.TerminalColor
	secondary lipgloss.TerminalColor
	accent    lipgloss.TerminalColor
	muted     lipgloss.TerminalColor
	success   lipgloss.TerminalColor
	warning   lipgloss.TerminalColor
	danger    lipgloss.TerminalColor
	fg        lipgloss.TerminalColor
	bg        lipgloss.TerminalColor
	selection lipgloss.TerminalColor
}

// DefaultStyles returns the TUI styles for a 256-color terminal
func DefaultStyles() Styles {
	return newStyles(palette{
		primary:   lipgloss.Color("99"),  // Purple
		secondary: lipgloss.Color("39"),  // Cyan
		accent:    lipgloss.Color("212"), // Pink
		muted:     lipgloss.Color("240"), // Gray
		success:   lipgloss.Color("82"),
		warning:   lipgloss.Color("214"),
		danger:    lipgloss.Color("196"),
		fg:        lipgloss.Color("252"),
		bg:        lipgloss.Color("236"),
		selection: lipgloss.Color("237"),
	})
}

// NewStylesFromRegistry creates a Styles struct using colors from a bubbletint registry.
// Purple carries titles and tabs, cyan keys and projects, bright purple the
// timer clock and bright black everything muted.
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return newStyles(palette{
		primary:   r.Purple(),
		secondary: r.Cyan(),
		accent:    r.BrightPurple(),
		muted:     r.BrightBlack(),
		success:   r.Green(),
		warning:   r.Yellow(),
		danger:    r.Red(),
		fg:        r.Fg(),
		bg:        r.Bg(),
		selection: r.BrightBlack(),
	})
}

func newStyles(p palette) Styles {
	badge := lipgloss.NewStyle().Width(8).Bold(true)

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.muted),
		TabActive: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),
		Muted: lipgloss.NewStyle().
			Foreground(p.muted),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(p.muted),

		TaskSelected: lipgloss.NewStyle().
			Background(p.selection).
			Bold(true),
		TaskNormal: lipgloss.NewStyle().
			Foreground(p.fg),
		TaskDone: lipgloss.NewStyle().
			Foreground(p.muted).
			Strikethrough(true),
		TaskProject: lipgloss.NewStyle().
			Foreground(p.secondary),
		TaskAssignee: lipgloss.NewStyle().
			Foreground(p.primary),
		TaskDue: lipgloss.NewStyle().
			Foreground(p.muted),

		PriorityLow:    badge.Foreground(p.muted),
		PriorityMedium: badge.Foreground(p.secondary),
		PriorityHigh:   badge.Foreground(p.warning),
		PriorityUrgent: badge.Foreground(p.danger),

		CalendarHeader: lipgloss.NewStyle().
			Foreground(p.muted).
			Width(6).
			Align(lipgloss.Center),
		CalendarDay: lipgloss.NewStyle().
			Foreground(p.fg).
			Width(6).
			Align(lipgloss.Center),
		CalendarOutside: lipgloss.NewStyle().
			Foreground(p.muted).
			Faint(true).
			Width(6).
			Align(lipgloss.Center),
		CalendarToday: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			Width(6).
			Align(lipgloss.Center),
		CalendarBusy: lipgloss.NewStyle().
			Foreground(p.secondary).
			Underline(true).
			Width(6).
			Align(lipgloss.Center),
		CalendarCursor: lipgloss.NewStyle().
			Background(p.selection).
			Bold(true).
			Width(6).
			Align(lipgloss.Center),

		TimerRunning: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		TimerPaused: lipgloss.NewStyle().
			Foreground(p.warning).
			Bold(true),
		TimerIdle: lipgloss.NewStyle().
			Foreground(p.muted),
		TimerClock: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent),

		StatLabel: lipgloss.NewStyle().
			Foreground(p.muted).
			Width(20),
		StatValue: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),
		StatBar: lipgloss.NewStyle().
			Foreground(p.primary),

		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.muted).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.primary).
			Padding(0, 1),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2).
			Width(50),

		Error: lipgloss.NewStyle().
			Foreground(p.danger),
		Warning: lipgloss.NewStyle().
			Foreground(p.warning),
		Success: lipgloss.NewStyle().
			Foreground(p.success),
	}
}
