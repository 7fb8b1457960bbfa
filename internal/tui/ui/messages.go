package ui

// ThemeChangeRequestMsg is sent when a theme change is requested.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// DataChangedMsg is broadcast after any view mutates tasks, projects or
// time entries so that the other views reload.
type DataChangedMsg struct{}

// TimerTickMsg is one second of timer progress. Session identifies the
// running period that scheduled it; ticks from an older session are dropped.
type TimerTickMsg struct {
	Session int
}
