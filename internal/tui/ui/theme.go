package ui

import (
	"sort"

	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is used when the configured theme is empty or unknown
const DefaultTheme = "dracula"

// ThemeProvider owns the bubbletint registry backing the TUI palette and
// the sorted theme list shown by the config view's selector
type ThemeProvider struct {
	registry *tint.Registry
	ids      []string
}

// NewThemeProvider selects initialTheme, falling back to DefaultTheme
func NewThemeProvider(initialTheme string) *ThemeProvider {
	tints := tint.DefaultTints()

	fallback := findTint(tints, DefaultTheme)
	if fallback == nil && len(tints) > 0 {
		fallback = tints[0]
	}

	registry := tint.NewRegistry(fallback, tints...)
	if initialTheme != "" {
		registry.SetTintID(initialTheme)
	}

	ids := registry.TintIDs()
	sort.Strings(ids)
	return &ThemeProvider{registry: registry, ids: ids}
}

func findTint(tints []tint.Tint, id string) tint.Tint {
	for _, t := range tints {
		if t.ID() == id {
			return t
		}
	}
	return nil
}

// SetTheme switches to the named theme. Unknown names leave the current
// theme in place and return false.
func (tp *ThemeProvider) SetTheme(name string) bool {
	return tp.registry.SetTintID(name)
}

// CurrentName returns the id of the active theme, as stored in config.toml
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// AvailableThemes returns a sorted copy of every theme id
func (tp *ThemeProvider) AvailableThemes() []string {
	return append([]string(nil), tp.ids...)
}

// IndexOf returns the position of name in AvailableThemes, or -1
func (tp *ThemeProvider) IndexOf(name string) int {
	i := sort.SearchStrings(tp.ids, name)
	if i < len(tp.ids) && tp.ids[i] == name {
		return i
	}
	return -1
}

// Styles builds the TUI styles from the active theme
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}
