// Package cli provides the CLI presentation layer for timora.
// It handles command-line output formatting and user interaction.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/xolan/timora/internal/model"
	"github.com/xolan/timora/internal/timeutil"
)

// FormatClock formats seconds as a timer display.
// Examples: "00:05", "59:59", "01:00:00"
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// FormatHours formats seconds as hours with two decimals.
// Examples: "0.00", "1.50"
func FormatHours(seconds int) string {
	return fmt.Sprintf("%.2f", float64(seconds)/3600)
}

// FormatDuration formats seconds as a human-readable string
// Examples: "45s", "30m", "2h", "1h 30m"
func FormatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatDueDate formats an optional due date relative to now
func FormatDueDate(due *time.Time, now time.Time) string {
	if due == nil {
		return "-"
	}
	switch {
	case timeutil.SameDay(*due, now):
		return "today"
	case timeutil.SameDay(*due, now.AddDate(0, 0, 1)):
		return "tomorrow"
	case timeutil.SameDay(*due, now.AddDate(0, 0, -1)):
		return "yesterday"
	case due.Year() == now.Year():
		return due.Format("Jan 2")
	}
	return due.Format("Jan 2, 2006")
}

// FormatStartTime formats a start time for display
func FormatStartTime(startedAt, now time.Time) string {
	startTime := startedAt.Format("3:04 PM")
	if timeutil.SameDay(startedAt, now) {
		return fmt.Sprintf("today at %s", startTime)
	}
	return fmt.Sprintf("%s at %s", startedAt.Format("Mon Jan 2"), startTime)
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// Truncate shortens s to max runes, marking the cut with an ellipsis
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// PriorityLabel returns the upper-case label shown in task lists
func PriorityLabel(p model.Priority) string {
	if p == "" {
		return "-"
	}
	return strings.ToUpper(string(p))
}
