package cli

import (
	"testing"
	"time"

	"github.com/xolan/timora/internal/model"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{65, "01:05"},
		{3599, "59:59"},
		{3600, "01:00:00"},
		{3725, "01:02:05"},
		{36000, "10:00:00"},
		{-3, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatClock(tt.seconds); got != tt.expected {
				t.Errorf("FormatClock(%d) = %q, expected %q", tt.seconds, got, tt.expected)
			}
		})
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0.00"},
		{1800, "0.50"},
		{5400, "1.50"},
		{7200, "2.00"},
		{60, "0.02"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatHours(tt.seconds); got != tt.expected {
				t.Errorf("FormatHours(%d) = %q, expected %q", tt.seconds, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0s"},
		{45, "45s"},
		{60, "1m"},
		{1800, "30m"},
		{3600, "1h"},
		{5400, "1h 30m"},
		{7259, "2h 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatDuration(tt.seconds); got != tt.expected {
				t.Errorf("FormatDuration(%d) = %q, expected %q", tt.seconds, got, tt.expected)
			}
		})
	}
}

func TestFormatDueDate(t *testing.T) {
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.Local)
	at := func(days int) *time.Time {
		d := now.AddDate(0, 0, days)
		return &d
	}
	lastYear := time.Date(2023, time.December, 24, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		due      *time.Time
		expected string
	}{
		{"none", nil, "-"},
		{"today", at(0), "today"},
		{"tomorrow", at(1), "tomorrow"},
		{"yesterday", at(-1), "yesterday"},
		{"same year", at(10), "Jun 20"},
		{"other year", &lastYear, "Dec 24, 2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDueDate(tt.due, now); got != tt.expected {
				t.Errorf("FormatDueDate() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestFormatStartTime(t *testing.T) {
	now := time.Date(2024, time.June, 10, 15, 0, 0, 0, time.Local)

	if got := FormatStartTime(now.Add(-time.Hour), now); got != "today at 2:00 PM" {
		t.Errorf("FormatStartTime(today) = %q", got)
	}
	if got := FormatStartTime(now.AddDate(0, 0, -1), now); got != "Sun Jun 9 at 3:00 PM" {
		t.Errorf("FormatStartTime(yesterday) = %q", got)
	}
}

func TestPluralize(t *testing.T) {
	if Pluralize("task", 1) != "task" || Pluralize("task", 0) != "tasks" {
		t.Error("unexpected pluralization")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		max      int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"abcdef", 3, "abc"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.max); got != tt.expected {
			t.Errorf("Truncate(%q, %d) = %q, expected %q", tt.input, tt.max, got, tt.expected)
		}
	}
}

func TestPriorityLabel(t *testing.T) {
	if PriorityLabel(model.PriorityUrgent) != "URGENT" || PriorityLabel("") != "-" {
		t.Error("unexpected priority labels")
	}
}
