// Package service provides the business logic layer for timora.
// It wraps the entity store, the timer, the tick driver and the statistics
// aggregator, providing one API for the CLI, the TUI and the MCP server.
package service

import (
	"time"

	"github.com/xolan/timora/internal/model"
	"github.com/xolan/timora/internal/stats"
	"github.com/xolan/timora/internal/timer"
)

// TimerStatus represents the current state of the timer together with the
// task it is bound to
type TimerStatus struct {
	State timer.State
	// Task is nil when the timer is idle or bound to an unknown task
	Task    *model.Task
	Project *model.Project
}

// Phase returns the resting state of the timer
func (s TimerStatus) Phase() timer.Phase {
	return s.State.Phase()
}

// TaskFilter narrows the task list. Empty fields match everything.
type TaskFilter struct {
	// Search matches title or description, case-insensitively
	Search string
	// Status is a task status or "all"
	Status string
	// Assignee is an employee id, "all", or "none" for unassigned tasks
	Assignee string
}

// CalendarDay is one cell of the month grid
type CalendarDay struct {
	Date    time.Time
	InMonth bool
	IsToday bool
	Events  []model.CalendarEvent
}

// CalendarMonth is a month grid of whole weeks
type CalendarMonth struct {
	Month time.Time
	Weeks [][]CalendarDay
}

// TaskTime summarises the time tracked against one task
type TaskTime struct {
	TaskID       string
	TotalSeconds int
	// Recent holds the newest entries first
	Recent []model.TimeEntry
}

// StatsResult is the statistics report plus the store version it reflects
type StatsResult struct {
	stats.Report
	Version uint64
}
