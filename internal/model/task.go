// Package model defines the domain records shared by the store, the timer,
// the statistics aggregator and the presentation layers.
package model

import "time"

// Priority is the urgency of a task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists every priority from least to most urgent
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Valid reports whether p is a known priority
func (p Priority) Valid() bool {
	return p.Rank() > 0
}

// Rank orders priorities for display (urgent first when sorted descending).
// Unknown priorities rank 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Status is the lifecycle state of a task
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists every task status
var Statuses = []Status{StatusTodo, StatusInProgress, StatusCompleted, StatusCancelled}

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Rank orders statuses for the daily list: in-progress, todo, completed, cancelled.
func (s Status) Rank() int {
	switch s {
	case StatusInProgress:
		return 3
	case StatusTodo:
		return 2
	case StatusCompleted:
		return 1
	}
	return 0
}

// Task is a unit of work that time can be tracked against
type Task struct {
	ID             string     `json:"id" yaml:"id"`
	Title          string     `json:"title" yaml:"title"`
	Description    string     `json:"description,omitempty" yaml:"description,omitempty"`
	Priority       Priority   `json:"priority" yaml:"priority"`
	Status         Status     `json:"status" yaml:"status"`
	ProjectID      string     `json:"projectId,omitempty" yaml:"project_id,omitempty"`
	AssignedTo     string     `json:"assignedTo,omitempty" yaml:"assigned_to,omitempty"`
	DueDate        *time.Time `json:"dueDate,omitempty" yaml:"due_date,omitempty"`
	EstimatedHours *float64   `json:"estimatedHours,omitempty" yaml:"estimated_hours,omitempty"`
	CreatedAt      time.Time  `json:"createdAt" yaml:"created_at,omitempty"`
	UpdatedAt      time.Time  `json:"updatedAt" yaml:"updated_at,omitempty"`
}

// Clone returns a deep copy so callers cannot alias pointer fields
func (t Task) Clone() Task {
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
	if t.EstimatedHours != nil {
		h := *t.EstimatedHours
		t.EstimatedHours = &h
	}
	return t
}
