package model

import "time"

// DefaultEventColor is used for calendar events whose task has no known project
const DefaultEventColor = "#6b7280"

// Project groups tasks for reporting. Color is a display token only.
type Project struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Color       string    `json:"color" yaml:"color"`
	CreatedAt   time.Time `json:"createdAt" yaml:"created_at,omitempty"`
}

// Employee is a person tasks can be assigned to and time entries attributed to
type Employee struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Email  string `json:"email" yaml:"email"`
	Avatar string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Role   string `json:"role,omitempty" yaml:"role,omitempty"`
}

// CalendarEvent is a task placed on the calendar at its due date
type CalendarEvent struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"taskId"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Color     string    `json:"color"`
	ProjectID string    `json:"projectId,omitempty"`
	Priority  Priority  `json:"priority"`
}
