package model

import (
	"errors"
	"time"
)

// Validation errors shared by adds and patches
var (
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrNegativeHours   = errors.New("estimated hours cannot be negative")
	ErrNegativeSeconds = errors.New("duration cannot be negative")
)

// TaskPatch is a partial update for a Task. Nil fields are left unchanged.
// A pointer to "" clears ProjectID, AssignedTo or Description.
type TaskPatch struct {
	Title          *string
	Description    *string
	Priority       *Priority
	Status         *Status
	ProjectID      *string
	AssignedTo     *string
	DueDate        *time.Time
	ClearDueDate   bool
	EstimatedHours *float64
	ClearEstimate  bool
}

// Validate checks every set field before anything is applied
func (p TaskPatch) Validate() error {
	if p.Priority != nil && !p.Priority.Valid() {
		return ErrInvalidPriority
	}
	if p.Status != nil && !p.Status.Valid() {
		return ErrInvalidStatus
	}
	if p.EstimatedHours != nil && *p.EstimatedHours < 0 {
		return ErrNegativeHours
	}
	return nil
}

// Apply merges the patch into t. Call Validate first.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.ProjectID != nil {
		t.ProjectID = *p.ProjectID
	}
	if p.AssignedTo != nil {
		t.AssignedTo = *p.AssignedTo
	}
	if p.ClearDueDate {
		t.DueDate = nil
	} else if p.DueDate != nil {
		d := *p.DueDate
		t.DueDate = &d
	}
	if p.ClearEstimate {
		t.EstimatedHours = nil
	} else if p.EstimatedHours != nil {
		h := *p.EstimatedHours
		t.EstimatedHours = &h
	}
}

// ProjectPatch is a partial update for a Project
type ProjectPatch struct {
	Name        *string
	Description *string
	Color       *string
}

// Apply merges the patch into p
func (pp ProjectPatch) Apply(p *Project) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Color != nil {
		p.Color = *pp.Color
	}
}

// TimeEntryPatch is a partial update for a TimeEntry
type TimeEntryPatch struct {
	TaskID      *string
	ProjectID   *string
	EmployeeID  *string
	StartTime   *time.Time
	EndTime     *time.Time
	Duration    *int
	Description *string
}

// Validate checks the patch before it is applied
func (p TimeEntryPatch) Validate() error {
	if p.Duration != nil && *p.Duration < 0 {
		return ErrNegativeSeconds
	}
	return nil
}

// Apply merges the patch into e. Call Validate first.
func (p TimeEntryPatch) Apply(e *TimeEntry) {
	if p.TaskID != nil {
		e.TaskID = *p.TaskID
	}
	if p.ProjectID != nil {
		e.ProjectID = *p.ProjectID
	}
	if p.EmployeeID != nil {
		e.EmployeeID = *p.EmployeeID
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		t := *p.EndTime
		e.EndTime = &t
	}
	if p.Duration != nil {
		e.Duration = *p.Duration
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
}

// Ptr returns a pointer to v; handy for building patches
func Ptr[T any](v T) *T {
	return &v
}
