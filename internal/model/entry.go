package model

import "time"

// TimeEntry records one finished timer session. Duration is in whole seconds.
// TaskID is not checked against the task collection.
type TimeEntry struct {
	ID          string     `json:"id" yaml:"id"`
	TaskID      string     `json:"taskId" yaml:"task_id"`
	ProjectID   string     `json:"projectId,omitempty" yaml:"project_id,omitempty"`
	EmployeeID  string     `json:"employeeId" yaml:"employee_id"`
	StartTime   time.Time  `json:"startTime" yaml:"start_time"`
	EndTime     *time.Time `json:"endTime,omitempty" yaml:"end_time,omitempty"`
	Duration    int        `json:"duration" yaml:"duration"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"created_at,omitempty"`
}

// Clone returns a deep copy of the entry
func (e TimeEntry) Clone() TimeEntry {
	if e.EndTime != nil {
		t := *e.EndTime
		e.EndTime = &t
	}
	return e
}
