// Package stats aggregates tracked time per project.
package stats

import (
	"sort"

	"github.com/xolan/timora/internal/model"
)

// EmployeeShare is the time one employee tracked against a project
type EmployeeShare struct {
	EmployeeID string `json:"employeeId"`
	Seconds    int    `json:"seconds"`
}

// ProjectTimeStats contains the tracked time for a single project
type ProjectTimeStats struct {
	ProjectID   string  `json:"projectId"`
	ProjectName string  `json:"projectName"`
	TotalHours  float64 `json:"totalHours"`
	TaskCount   int     `json:"taskCount"`
	// EmployeeHours maps employee id to summed seconds
	EmployeeHours map[string]int `json:"employeeHours"`
	// Employees holds EmployeeHours ordered by seconds descending
	Employees []EmployeeShare `json:"employees"`
}

// Seconds returns the project total in whole seconds
func (p ProjectTimeStats) Seconds() int {
	total := 0
	for _, share := range p.Employees {
		total += share.Seconds
	}
	return total
}

// Clone returns a copy that shares no map or slice with p
func (p ProjectTimeStats) Clone() ProjectTimeStats {
	c := p
	c.EmployeeHours = make(map[string]int, len(p.EmployeeHours))
	for id, secs := range p.EmployeeHours {
		c.EmployeeHours[id] = secs
	}
	c.Employees = append([]EmployeeShare{}, p.Employees...)
	return c
}

// Totals contains the global figures shown above the project breakdown
type Totals struct {
	TotalHours       float64 `json:"totalHours"`
	TotalTasks       int     `json:"totalTasks"`
	TotalEmployees   int     `json:"totalEmployees"`
	TotalTimeEntries int     `json:"totalTimeEntries"`
	// OrphanSeconds is time from entries not attributed to any listed project
	OrphanSeconds int `json:"orphanSeconds"`
}

// Report combines totals with the per-project breakdown sorted for display
type Report struct {
	Totals   Totals             `json:"totals"`
	Projects []ProjectTimeStats `json:"projects"`
}

// Clone returns a deep copy of r
func (r Report) Clone() Report {
	c := Report{Totals: r.Totals, Projects: make([]ProjectTimeStats, len(r.Projects))}
	for i, p := range r.Projects {
		c.Projects[i] = p.Clone()
	}
	return c
}

// ComputeProjectStats returns one report per project, in input order.
// Entries whose task is unknown or belongs to no listed project are skipped.
func ComputeProjectStats(projects []model.Project, tasks []model.Task, entries []model.TimeEntry) []ProjectTimeStats {
	result := make([]ProjectTimeStats, 0, len(projects))
	if len(projects) == 0 {
		return result
	}

	taskProject := make(map[string]string, len(tasks))
	taskCounts := make(map[string]int, len(projects))
	for _, t := range tasks {
		if t.ProjectID == "" {
			continue
		}
		taskProject[t.ID] = t.ProjectID
		taskCounts[t.ProjectID]++
	}

	// entries grouped by project, preserving input order
	byProject := make(map[string][]model.TimeEntry, len(projects))
	for _, e := range entries {
		projectID, ok := taskProject[e.TaskID]
		if !ok {
			continue
		}
		byProject[projectID] = append(byProject[projectID], e)
	}

	for _, p := range projects {
		stat := ProjectTimeStats{
			ProjectID:     p.ID,
			ProjectName:   p.Name,
			TaskCount:     taskCounts[p.ID],
			EmployeeHours: make(map[string]int),
			Employees:     []EmployeeShare{},
		}

		seconds := 0
		var order []string
		for _, e := range byProject[p.ID] {
			if _, seen := stat.EmployeeHours[e.EmployeeID]; !seen {
				order = append(order, e.EmployeeID)
			}
			stat.EmployeeHours[e.EmployeeID] += e.Duration
			seconds += e.Duration
		}
		stat.TotalHours = float64(seconds) / 3600

		for _, id := range order {
			stat.Employees = append(stat.Employees, EmployeeShare{EmployeeID: id, Seconds: stat.EmployeeHours[id]})
		}
		sort.SliceStable(stat.Employees, func(i, j int) bool {
			return stat.Employees[i].Seconds > stat.Employees[j].Seconds
		})

		result = append(result, stat)
	}

	return result
}

// SortByTotalHours returns a copy ordered by total hours descending.
// Projects with equal totals keep their input order.
func SortByTotalHours(stats []ProjectTimeStats) []ProjectTimeStats {
	sorted := make([]ProjectTimeStats, len(stats))
	copy(sorted, stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalHours > sorted[j].TotalHours
	})
	return sorted
}

// ComputeTotals computes the global figures. The entry count includes
// entries that no project accounts for.
func ComputeTotals(projectStats []ProjectTimeStats, tasks []model.Task, employees []model.Employee, entries []model.TimeEntry) Totals {
	totals := Totals{
		TotalTasks:       len(tasks),
		TotalEmployees:   len(employees),
		TotalTimeEntries: len(entries),
	}

	attributed := 0
	for _, p := range projectStats {
		totals.TotalHours += p.TotalHours
		attributed += p.Seconds()
	}

	all := 0
	for _, e := range entries {
		all += e.Duration
	}
	totals.OrphanSeconds = all - attributed

	return totals
}

// BuildReport computes totals and the display-ordered project breakdown
func BuildReport(projects []model.Project, tasks []model.Task, employees []model.Employee, entries []model.TimeEntry) Report {
	perProject := ComputeProjectStats(projects, tasks, entries)
	return Report{
		Totals:   ComputeTotals(perProject, tasks, employees, entries),
		Projects: SortByTotalHours(perProject),
	}
}

// TaskSeconds sums the tracked time of a single task
func TaskSeconds(taskID string, entries []model.TimeEntry) int {
	total := 0
	for _, e := range entries {
		if e.TaskID == taskID {
			total += e.Duration
		}
	}
	return total
}
