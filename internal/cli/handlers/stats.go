package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/xolan/timora/internal/cli"
	"github.com/xolan/timora/internal/service"
)

// Stats output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// ShowStats prints the per-project time report in the given format
func ShowStats(deps *cli.Deps, format string) {
	result := deps.Services.Stats.Report()

	var err error
	switch strings.ToLower(format) {
	case "", FormatText:
		displayStats(deps, result)
	case FormatJSON:
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(result.Report)
	case FormatCSV:
		err = writeStatsCSV(deps, result)
	default:
		err = fmt.Errorf("unknown format %q (use text, json or csv)", format)
	}

	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
	}
}

func displayStats(deps *cli.Deps, result service.StatsResult) {
	totals := result.Totals
	names := deps.Services.Employee.Names()

	_, _ = fmt.Fprintln(deps.Stdout, "Time statistics:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total hours:   %.2f\n", totals.TotalHours)
	_, _ = fmt.Fprintf(deps.Stdout, "Tasks:         %d\n", totals.TotalTasks)
	_, _ = fmt.Fprintf(deps.Stdout, "Employees:     %d\n", totals.TotalEmployees)
	_, _ = fmt.Fprintf(deps.Stdout, "Time entries:  %d\n", totals.TotalTimeEntries)
	if totals.OrphanSeconds > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Unassigned:    %s\n", cli.FormatDuration(totals.OrphanSeconds))
	}

	if len(result.Projects) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "\nNo projects found")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	for _, p := range result.Projects {
		_, _ = fmt.Fprintf(deps.Stdout, "%-28s %8.2fh  %d %s\n",
			cli.Truncate(p.ProjectName, 28), p.TotalHours, p.TaskCount, cli.Pluralize("task", p.TaskCount))
		for _, share := range p.Employees {
			name := names[share.EmployeeID]
			if name == "" {
				name = share.EmployeeID
			}
			_, _ = fmt.Fprintf(deps.Stdout, "  %-26s %8s\n", cli.Truncate(name, 26), cli.FormatDuration(share.Seconds))
		}
	}
}

func writeStatsCSV(deps *cli.Deps, result service.StatsResult) error {
	w := csv.NewWriter(deps.Stdout)
	if err := w.Write([]string{"project_id", "project_name", "total_hours", "task_count", "employee_id", "seconds"}); err != nil {
		return err
	}
	for _, p := range result.Projects {
		hours := strconv.FormatFloat(p.TotalHours, 'f', 2, 64)
		tasks := strconv.Itoa(p.TaskCount)
		if len(p.Employees) == 0 {
			if err := w.Write([]string{p.ProjectID, p.ProjectName, hours, tasks, "", "0"}); err != nil {
				return err
			}
			continue
		}
		for _, share := range p.Employees {
			row := []string{p.ProjectID, p.ProjectName, hours, tasks, share.EmployeeID, strconv.Itoa(share.Seconds)}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}
