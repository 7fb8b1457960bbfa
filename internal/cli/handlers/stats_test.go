package handlers

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/xolan/timora/internal/stats"
)

func TestShowStats_Text(t *testing.T) {
	deps, stdout, _, exitCode := setupSeededDeps(t)

	ShowStats(deps, "text")

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	output := stdout.String()
	for _, want := range []string{
		"Time statistics:",
		"Total hours:   4.75",
		"Tasks:         7",
		"Employees:     3",
		"Time entries:  6",
		"Website Redesign",
		"Sam Rivera",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got %q", want, output)
		}
	}

	// busiest project first
	web := strings.Index(output, "Website Redesign")
	app := strings.Index(output, "Mobile App")
	ops := strings.Index(output, "Internal Tools")
	if !(web < app && app < ops) {
		t.Errorf("projects not sorted by hours: %q", output)
	}
}

func TestShowStats_Empty(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	ShowStats(deps, "")

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "No projects found") {
		t.Errorf("expected 'No projects found' in output, got %q", stdout.String())
	}
}

func TestShowStats_JSON(t *testing.T) {
	deps, stdout, _, exitCode := setupSeededDeps(t)

	ShowStats(deps, "json")

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	var report stats.Report
	if err := json.Unmarshal(stdout.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, stdout.String())
	}
	if len(report.Projects) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(report.Projects))
	}
	if report.Projects[0].ProjectID != "proj-web" {
		t.Errorf("first project = %q, expected proj-web", report.Projects[0].ProjectID)
	}
	if report.Totals.TotalTimeEntries != 6 {
		t.Errorf("TotalTimeEntries = %d, expected 6", report.Totals.TotalTimeEntries)
	}
}

func TestShowStats_CSV(t *testing.T) {
	deps, stdout, _, exitCode := setupSeededDeps(t)

	ShowStats(deps, "CSV")

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	records, err := csv.NewReader(strings.NewReader(stdout.String())).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV output: %v", err)
	}
	if records[0][0] != "project_id" {
		t.Errorf("unexpected header: %v", records[0])
	}
	// web has two employees, app and ops one each
	if len(records) != 5 {
		t.Errorf("expected 5 records, got %d: %v", len(records), records)
	}
	if records[1][0] != "proj-web" || records[1][4] != "emp-2" || records[1][5] != "9000" {
		t.Errorf("unexpected first row: %v", records[1])
	}
}

func TestShowStats_UnknownFormat(t *testing.T) {
	deps, _, stderr, exitCode := setupSeededDeps(t)

	ShowStats(deps, "xml")

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "unknown format") {
		t.Errorf("expected 'unknown format' in stderr, got %q", stderr.String())
	}
}
