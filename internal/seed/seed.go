// Package seed reads and writes YAML datasets used to bootstrap the store,
// and provides the built-in demo dataset.
package seed

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xolan/timora/internal/model"
	"github.com/xolan/timora/internal/store"
)

// Dataset is the on-disk shape of a seed file
type Dataset struct {
	Projects    []model.Project   `yaml:"projects,omitempty"`
	Employees   []model.Employee  `yaml:"employees,omitempty"`
	Tasks       []model.Task      `yaml:"tasks,omitempty"`
	TimeEntries []model.TimeEntry `yaml:"time_entries,omitempty"`
}

// Empty reports whether the dataset carries no records
func (d Dataset) Empty() bool {
	return len(d.Projects) == 0 && len(d.Employees) == 0 && len(d.Tasks) == 0 && len(d.TimeEntries) == 0
}

// Result reports which collections were loaded by Apply
type Result struct {
	Projects    bool
	Employees   bool
	Tasks       bool
	TimeEntries bool
}

// Any reports whether at least one collection was loaded
func (r Result) Any() bool {
	return r.Projects || r.Employees || r.Tasks || r.TimeEntries
}

// Parse decodes a YAML dataset
func Parse(data []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return ds, nil
}

// Load reads and decodes the YAML dataset at path
func Load(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Marshal encodes ds as YAML
func Marshal(ds Dataset) ([]byte, error) {
	data, err := yaml.Marshal(ds)
	if err != nil {
		return nil, fmt.Errorf("failed to encode seed data: %w", err)
	}
	return data, nil
}

// Apply bulk-loads ds into st. Each collection is loaded only when it is
// empty in the store; non-empty collections are left untouched.
func Apply(st *store.Store, ds Dataset, logger *slog.Logger) (Result, error) {
	var res Result
	var err error

	if res.Projects, err = st.SeedProjects(ds.Projects); err != nil {
		return res, fmt.Errorf("failed to seed projects: %w", err)
	}
	if res.Employees, err = st.SeedEmployees(ds.Employees); err != nil {
		return res, fmt.Errorf("failed to seed employees: %w", err)
	}
	if res.Tasks, err = st.SeedTasks(ds.Tasks); err != nil {
		return res, fmt.Errorf("failed to seed tasks: %w", err)
	}
	if res.TimeEntries, err = st.SeedTimeEntries(ds.TimeEntries); err != nil {
		return res, fmt.Errorf("failed to seed time entries: %w", err)
	}

	logger.Info("seed applied",
		slog.Bool("projects", res.Projects),
		slog.Bool("employees", res.Employees),
		slog.Bool("tasks", res.Tasks),
		slog.Bool("time_entries", res.TimeEntries),
	)
	return res, nil
}
