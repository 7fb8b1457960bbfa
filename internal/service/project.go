package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/xolan/timora/internal/model"
	"github.com/xolan/timora/internal/store"
)

// ErrEmptyName is returned when a project or employee has no name
var ErrEmptyName = errors.New("name cannot be empty")

// ProjectService provides operations for managing projects
type ProjectService struct {
	store *store.Store
	newID func() string
}

// NewProjectService creates a new ProjectService
func NewProjectService(st *store.Store, newID func() string) *ProjectService {
	if newID == nil {
		newID = uuid.NewString
	}
	return &ProjectService{store: st, newID: newID}
}

// List returns all projects
func (s *ProjectService) List() []model.Project {
	return s.store.Projects()
}

// Get returns the project with the given id
func (s *ProjectService) Get(id string) (model.Project, bool) {
	return s.store.Project(id)
}

// Create adds a project. An empty color falls back to the default event color.
func (s *ProjectService) Create(p model.Project) (model.Project, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return model.Project{}, ErrEmptyName
	}
	if p.ID == "" {
		p.ID = s.newID()
	}
	if p.Color == "" {
		p.Color = model.DefaultEventColor
	}
	created, err := s.store.AddProject(p)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

// Update merges patch into the project. Returns false if the id is unknown.
func (s *ProjectService) Update(id string, patch model.ProjectPatch) (bool, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return false, ErrEmptyName
	}
	return s.store.UpdateProject(id, patch), nil
}

// EmployeeService provides operations for managing employees
type EmployeeService struct {
	store *store.Store
	newID func() string
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(st *store.Store, newID func() string) *EmployeeService {
	if newID == nil {
		newID = uuid.NewString
	}
	return &EmployeeService{store: st, newID: newID}
}

// List returns all employees
func (s *EmployeeService) List() []model.Employee {
	return s.store.Employees()
}

// Get returns the employee with the given id
func (s *EmployeeService) Get(id string) (model.Employee, bool) {
	for _, e := range s.store.Employees() {
		if e.ID == id {
			return e, true
		}
	}
	return model.Employee{}, false
}

// Create adds an employee
func (s *EmployeeService) Create(e model.Employee) (model.Employee, error) {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return model.Employee{}, ErrEmptyName
	}
	if e.ID == "" {
		e.ID = s.newID()
	}
	created, err := s.store.AddEmployee(e)
	if err != nil {
		return model.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// Names maps employee ids to display names
func (s *EmployeeService) Names() map[string]string {
	names := make(map[string]string)
	for _, e := range s.store.Employees() {
		names[e.ID] = e.Name
	}
	return names
}
