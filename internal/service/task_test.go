package service

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/xolan/timora/internal/model"
)

func TestTaskService_Create(t *testing.T) {
	svcs, clock := newTestServices(t)

	task, err := svcs.Task.Create(model.Task{Title: "  Plan sprint  "})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if task.ID != "id-1" {
		t.Errorf("ID = %q, expected generated id", task.ID)
	}
	if task.Title != "Plan sprint" {
		t.Errorf("Title = %q, expected trimmed title", task.Title)
	}
	if task.Priority != model.PriorityMedium || task.Status != model.StatusTodo {
		t.Errorf("unexpected defaults: %s/%s", task.Priority, task.Status)
	}
	if !task.CreatedAt.Equal(clock.Now()) {
		t.Errorf("CreatedAt = %v", task.CreatedAt)
	}
}

func TestTaskService_CreateErrors(t *testing.T) {
	svcs, _ := newTestServices(t)

	if _, err := svcs.Task.Create(model.Task{Title: "   "}); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("blank title error = %v", err)
	}
	if _, err := svcs.Task.Create(model.Task{Title: "x", Priority: "critical"}); !errors.Is(err, model.ErrInvalidPriority) {
		t.Errorf("invalid priority error = %v", err)
	}
}

func TestTaskService_UpdateUnknownID(t *testing.T) {
	svcs, _ := newTestServices(t)
	addTask(t, svcs, model.Task{ID: "T1", Title: "Existing"})
	before := svcs.Task.List()

	ok, err := svcs.Task.Update("unknown-id", model.TaskPatch{Status: model.Ptr(model.StatusCompleted)})
	if err != nil || ok {
		t.Errorf("Update(unknown) = %v, %v; expected false, nil", ok, err)
	}
	if !reflect.DeepEqual(before, svcs.Task.List()) {
		t.Error("task collection changed")
	}
}

func TestTaskService_UpdateRejectsBlankTitle(t *testing.T) {
	svcs, _ := newTestServices(t)
	addTask(t, svcs, model.Task{ID: "T1", Title: "Existing"})

	if _, err := svcs.Task.Update("T1", model.TaskPatch{Title: model.Ptr(" ")}); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("error = %v, expected ErrEmptyTitle", err)
	}
}

func TestTaskService_Delete(t *testing.T) {
	svcs, _ := newTestServices(t)
	addTask(t, svcs, model.Task{ID: "T1", Title: "Remove me"})

	if !svcs.Task.Delete("T1") {
		t.Error("Delete() = false for existing task")
	}
	if svcs.Task.Delete("T1") {
		t.Error("Delete() = true for already deleted task")
	}
}

func TestTaskService_AssignUnassign(t *testing.T) {
	svcs, _ := newTestServices(t)
	emp, _ := svcs.Employee.Create(model.Employee{Name: "Alex"})
	addTask(t, svcs, model.Task{ID: "T1", Title: "Review"})

	ok, err := svcs.Task.Assign("T1", emp.ID)
	if err != nil || !ok {
		t.Fatalf("Assign() = %v, %v", ok, err)
	}
	if task, _ := svcs.Task.Get("T1"); task.AssignedTo != emp.ID {
		t.Errorf("AssignedTo = %q, expected %q", task.AssignedTo, emp.ID)
	}

	if _, err := svcs.Task.Assign("T1", "ghost"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("Assign(unknown employee) error = %v", err)
	}

	ok, err = svcs.Task.Unassign("T1")
	if err != nil || !ok {
		t.Fatalf("Unassign() = %v, %v", ok, err)
	}
	if task, _ := svcs.Task.Get("T1"); task.AssignedTo != "" {
		t.Errorf("AssignedTo = %q after unassign", task.AssignedTo)
	}

	if ok, _ := svcs.Task.Assign("missing-task", emp.ID); ok {
		t.Error("Assign() on unknown task reported success")
	}
}

func TestTaskService_ToggleComplete(t *testing.T) {
	svcs, _ := newTestServices(t)
	addTask(t, svcs, model.Task{ID: "T1", Title: "Ship", Status: model.StatusInProgress})

	task, err := svcs.Task.ToggleComplete("T1")
	if err != nil || task.Status != model.StatusCompleted {
		t.Fatalf("first toggle = %s, %v", task.Status, err)
	}
	task, err = svcs.Task.ToggleComplete("T1")
	if err != nil || task.Status != model.StatusTodo {
		t.Fatalf("second toggle = %s, %v", task.Status, err)
	}

	if _, err := svcs.Task.ToggleComplete("missing"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("toggle unknown error = %v", err)
	}
}

func TestTaskService_TodayOrdering(t *testing.T) {
	svcs, clock := newTestServices(t)
	today := clock.Now()
	tomorrow := today.AddDate(0, 0, 1)

	tasks := []model.Task{
		{ID: "done-urgent", Title: "a", Status: model.StatusCompleted, Priority: model.PriorityUrgent, DueDate: &today},
		{ID: "todo-low", Title: "b", Status: model.StatusTodo, Priority: model.PriorityLow, DueDate: &today},
		{ID: "progress-low", Title: "c", Status: model.StatusInProgress, Priority: model.PriorityLow, DueDate: &today},
		{ID: "todo-urgent", Title: "d", Status: model.StatusTodo, Priority: model.PriorityUrgent, DueDate: &today},
		{ID: "tomorrow", Title: "e", Status: model.StatusInProgress, Priority: model.PriorityUrgent, DueDate: &tomorrow},
		{ID: "no-date", Title: "f"},
		{ID: "todo-low-2", Title: "g", Status: model.StatusTodo, Priority: model.PriorityLow, DueDate: &today},
		{ID: "cancelled", Title: "h", Status: model.StatusCancelled, Priority: model.PriorityHigh, DueDate: &today},
	}
	for _, task := range tasks {
		addTask(t, svcs, task)
	}

	var got []string
	for _, task := range svcs.Task.Today() {
		got = append(got, task.ID)
	}
	want := []string{"progress-low", "todo-urgent", "todo-low", "todo-low-2", "done-urgent", "cancelled"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Today() = %v, expected %v", got, want)
	}
}

func TestProgress(t *testing.T) {
	tasks := []model.Task{
		{Status: model.StatusCompleted},
		{Status: model.StatusTodo},
		{Status: model.StatusCompleted},
	}
	done, total := Progress(tasks)
	if done != 2 || total != 3 {
		t.Errorf("Progress() = %d/%d, expected 2/3", done, total)
	}
}

func TestFilterTasks(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Title: "Fix Login bug", Status: model.StatusTodo, AssignedTo: "e1"},
		{ID: "2", Title: "Design", Description: "new LOGIN screen", Status: model.StatusInProgress, AssignedTo: "e2"},
		{ID: "3", Title: "Docs", Status: model.StatusTodo},
	}

	tests := []struct {
		name   string
		filter TaskFilter
		want   []string
	}{
		{"no filter", TaskFilter{}, []string{"1", "2", "3"}},
		{"all keywords", TaskFilter{Status: "all", Assignee: "all"}, []string{"1", "2", "3"}},
		{"search title and description", TaskFilter{Search: "login"}, []string{"1", "2"}},
		{"status", TaskFilter{Status: "todo"}, []string{"1", "3"}},
		{"assignee", TaskFilter{Assignee: "e2"}, []string{"2"}},
		{"unassigned", TaskFilter{Assignee: "none"}, []string{"3"}},
		{"combined", TaskFilter{Search: "login", Status: "todo", Assignee: "e1"}, []string{"1"}},
		{"no match", TaskFilter{Search: "deploy"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, task := range FilterTasks(tasks, tt.filter) {
				got = append(got, task.ID)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterTasks() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestProjectAndEmployeeServices(t *testing.T) {
	svcs, _ := newTestServices(t)

	project, err := svcs.Project.Create(model.Project{Name: "Ops"})
	if err != nil {
		t.Fatalf("Project.Create() error: %v", err)
	}
	if project.Color != model.DefaultEventColor {
		t.Errorf("Color = %q, expected default", project.Color)
	}
	if _, err := svcs.Project.Create(model.Project{}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("empty project name error = %v", err)
	}

	ok, err := svcs.Project.Update(project.ID, model.ProjectPatch{Color: model.Ptr("#ff0000")})
	if err != nil || !ok {
		t.Fatalf("Project.Update() = %v, %v", ok, err)
	}
	if p, _ := svcs.Project.Get(project.ID); p.Color != "#ff0000" {
		t.Errorf("Color = %q after update", p.Color)
	}
	if ok, _ := svcs.Project.Update("missing", model.ProjectPatch{Name: model.Ptr("x")}); ok {
		t.Error("Project.Update() on unknown id reported success")
	}

	emp, err := svcs.Employee.Create(model.Employee{Name: "Sam", Email: "sam@example.com"})
	if err != nil {
		t.Fatalf("Employee.Create() error: %v", err)
	}
	if got, ok := svcs.Employee.Get(emp.ID); !ok || got.Email != "sam@example.com" {
		t.Errorf("Employee.Get() = %+v, %v", got, ok)
	}
	if names := svcs.Employee.Names(); names[emp.ID] != "Sam" {
		t.Errorf("Names() = %v", names)
	}
}

func TestDueOn_IgnoresTimeOfDay(t *testing.T) {
	day := time.Date(2024, time.May, 3, 0, 0, 0, 0, time.Local)
	late := day.Add(23*time.Hour + 59*time.Minute)
	next := day.AddDate(0, 0, 1)
	tasks := []model.Task{{ID: "late", DueDate: &late}, {ID: "next", DueDate: &next}}

	due := DueOn(tasks, day.Add(12*time.Hour))
	if len(due) != 1 || due[0].ID != "late" {
		t.Errorf("DueOn() = %+v", due)
	}
}
