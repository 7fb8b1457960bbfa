// Package mcp exposes the task, project, timer and statistics operations as
// Model Context Protocol tools served over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/xolan/timora/internal/app"
	"github.com/xolan/timora/internal/model"
	"github.com/xolan/timora/internal/service"
	"github.com/xolan/timora/internal/timeutil"
)

// NewServer creates a new MCP server backed by services
func NewServer(services *service.Services) *server.MCPServer {
	s := server.NewMCPServer(app.Name, app.Version)

	// Tasks
	s.AddTool(mcp.NewTool("list_tasks",
		mcp.WithDescription("List tasks with optional filters."),
		mcp.WithString("search", mcp.Description("Match title or description (case-insensitive)")),
		mcp.WithString("status", mcp.Description("Filter by status (todo|in-progress|completed|cancelled|all)")),
		mcp.WithString("assignee", mcp.Description("Filter by employee id, 'none' for unassigned, 'all' for everyone")),
		mcp.WithBoolean("today", mcp.Description("Only tasks due today, in daily display order")),
	), listTasksHandler(services))

	s.AddTool(mcp.NewTool("create_task",
		mcp.WithDescription("Create a new task."),
		mcp.WithString("title", mcp.Description("Task title"), mcp.Required()),
		mcp.WithString("description", mcp.Description("Task description")),
		mcp.WithString("priority", mcp.Description("Priority (low|medium|high|urgent), defaults to medium")),
		mcp.WithString("status", mcp.Description("Status (todo|in-progress|completed|cancelled), defaults to todo")),
		mcp.WithString("project_id", mcp.Description("Project id")),
		mcp.WithString("assigned_to", mcp.Description("Employee id")),
		mcp.WithString("due_date", mcp.Description("Due date (YYYY-MM-DD)")),
		mcp.WithNumber("estimated_hours", mcp.Description("Estimated hours (>= 0)")),
	), createTaskHandler(services))

	s.AddTool(mcp.NewTool("update_task",
		mcp.WithDescription("Update fields of an existing task. Omitted fields are left unchanged; an empty string clears optional fields."),
		mcp.WithString("id", mcp.Description("Task id"), mcp.Required()),
		mcp.WithString("title", mcp.Description("New title")),
		mcp.WithString("description", mcp.Description("New description")),
		mcp.WithString("priority", mcp.Description("New priority")),
		mcp.WithString("status", mcp.Description("New status")),
		mcp.WithString("project_id", mcp.Description("New project id")),
		mcp.WithString("assigned_to", mcp.Description("New assignee")),
		mcp.WithString("due_date", mcp.Description("New due date (YYYY-MM-DD)")),
		mcp.WithNumber("estimated_hours", mcp.Description("New estimate; negative clears it")),
	), updateTaskHandler(services))

	s.AddTool(mcp.NewTool("delete_task",
		mcp.WithDescription("Delete a task. Its time entries are kept."),
		mcp.WithString("id", mcp.Description("Task id"), mcp.Required()),
	), deleteTaskHandler(services))

	s.AddTool(mcp.NewTool("assign_task",
		mcp.WithDescription("Assign a task to an employee, or unassign it when employee_id is empty."),
		mcp.WithString("task_id", mcp.Description("Task id"), mcp.Required()),
		mcp.WithString("employee_id", mcp.Description("Employee id")),
	), assignTaskHandler(services))

	// Projects and employees
	s.AddTool(mcp.NewTool("list_projects",
		mcp.WithDescription("List all projects."),
	), listProjectsHandler(services))

	s.AddTool(mcp.NewTool("create_project",
		mcp.WithDescription("Create a new project."),
		mcp.WithString("name", mcp.Description("Project name"), mcp.Required()),
		mcp.WithString("description", mcp.Description("Project description")),
		mcp.WithString("color", mcp.Description("Display color, e.g. #3b82f6")),
	), createProjectHandler(services))

	s.AddTool(mcp.NewTool("update_project",
		mcp.WithDescription("Update fields of an existing project."),
		mcp.WithString("id", mcp.Description("Project id"), mcp.Required()),
		mcp.WithString("name", mcp.Description("New name")),
		mcp.WithString("description", mcp.Description("New description")),
		mcp.WithString("color", mcp.Description("New color")),
	), updateProjectHandler(services))

	s.AddTool(mcp.NewTool("list_employees",
		mcp.WithDescription("List all employees."),
	), listEmployeesHandler(services))

	s.AddTool(mcp.NewTool("list_time_entries",
		mcp.WithDescription("List time entries. With task_id, returns the task's total and its most recent entries."),
		mcp.WithString("task_id", mcp.Description("Task id")),
	), listTimeEntriesHandler(services))

	// Timer
	s.AddTool(mcp.NewTool("start_timer",
		mcp.WithDescription("Start the focus timer on a task."),
		mcp.WithString("task_id", mcp.Description("Task id"), mcp.Required()),
	), startTimerHandler(services))

	s.AddTool(mcp.NewTool("pause_timer",
		mcp.WithDescription("Pause the running timer."),
	), pauseTimerHandler(services))

	s.AddTool(mcp.NewTool("resume_timer",
		mcp.WithDescription("Resume the paused timer."),
	), resumeTimerHandler(services))

	s.AddTool(mcp.NewTool("stop_timer",
		mcp.WithDescription("Stop the timer and record a time entry."),
		mcp.WithString("description", mcp.Description("Entry description")),
		mcp.WithString("employee_id", mcp.Description("Employee to attribute the entry to (defaults to the configured acting employee)")),
	), stopTimerHandler(services))

	s.AddTool(mcp.NewTool("reset_timer",
		mcp.WithDescription("Discard the current timer session without recording it."),
	), resetTimerHandler(services))

	s.AddTool(mcp.NewTool("timer_status",
		mcp.WithDescription("Get the timer state and the task it is bound to."),
	), timerStatusHandler(services))

	// Statistics
	s.AddTool(mcp.NewTool("project_stats",
		mcp.WithDescription("Get tracked time per project. With project_id, returns that project only."),
		mcp.WithString("project_id", mcp.Description("Project id")),
	), projectStatsHandler(services))

	return s
}

// Serve starts the MCP server on stdio.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func listTasksHandler(services *service.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filter := service.TaskFilter{
			Search:   mcp.ParseString(request, "search", ""),
			Status:   strings.ToLower(mcp.ParseString(request, "status", "")),
			Assignee: mcp.ParseString(request, "assignee", ""),
		}

		var tasks []model.Task
		if mcp.ParseBoolean(request, "today", false) {
			tasks = service.FilterTasks(services.Task.Today(), filter)
		} else {
			tasks = services.Task.Filter(filter)
		}
		return jsonResult(map[string]any{"tasks": tasks})
	}
}

func createTaskHandler(services *service.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		t := model.Task{
			Title:       mcp.ParseString(request, "title", ""),
			Description: mcp.ParseString(request, "description", ""),
			Priority:    model.Priority(strings.ToLower(mcp.ParseString(request, "priority", ""))),
			Status:      model.Status(strings.ToLower(mcp.ParseString(request, "status", ""))),
			ProjectID:   mcp.ParseString(request, "project_id", ""),
			AssignedTo:  mcp.ParseString(request, "assigned_to", ""),
		}

		args, _ := request.Params.Arguments.(map[string]any)
		if raw, ok := args["due_date"].(string); ok && raw != "" {
			due, err := timeutil.ParseDate(raw)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			t.DueDate = &due
		}
		if hours, ok := args["estimated_hours"].(float64); ok {
			t.EstimatedHours = &hours
		}

		created, err := services.Task.Create(t)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(created)
	}
}

func updateTaskHandler(services *service.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := mcp.ParseString(request, "id", "")

		var patch model.TaskPatch
		args, _ := request.Params.Arguments.(map[string]any)
		if title, ok := args["title"].(string); ok {
			patch.Title = &title
		}
		if description, ok := args["description"].(string); ok {
			patch.Description = &description
		}
		if priority, ok := args["priority"].(string); ok {
			patch.Priority = model.Ptr(model.Priority(strings.ToLower(priority)))
		}
		if status, ok := args["status"].(string); ok {
			patch.Status = model.Ptr(model.Status(strings.ToLower(status)))
		}
		if projectID, ok := args["project_id"].(string); ok {
			patch.ProjectID = &projectID
		}
		if assignedTo, ok := args["assigned_to"].(string); ok {
			patch.AssignedTo = &assignedTo
		}
		if raw, ok := args["due_date"].(string); ok {
			if raw == "" {
				patch.ClearDueDate = true
			} else {
				due, err := timeutil.ParseDate(raw)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				patch.DueDate = &due
			}
		}
		if hours, ok := args["estimated_hours"].(float64); ok {
			if hours < 0 {
				patch.ClearEstimate = true
			} else {
				patch.EstimatedHours = &hours
			}
		}

		found, err := services.Task.Update(id, patch)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if !found {
			return mcp.NewToolResultError(fmt.Sprintf("Task with id '%s' not found", id)), nil
		}
		task, _ := services.Task.Get(id)
		return jsonResult(task)
	}
}

func deleteTaskHandler(services *service.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := mcp.ParseString(request, "id", "")
		if !services.Task.Delete(id) {
			return mcp.NewToolResultError(fmt.Sprintf("Task with id '%s' not found", id)), nil
		}
		return mcp.NewToolResultText("Task deleted successfully"), nil
	}
}

func assignTaskHandler(services *service.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		taskID := mcp.ParseString(request, "task_id", "")
		employeeID := mcp.ParseString(request, "employee_id", "")

		var found bool
		var err error
		if employeeID == "" {
			found, err = services.Task.Unassign(taskID)
		} else {
			found, err = services.Task.Assign(taskID, employeeID)
		}
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if !found {
			return mcp.NewToolResultError(fmt.Sprintf("Task with id '%s' not found", taskID)), nil
		}
		if employeeID == "" {
			return mcp.NewToolResultText(fmt.Sprintf("Task '%s' unassigned", taskID)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Task '%s' assigned to '%s'", taskID, employeeID)), nil
	}
}

func listProjectsHandler(services *service.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(map[string]any{"projects": services.Project.List()})
	}
}

func createProjectHandler(services *service.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		created, err := services.Project.Create(model.Project{
			Name:        mcp.ParseString(request, "name", ""),
			Description: mcp.ParseString(request, "description", ""),
			Color:       mcp.ParseString(request, "color", ""),
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(created)
	}
}

func updateProjectHandler(services *service.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := mcp.ParseString(request, "id", "")

		var patch model.ProjectPatch
		args, _ := request.Params.Arguments.(map[string]any)
		if name, ok := args["name"].(string); ok {
			patch.Name = &name
		}
		if description, ok := args["description"].(string); ok {
			patch.Description = &description
		}
		if color, ok := args["color"].(string); ok {
			patch.Color = &color
		}

		found, err := services.Project.Update(id, patch)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if !found {
			return mcp.NewToolResultError(fmt.Sprintf("Project with id '%s' not found", id)), nil
		}
		project, _ := services.Project.Get(id)
		return jsonResult(project)
	}
}

func listEmployeesHandler(services *service.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(map[string]any{"employees": services.Employee.List()})
	}
}

func listTimeEntriesHandler(services *service.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		taskID := mcp.ParseString(request, "task_id", "")
		if taskID == "" {
			return jsonResult(map[string]any{"timeEntries": services.Entry.List()})
		}
		tt := services.Entry.TaskTime(taskID)
		return jsonResult(map[string]any{
			"taskId":       tt.TaskID,
			"totalSeconds": tt.TotalSeconds,
			"timeEntries":  tt.Recent,
		})
	}
}

func startTimerHandler(services *service.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		taskID := mcp.ParseString(request, "task_id", "")
		if _, ok := services.Task.Get(taskID); !ok {
			return mcp.NewToolResultError(fmt.Sprintf("Task with id '%s' not found", taskID)), nil
		}
		state, err := services.Timer.Start(taskID)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(state)
	}
}

func pauseTimerHandler(services *service.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		state, err := services.Timer.Pause()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(state)
	}
}

func resumeTimerHandler(services *service.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		state, err := services.Timer.Resume()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(state)
	}
}

func stopTimerHandler(services *service.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		description := mcp.ParseString(request, "description", "")
		employeeID := mcp.ParseString(request, "employee_id", "")

		var entry *model.TimeEntry
		var err error
		if employeeID == "" {
			entry, err = services.Timer.Stop(description)
		} else {
			entry, err = services.Timer.StopAs(employeeID, description)
		}
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if entry == nil {
			return mcp.NewToolResultText("Timer is idle, nothing recorded"), nil
		}
		return jsonResult(entry)
	}
}

func resetTimerHandler(services *service.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(services.Timer.Reset())
	}
}

// timerStatus is the JSON shape of timer_status
type timerStatus struct {
	Phase   string         `json:"phase"`
	State   any            `json:"state"`
	Task    *model.Task    `json:"task,omitempty"`
	Project *model.Project `json:"project,omitempty"`
}

func timerStatusHandler(services *service.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		status := services.Timer.Status()
		return jsonResult(timerStatus{
			Phase:   status.Phase().String(),
			State:   status.State,
			Task:    status.Task,
			Project: status.Project,
		})
	}
}

func projectStatsHandler(services *service.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		projectID := mcp.ParseString(request, "project_id", "")
		if projectID == "" {
			return jsonResult(services.Stats.Report().Report)
		}
		stat, ok := services.Stats.Project(projectID)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("Project with id '%s' not found", projectID)), nil
		}
		return jsonResult(stat)
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

