package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timora/internal/cli/handlers"
)

// tasksCmd represents the tasks command
var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List tasks",
	Long: `List tasks with their priority, project, assignee and due date.

Filters combine: a task is listed only when it matches every filter given.

Examples:

  timora tasks                          All tasks
  timora tasks --today                  Tasks due today, in work order
  timora tasks --status todo            Only tasks still to do
  timora tasks --assignee none          Unassigned tasks
  timora tasks --assignee emp-1         Tasks of one employee
  timora tasks --search login           Title or description contains "login"`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTasks(cmd)
	},
}

func init() {
	rootCmd.AddCommand(tasksCmd)
	tasksCmd.Flags().Bool("today", false, "Only tasks due today")
	tasksCmd.Flags().String("status", "", "Filter by status: todo, in-progress, completed, cancelled or all")
	tasksCmd.Flags().String("assignee", "", "Filter by employee id, none or all")
	tasksCmd.Flags().StringP("search", "s", "", "Case-insensitive title or description search")
	_ = tasksCmd.RegisterFlagCompletionFunc("status", completeStatus)
	_ = tasksCmd.RegisterFlagCompletionFunc("assignee", completeAssignee)
}

func runTasks(cmd *cobra.Command) {
	today, _ := cmd.Flags().GetBool("today")
	status, _ := cmd.Flags().GetString("status")
	assignee, _ := cmd.Flags().GetString("assignee")
	search, _ := cmd.Flags().GetString("search")

	deps, ok := loadedDeps()
	if !ok {
		return
	}
	handlers.ListTasks(deps, handlers.TaskListOptions{
		Today:    today,
		Status:   status,
		Assignee: assignee,
		Search:   search,
	})
}
