package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xolan/timora/internal/cli"
	"github.com/xolan/timora/internal/cli/handlers"
	"github.com/xolan/timora/internal/model"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate a shell completion script for timora.

Besides commands and flags, the scripts complete task statuses, stats
formats, employee ids for --assignee and recent months for --month.

  source <(timora completion bash)
  timora completion zsh > "${fpath[1]}/_timora"
  timora completion fish > ~/.config/fish/completions/timora.fish
  timora completion powershell | Out-String | Invoke-Expression`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.ExactValidArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// generateCompletion writes the completion script for shell to stdout
func generateCompletion(shell string) {
	deps := cli.GetDeps()
	var err error

	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(deps.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(deps.Stdout)
	case "fish":
		err = rootCmd.GenFishCompletion(deps.Stdout, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(deps.Stdout)
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unsupported shell '%s'\n", shell)
		_, _ = fmt.Fprintln(deps.Stderr, "Supported shells: bash, zsh, fish, powershell")
		deps.Exit(1)
		return
	}

	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to generate %s completion: %v\n", shell, err)
		deps.Exit(1)
	}
}

func completeStatus(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{
		string(model.StatusTodo),
		string(model.StatusInProgress),
		string(model.StatusCompleted),
		string(model.StatusCancelled),
		"all",
	}, cobra.ShellCompDirectiveNoFileComp
}

func completeFormat(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{handlers.FormatText, handlers.FormatJSON, handlers.FormatCSV}, cobra.ShellCompDirectiveNoFileComp
}

// completeAssignee offers employee ids from the bootstrapped store, each
// described by the employee's name
func completeAssignee(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	out := []string{"all", "none"}
	deps, ok := completionDeps()
	if !ok {
		return out, cobra.ShellCompDirectiveNoFileComp
	}
	for _, e := range deps.Services.Employee.List() {
		out = append(out, e.ID+"\t"+e.Name)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeMonth offers the current month and the two on either side
func completeMonth(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	now := time.Now()
	if deps, ok := completionDeps(); ok {
		now = deps.Services.Now()
	}
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var out []string
	for i := -2; i <= 2; i++ {
		out = append(out, first.AddDate(0, i, 0).Format("2006-01"))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completionDeps bootstraps quietly; a completion request must never exit
func completionDeps() (*cli.Deps, bool) {
	deps := cli.GetDeps()
	if deps == nil || deps.Services == nil {
		return nil, false
	}
	if _, err := deps.Services.Bootstrap(seedFile); err != nil {
		return nil, false
	}
	return deps, true
}
