package cmd

import (
	"os"
	"strings"
	"testing"
)

func TestConfigCommand_Show(t *testing.T) {
	_, stdout, _, exitCode := setupCmdDeps(t)

	for _, c := range []func(){
		func() { configCmd.Run(configCmd, nil) },
		func() { configShowCmd.Run(configShowCmd, nil) },
	} {
		stdout.Reset()
		c()
		out := stdout.String()
		for _, want := range []string{"acting_employee", "current-user", "duration_source", "week_start_day"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	}
	if *exitCode != 0 {
		t.Errorf("exit code = %d", *exitCode)
	}
}

func TestConfigCommand_InitAndPath(t *testing.T) {
	d, stdout, stderr, exitCode := setupCmdDeps(t)
	path := d.Services.Config.GetPath()

	configPathCmd.Run(configPathCmd, nil)
	if strings.TrimSpace(stdout.String()) != path {
		t.Errorf("path output = %q, want %q", stdout.String(), path)
	}

	configInitCmd.Run(configInitCmd, nil)
	if *exitCode != 0 {
		t.Fatalf("init exit code = %d, stderr = %s", *exitCode, stderr.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}

	// A second init refuses to overwrite
	configInitCmd.Run(configInitCmd, nil)
	if *exitCode != 1 {
		t.Errorf("second init exit code = %d, want 1", *exitCode)
	}
}

func TestConfigCommand_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range configCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"show", "init", "path"} {
		if !names[want] {
			t.Errorf("config subcommand %q missing", want)
		}
	}
}
