package handlers

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xolan/timora/internal/cli"
	"github.com/xolan/timora/internal/config"
	"github.com/xolan/timora/internal/logging"
	"github.com/xolan/timora/internal/service"
)

// testNow is the fixed clock used by handler tests
var testNow = time.Date(2024, time.January, 15, 10, 0, 0, 0, time.Local)

// setupTestDeps creates deps over an empty store with captured output
func setupTestDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	return newTestDeps(t, filepath.Join(t.TempDir(), "config.toml"))
}

// setupSeededDeps creates deps whose store holds the demo dataset
func setupSeededDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	deps, stdout, stderr, exitCode := setupTestDeps(t)
	if _, err := deps.Services.Bootstrap(""); err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}
	return deps, stdout, stderr, exitCode
}

// setupBrokenConfigDeps creates deps whose config path is a directory
func setupBrokenConfigDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.MkdirAll(configPath, 0755); err != nil {
		t.Fatal(err)
	}
	return newTestDeps(t, configPath)
}

func newTestDeps(t *testing.T, configPath string) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	cfg := config.DefaultConfig()
	n := 0
	services := service.NewServicesWithPaths(configPath, cfg, service.Options{
		ExternalTicks: true,
		Now:           func() time.Time { return testNow },
		IDGenerator: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	})
	t.Cleanup(services.Close)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0

	deps := &cli.Deps{
		Stdout:   stdout,
		Stderr:   stderr,
		Stdin:    strings.NewReader(""),
		Exit:     func(code int) { exitCode = code },
		Services: services,
		Config:   cfg,
		Logger:   logging.Discard(),
	}

	return deps, stdout, stderr, &exitCode
}
