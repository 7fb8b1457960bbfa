package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/xolan/timora/internal/config"
)

func TestConfigService_GetAndPath(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ActingEmployee = "e9"
	svc := NewConfigService("/tmp/test/config.toml", cfg)

	if svc.Get() != cfg {
		t.Errorf("Get() = %+v, expected %+v", svc.Get(), cfg)
	}
	if svc.GetPath() != "/tmp/test/config.toml" {
		t.Errorf("GetPath() = %q", svc.GetPath())
	}
}

func TestConfigService_Exists(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	if svc.Exists() {
		t.Error("expected Exists() to return false")
	}
	if err := os.WriteFile(configPath, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}
	if !svc.Exists() {
		t.Error("expected Exists() to return true")
	}
}

func TestConfigService_Update(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	cfg := config.DefaultConfig()
	cfg.WeekStartDay = "Sunday"
	cfg.Theme = "nord"
	if err := svc.Update(cfg); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if svc.Get().WeekStartDay != "sunday" {
		t.Errorf("expected normalized week start, got %q", svc.Get().WeekStartDay)
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if loaded.Theme != "nord" || loaded.WeekStartDay != "sunday" {
		t.Errorf("unexpected written config: %+v", loaded)
	}
}

func TestConfigService_Update_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	cfg := config.DefaultConfig()
	cfg.DurationSource = "hourglass"
	err := svc.Update(cfg)
	if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("expected invalid configuration error, got %v", err)
	}
	if svc.Exists() {
		t.Error("invalid config was written")
	}
	if svc.Get().DurationSource != "ticks" {
		t.Error("in-memory config changed after failed update")
	}
}

func TestConfigService_Update_WriteError(t *testing.T) {
	svc := NewConfigService("/nonexistent/dir/config.toml", config.DefaultConfig())
	err := svc.Update(config.DefaultConfig())
	if err == nil || !strings.Contains(err.Error(), "failed to write config") {
		t.Errorf("expected write error, got %v", err)
	}
}

func TestConfigService_SetTheme(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "config.toml"), config.DefaultConfig())
	if err := svc.SetTheme("gruvbox_dark"); err != nil {
		t.Fatalf("SetTheme() error: %v", err)
	}
	if svc.Get().Theme != "gruvbox_dark" {
		t.Errorf("Theme = %q", svc.Get().Theme)
	}
}

func TestConfigService_Init(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	if err := svc.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("reading sample: %v", err)
	}
	if !strings.Contains(string(content), "# duration_source") {
		t.Error("sample config missing duration_source")
	}

	if err := svc.Init(); !errors.Is(err, ErrConfigExists) {
		t.Errorf("second Init() should fail, got %v", err)
	}
}

func TestConfigService_Reload(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	if err := os.WriteFile(configPath, []byte(`acting_employee = "e4"`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := svc.Reload(); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}
	if svc.Get().ActingEmployee != "e4" {
		t.Errorf("ActingEmployee = %q, expected e4", svc.Get().ActingEmployee)
	}

	if err := os.WriteFile(configPath, []byte(`log_format = "xml"`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := svc.Reload(); err == nil || !strings.Contains(err.Error(), "failed to load config") {
		t.Errorf("expected load error, got %v", err)
	}
	if svc.Get().ActingEmployee != "e4" {
		t.Error("failed reload replaced the config")
	}
}

func TestConfigService_ConcurrentSetTheme(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "config.toml"), config.DefaultConfig())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			if err := svc.SetTheme(fmt.Sprintf("theme-%d", i)); err != nil {
				t.Errorf("SetTheme() error: %v", err)
			}
		}(i)
		go func() {
			defer wg.Done()
			_ = svc.Get().Theme
		}()
	}
	wg.Wait()

	if !strings.HasPrefix(svc.Get().Theme, "theme-") {
		t.Errorf("Theme = %q, expected one of the saved themes", svc.Get().Theme)
	}
}
