package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xolan/timora/internal/config"
)

// ErrConfigExists is returned by Init when config.toml is already present
var ErrConfigExists = errors.New("config file already exists")

// ConfigService holds the active configuration. The TUI saves theme changes
// from command goroutines while views read it, so access is locked.
type ConfigService struct {
	mu         sync.RWMutex
	configPath string
	config     config.Config
}

// NewConfigService creates a new ConfigService
func NewConfigService(configPath string, cfg config.Config) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		config:     cfg,
	}
}

// Get returns a copy of the current configuration
func (s *ConfigService) Get() config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// GetPath returns the path to the config file
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Exists reports whether config.toml is on disk
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// Update validates cfg, writes it to disk and makes it current. Settings
// read at startup (duration source, acting employee) apply to the next run.
func (s *ConfigService) Update(cfg config.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(cfg)
}

// SetTheme updates only the theme setting
func (s *ConfigService) SetTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.config
	cfg.Theme = theme
	return s.save(cfg)
}

func (s *ConfigService) save(cfg config.Config) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := config.Save(s.configPath, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	s.config = cfg
	return nil
}

// Init writes the commented sample config. It never overwrites an existing
// file.
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("%w at %s", ErrConfigExists, s.configPath)
	}

	if err := os.MkdirAll(filepath.Dir(s.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(s.configPath, []byte(config.GenerateSampleConfig()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Reload replaces the current configuration with what is on disk
func (s *ConfigService) Reload() error {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
	return nil
}
