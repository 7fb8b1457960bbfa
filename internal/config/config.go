package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xolan/timora/internal/app"
)

// ConfigFile is the name of the TOML configuration file
const ConfigFile = "config.toml"

// Config represents the application configuration
type Config struct {
	// ActingEmployee is recorded on time entries produced by the timer
	ActingEmployee string `toml:"acting_employee"`
	// DurationSource is "ticks" (count of one-second ticks) or "wallclock"
	DurationSource string `toml:"duration_source"`
	// SeedFile is an optional YAML dataset loaded into the empty store at startup
	SeedFile string `toml:"seed_file"`
	// LoadDemoData loads the built-in demo dataset when no seed file is set
	LoadDemoData bool `toml:"load_demo_data"`
	// Theme is the bubbletint theme id used by the TUI
	Theme string `toml:"theme"`
	// WeekStartDay defines which day starts the week (monday or sunday)
	WeekStartDay string `toml:"week_start_day"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `toml:"log_level"`
	// LogFormat is text or json
	LogFormat string `toml:"log_format"`
	// LogFile receives log output; empty means the command's default sink
	LogFile string `toml:"log_file"`
}

var (
	validWeekStartDays   = []string{"monday", "sunday"}
	validDurationSources = []string{"ticks", "wallclock"}
	validLogLevels       = []string{"debug", "info", "warn", "error"}
	validLogFormats      = []string{"text", "json"}
)

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		ActingEmployee: "current-user",
		DurationSource: "ticks",
		LoadDemoData:   true,
		Theme:          "dracula",
		WeekStartDay:   "monday",
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Normalize trims and lowercases enumerated fields in place
func (c *Config) Normalize() {
	c.ActingEmployee = strings.TrimSpace(c.ActingEmployee)
	c.DurationSource = strings.ToLower(strings.TrimSpace(c.DurationSource))
	c.SeedFile = strings.TrimSpace(c.SeedFile)
	c.Theme = strings.TrimSpace(c.Theme)
	c.WeekStartDay = strings.ToLower(strings.TrimSpace(c.WeekStartDay))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.LogFile = strings.TrimSpace(c.LogFile)
}

// Validate checks every enumerated field. Call Normalize first.
func (c Config) Validate() error {
	var errs []error
	if c.ActingEmployee == "" {
		errs = append(errs, errors.New("acting_employee cannot be empty"))
	}
	if !oneOf(c.DurationSource, validDurationSources) {
		errs = append(errs, fmt.Errorf("invalid duration_source %q (must be one of: %s)", c.DurationSource, strings.Join(validDurationSources, ", ")))
	}
	if !oneOf(c.WeekStartDay, validWeekStartDays) {
		errs = append(errs, fmt.Errorf("invalid week_start_day %q (must be one of: %s)", c.WeekStartDay, strings.Join(validWeekStartDays, ", ")))
	}
	if !oneOf(c.LogLevel, validLogLevels) {
		errs = append(errs, fmt.Errorf("invalid log_level %q (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", ")))
	}
	if !oneOf(c.LogFormat, validLogFormats) {
		errs = append(errs, fmt.Errorf("invalid log_format %q (must be one of: %s)", c.LogFormat, strings.Join(validLogFormats, ", ")))
	}
	return errors.Join(errs...)
}

// Load reads the config file at path. Keys absent from the file keep their
// default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config file if it exists, otherwise returns defaults
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to access config file: %w", err)
	}
	return Load(path)
}

// Save writes cfg to path in TOML format
func Save(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintf(f, "# %s configuration file\n\n", app.Name); err != nil {
		return err
	}
	return toml.NewEncoder(f).Encode(cfg)
}

// GenerateSampleConfig returns a commented config file listing every option
// with its default value
func GenerateSampleConfig() string {
	d := DefaultConfig()
	return fmt.Sprintf(`# %s configuration file
# Uncomment and edit the options you want to change.

# Employee id recorded on time entries created by the timer
# acting_employee = %q

# How a stopped timer computes its duration: "ticks" or "wallclock"
# duration_source = %q

# YAML dataset loaded into the empty store at startup
# seed_file = "/path/to/seed.yaml"

# Load the built-in demo dataset when no seed file is configured
# load_demo_data = %t

# TUI color theme (bubbletint id)
# theme = %q

# Week start day for the calendar: "monday" or "sunday"
# week_start_day = %q

# Logging: level is debug, info, warn or error; format is text or json
# log_level = %q
# log_format = %q
# log_file = "/path/to/%s.log"
`, app.Name, d.ActingEmployee, d.DurationSource, d.LoadDemoData, d.Theme, d.WeekStartDay, d.LogLevel, d.LogFormat, app.Name)
}

// PathProvider abstracts OS-level operations for path resolution
type PathProvider interface {
	UserConfigDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
}

// DefaultPathProvider uses real OS functions
type DefaultPathProvider struct{}

// UserConfigDir returns the default root directory for user-specific configuration data
func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// MkdirAll creates a directory named path, along with any necessary parents
func (DefaultPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Provider is the package-level path provider. Tests can replace it.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider sets a custom provider (for testing)
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider resets to the default provider
func ResetProvider() {
	Provider = DefaultPathProvider{}
}

// GetConfigPath returns the path to the config file, creating its directory
// if needed
func GetConfigPath() (string, error) {
	configDir, err := Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, app.Name)
	if err := Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

func oneOf(v string, valid []string) bool {
	for _, s := range valid {
		if v == s {
			return true
		}
	}
	return false
}
