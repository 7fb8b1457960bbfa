package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/xolan/timora/internal/config"
	"github.com/xolan/timora/internal/logging"
	"github.com/xolan/timora/internal/service"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Services
	Services *service.Services

	Config config.Config
	Logger *slog.Logger
}

// DefaultDeps creates a new Deps with default values. Logs go to the
// configured log file, or nowhere.
func DefaultDeps() *Deps {
	cfg := config.DefaultConfig()
	configPath, err := config.GetConfigPath()
	if err != nil {
		configPath = config.ConfigFile
	} else if loadedCfg, err := config.LoadOrDefault(configPath); err == nil {
		cfg = loadedCfg
	}

	logger, _, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile}, nil)
	if err != nil {
		logger = logging.Discard()
	}

	services := service.NewServicesWithPaths(configPath, cfg, service.Options{Logger: logger})
	return NewDeps(services, cfg, logger)
}

// NewDeps creates a new Deps with the given services
func NewDeps(services *service.Services, cfg config.Config, logger *slog.Logger) *Deps {
	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Exit:     os.Exit,
		Services: services,
		Config:   cfg,
		Logger:   logger,
	}
}

// Global deps instance for CLI, created on first use
var deps *Deps

// SetDeps sets the global deps (for testing)
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps drops the current deps; the next GetDeps builds fresh defaults
func ResetDeps() {
	if deps != nil && deps.Services != nil {
		deps.Services.Close()
	}
	deps = nil
}

// GetDeps returns the current deps
func GetDeps() *Deps {
	if deps == nil {
		deps = DefaultDeps()
	}
	return deps
}
