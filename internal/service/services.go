package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xolan/timora/internal/config"
	"github.com/xolan/timora/internal/logging"
	"github.com/xolan/timora/internal/seed"
	"github.com/xolan/timora/internal/store"
	"github.com/xolan/timora/internal/ticker"
	"github.com/xolan/timora/internal/timer"
)

// Options tunes how the services are assembled
type Options struct {
	// ExternalTicks disables the background tick driver. The caller then
	// delivers ticks through TimerService.Tick.
	ExternalTicks bool
	// Logger defaults to a discarding logger
	Logger *slog.Logger
	// Now defaults to time.Now
	Now func() time.Time
	// IDGenerator replaces uuid.NewString for new records
	IDGenerator func() string
	// TickerOptions are passed to the background tick driver
	TickerOptions []ticker.Option
}

// Services holds all service instances used by the application. They share
// a single entity store.
type Services struct {
	Store    *store.Store
	Task     *TaskService
	Project  *ProjectService
	Employee *EmployeeService
	Entry    *EntryService
	Calendar *CalendarService
	Timer    *TimerService
	Stats    *StatsService
	Config   *ConfigService

	logger *slog.Logger
	now    func() time.Time
}

// NewServices creates a new Services instance using the default config path
func NewServices(opts Options) (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(configPath, cfg, opts), nil
}

// NewServicesWithPaths creates a new Services instance with a custom config
// path (useful for testing). The store starts empty; call Bootstrap to load
// seed or demo data.
func NewServicesWithPaths(configPath string, cfg config.Config, opts Options) *Services {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	newID := opts.IDGenerator

	st := store.NewWithClock(now)

	machineOpts := []timer.Option{timer.WithClock(now)}
	if newID != nil {
		machineOpts = append(machineOpts, timer.WithIDGenerator(newID))
	}

	return &Services{
		Store:    st,
		Task:     NewTaskService(st, now, newID),
		Project:  NewProjectService(st, newID),
		Employee: NewEmployeeService(st, newID),
		Entry:    NewEntryService(st),
		Calendar: NewCalendarService(st, cfg, now),
		Timer:    NewTimerService(st, cfg, logger, opts.ExternalTicks, machineOpts, opts.TickerOptions),
		Stats:    NewStatsService(st),
		Config:   NewConfigService(configPath, cfg),
		logger:   logger,
		now:      now,
	}
}

// Bootstrap loads the seed file when one is given, otherwise the built-in
// demo data when the configuration asks for it. Collections that already
// hold records are left alone.
func (s *Services) Bootstrap(seedFile string) (seed.Result, error) {
	if seedFile == "" {
		seedFile = s.Config.Get().SeedFile
	}

	var ds seed.Dataset
	switch {
	case seedFile != "":
		loaded, err := seed.Load(seedFile)
		if err != nil {
			return seed.Result{}, err
		}
		ds = loaded
		s.logger.Debug("seed file loaded", slog.String("path", seedFile))
	case s.Config.Get().LoadDemoData:
		ds = seed.Demo(s.now())
	default:
		return seed.Result{}, nil
	}

	res, err := seed.Apply(s.Store, ds, s.logger)
	if err != nil {
		return res, fmt.Errorf("failed to bootstrap store: %w", err)
	}
	return res, nil
}

// Logger returns the logger shared by the services
func (s *Services) Logger() *slog.Logger {
	return s.logger
}

// Now returns the current time from the services clock
func (s *Services) Now() time.Time {
	return s.now()
}

// Close releases background resources
func (s *Services) Close() {
	s.Timer.Close()
}
