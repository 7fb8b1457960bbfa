package service

import (
	"log/slog"
	"sync"

	"github.com/xolan/timora/internal/config"
	"github.com/xolan/timora/internal/model"
	"github.com/xolan/timora/internal/store"
	"github.com/xolan/timora/internal/ticker"
	"github.com/xolan/timora/internal/timer"
)

// TimerService owns the process-wide timer and, unless ticks are delivered
// externally, the background tick driver. Transitions are serialised: the
// driver is stopped before the timer leaves Running and started after it
// enters Running.
type TimerService struct {
	mu      sync.Mutex
	machine *timer.Machine
	driver  *ticker.Driver
	store   *store.Store
	config  config.Config
	logger  *slog.Logger
}

// NewTimerService creates a TimerService. A nil driverOpts slice still
// creates a real-time driver; pass external=true to disable it.
func NewTimerService(st *store.Store, cfg config.Config, logger *slog.Logger, external bool, machineOpts []timer.Option, driverOpts []ticker.Option) *TimerService {
	opts := append([]timer.Option{timer.WithDurationSource(timer.DurationSource(cfg.DurationSource))}, machineOpts...)
	s := &TimerService{
		machine: timer.New(st, opts...),
		store:   st,
		config:  cfg,
		logger:  logger,
	}
	if !external {
		s.driver = ticker.New(func() { s.machine.Tick() }, driverOpts...)
	}
	return s
}

// Start binds the timer to a task and starts it
func (s *TimerService) Start(taskID string) (timer.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.machine.Start(taskID)
	if err != nil {
		return state, err
	}
	s.startDriver()
	s.logger.Info("timer started", slog.String("task_id", taskID))
	return state, nil
}

// Pause suspends the running timer
func (s *TimerService) Pause() (timer.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopDriver()
	state, err := s.machine.Pause()
	if err != nil {
		return state, err
	}
	s.logger.Info("timer paused",
		slog.String("task_id", state.CurrentTaskID),
		slog.Int("elapsed_seconds", state.ElapsedSeconds),
	)
	return state, nil
}

// Resume continues a paused timer
func (s *TimerService) Resume() (timer.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.machine.Resume()
	if err != nil {
		return state, err
	}
	s.startDriver()
	s.logger.Info("timer resumed", slog.String("task_id", state.CurrentTaskID))
	return state, nil
}

// Stop ends the session as the configured acting employee
func (s *TimerService) Stop(description string) (*model.TimeEntry, error) {
	return s.StopAs(s.config.ActingEmployee, description)
}

// StopAs ends the session and records the time entry for employeeID. The
// entry's project is taken from the bound task when it is known. Returns nil
// without error when the timer is idle.
func (s *TimerService) StopAs(employeeID, description string) (*model.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopDriver()

	opts := timer.StopOptions{EmployeeID: employeeID, Description: description}
	if task, ok := s.store.Task(s.machine.State().CurrentTaskID); ok {
		opts.ProjectID = task.ProjectID
	}

	e, err := s.machine.Stop(opts)
	if err != nil {
		s.logger.Error("timer stop failed", slog.Any("error", err))
		return nil, err
	}
	if e != nil {
		s.logger.Info("time entry recorded",
			slog.String("entry_id", e.ID),
			slog.String("task_id", e.TaskID),
			slog.String("employee_id", e.EmployeeID),
			slog.Int("duration", e.Duration),
		)
	}
	return e, nil
}

// Reset discards the current session without recording anything
func (s *TimerService) Reset() timer.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopDriver()
	state := s.machine.Reset()
	s.logger.Info("timer reset")
	return state
}

// Tick advances the timer by one second. Used when ticks are delivered
// externally; with the background driver this is never needed.
func (s *TimerService) Tick() bool {
	return s.machine.Tick()
}

// State returns a snapshot of the timer
func (s *TimerService) State() timer.State {
	return s.machine.State()
}

// Status returns the timer snapshot with its task and project resolved
func (s *TimerService) Status() TimerStatus {
	status := TimerStatus{State: s.machine.State()}
	if status.State.CurrentTaskID == "" {
		return status
	}
	if task, ok := s.store.Task(status.State.CurrentTaskID); ok {
		status.Task = &task
		if project, ok := s.store.Project(task.ProjectID); ok {
			status.Project = &project
		}
	}
	return status
}

// External reports whether ticks must be delivered by the caller
func (s *TimerService) External() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.driver == nil
}

// UseExternalTicks stops and discards the background driver. From then on
// the caller delivers ticks through Tick.
func (s *TimerService) UseExternalTicks() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopDriver()
	s.driver = nil
}

// Close stops the background driver
func (s *TimerService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopDriver()
}

func (s *TimerService) startDriver() {
	if s.driver != nil {
		s.driver.Start()
	}
}

func (s *TimerService) stopDriver() {
	if s.driver != nil {
		s.driver.Stop()
	}
}
