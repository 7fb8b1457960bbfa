// Package timer implements the single process-wide focus timer. The timer
// moves between Idle, Running and Paused; stopping it turns the session into
// a time entry and returns it to Idle.
package timer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xolan/timora/internal/model"
)

// Timer errors. Every rejected transition wraps ErrInvalidTransition.
var (
	ErrInvalidTransition  = errors.New("invalid timer transition")
	ErrTimerAlreadyActive = fmt.Errorf("%w: timer already active", ErrInvalidTransition)
	ErrTimerNotRunning    = fmt.Errorf("%w: timer is not running", ErrInvalidTransition)
	ErrTimerNotPaused     = fmt.Errorf("%w: timer is not paused", ErrInvalidTransition)
	ErrEmptyTaskID        = errors.New("task id cannot be empty")
)

// Phase is the resting state of the timer
type Phase int

const (
	Idle Phase = iota
	Running
	Paused
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return "idle"
}

// DurationSource selects what a stopped session records as its duration
type DurationSource string

const (
	// SourceTicks records the number of ticks received while running
	SourceTicks DurationSource = "ticks"
	// SourceWallClock records running wall-clock time, excluding pauses
	SourceWallClock DurationSource = "wallclock"
)

// State is a read-only snapshot of the timer
type State struct {
	IsRunning      bool       `json:"isRunning"`
	IsPaused       bool       `json:"isPaused"`
	ElapsedSeconds int        `json:"elapsedSeconds"`
	CurrentTaskID  string     `json:"currentTaskId,omitempty"`
	StartTime      *time.Time `json:"startTime,omitempty"`
}

// Phase derives the resting state from the snapshot flags
func (s State) Phase() Phase {
	switch {
	case s.IsRunning:
		return Running
	case s.IsPaused:
		return Paused
	}
	return Idle
}

// EntrySink receives the time entry produced by Stop
type EntrySink interface {
	AddTimeEntry(e model.TimeEntry) (model.TimeEntry, error)
}

// StopOptions carries the caller-supplied fields of the produced entry
type StopOptions struct {
	EmployeeID  string
	ProjectID   string
	Description string
}

// Option configures a Machine
type Option func(*Machine)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// WithDurationSource selects ticks or wall-clock duration accounting
func WithDurationSource(src DurationSource) Option {
	return func(m *Machine) { m.source = src }
}

// WithIDGenerator replaces the UUID generator used for entry ids
func WithIDGenerator(gen func() string) Option {
	return func(m *Machine) { m.newID = gen }
}

// Machine is the timer state machine. Each transition runs under one lock,
// so a transition is either fully applied or rejected with no change.
type Machine struct {
	mu     sync.Mutex
	sink   EntrySink
	now    func() time.Time
	newID  func() string
	source DurationSource

	state        State
	runningSince time.Time
	activeWall   time.Duration
}

// New creates an idle Machine that appends stopped sessions to sink
func New(sink EntrySink, opts ...Option) *Machine {
	m := &Machine{
		sink:   sink,
		now:    time.Now,
		newID:  uuid.NewString,
		source: SourceTicks,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns a snapshot of the timer
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

// Phase returns the current resting state
func (m *Machine) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Phase()
}

// Start binds the timer to a task and begins running. Only valid from Idle.
func (m *Machine) Start(taskID string) (State, error) {
	if taskID == "" {
		return State{}, ErrEmptyTaskID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Phase() != Idle {
		return m.snapshot(), ErrTimerAlreadyActive
	}

	now := m.now()
	m.state = State{
		IsRunning:     true,
		CurrentTaskID: taskID,
		StartTime:     &now,
	}
	m.runningSince = now
	m.activeWall = 0
	return m.snapshot(), nil
}

// Pause suspends a running timer. Ticks have no effect while paused.
func (m *Machine) Pause() (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Phase() != Running {
		return m.snapshot(), ErrTimerNotRunning
	}

	m.activeWall += m.now().Sub(m.runningSince)
	m.state.IsRunning = false
	m.state.IsPaused = true
	return m.snapshot(), nil
}

// Resume continues a paused timer
func (m *Machine) Resume() (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Phase() != Paused {
		return m.snapshot(), ErrTimerNotPaused
	}

	m.runningSince = m.now()
	m.state.IsRunning = true
	m.state.IsPaused = false
	return m.snapshot(), nil
}

// Tick advances the elapsed counter by one second while running.
// Returns true if the tick was counted.
func (m *Machine) Tick() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Phase() != Running {
		return false
	}
	m.state.ElapsedSeconds++
	return true
}

// Stop ends the session. From Running or Paused it appends a time entry to
// the sink and returns it; from Idle it does nothing and returns nil.
// The timer is back in Idle afterwards even if the sink rejects the entry.
func (m *Machine) Stop(opts StopOptions) (*model.TimeEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Phase() == Idle {
		return nil, nil
	}
	defer m.clear()

	if m.state.CurrentTaskID == "" || m.state.StartTime == nil {
		return nil, nil
	}

	now := m.now()
	end := now
	e := model.TimeEntry{
		ID:          m.newID(),
		TaskID:      m.state.CurrentTaskID,
		ProjectID:   opts.ProjectID,
		EmployeeID:  opts.EmployeeID,
		StartTime:   *m.state.StartTime,
		EndTime:     &end,
		Duration:    m.duration(now),
		Description: opts.Description,
		CreatedAt:   now,
	}

	stored, err := m.sink.AddTimeEntry(e)
	if err != nil {
		return nil, fmt.Errorf("failed to record time entry: %w", err)
	}
	return &stored, nil
}

// Reset discards the current session without producing a time entry
func (m *Machine) Reset() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clear()
	return m.snapshot()
}

// WallElapsed returns running wall-clock time for the current session,
// excluding pauses
func (m *Machine) WallElapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state.Phase() {
	case Running:
		return m.activeWall + m.now().Sub(m.runningSince)
	case Paused:
		return m.activeWall
	}
	return 0
}

func (m *Machine) duration(now time.Time) int {
	if m.source != SourceWallClock {
		return m.state.ElapsedSeconds
	}
	active := m.activeWall
	if m.state.IsRunning {
		active += now.Sub(m.runningSince)
	}
	if active < 0 {
		return 0
	}
	return int(active / time.Second)
}

func (m *Machine) clear() {
	m.state = State{}
	m.runningSince = time.Time{}
	m.activeWall = 0
}

func (m *Machine) snapshot() State {
	s := m.state
	if s.StartTime != nil {
		t := *s.StartTime
		s.StartTime = &t
	}
	return s
}
