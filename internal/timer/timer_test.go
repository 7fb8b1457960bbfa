package timer

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/xolan/timora/internal/model"
)

// recordingSink collects appended entries
type recordingSink struct {
	entries []model.TimeEntry
	err     error
}

func (s *recordingSink) AddTimeEntry(e model.TimeEntry) (model.TimeEntry, error) {
	if s.err != nil {
		return model.TimeEntry{}, s.err
	}
	s.entries = append(s.entries, e)
	return e, nil
}

// manualClock is advanced explicitly by tests
type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }
func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestMachine(t *testing.T, opts ...Option) (*Machine, *recordingSink, *manualClock) {
	t.Helper()
	sink := &recordingSink{}
	clock := &manualClock{now: time.Date(2024, time.January, 15, 9, 0, 0, 0, time.Local)}
	seq := 0
	base := []Option{
		WithClock(clock.Now),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("entry-%d", seq)
		}),
	}
	return New(sink, append(base, opts...)...), sink, clock
}

func tickN(m *Machine, n int) {
	for i := 0; i < n; i++ {
		m.Tick()
	}
}

func TestNew_StartsIdle(t *testing.T) {
	m, _, _ := newTestMachine(t)

	state := m.State()
	if state.IsRunning || state.IsPaused || state.ElapsedSeconds != 0 || state.CurrentTaskID != "" || state.StartTime != nil {
		t.Errorf("expected idle state, got %+v", state)
	}
	if m.Phase() != Idle {
		t.Errorf("Phase() = %v, expected idle", m.Phase())
	}
}

func TestStartTickStop_DurationEqualsTicks(t *testing.T) {
	for _, n := range []int{0, 1, 59, 3600} {
		t.Run(fmt.Sprintf("%d ticks", n), func(t *testing.T) {
			m, sink, _ := newTestMachine(t)

			if _, err := m.Start("T1"); err != nil {
				t.Fatalf("Start() returned unexpected error: %v", err)
			}
			tickN(m, n)

			entry, err := m.Stop(StopOptions{EmployeeID: "e1"})
			if err != nil {
				t.Fatalf("Stop() returned unexpected error: %v", err)
			}
			if entry == nil {
				t.Fatal("Stop() returned nil entry")
			}
			if entry.Duration != n {
				t.Errorf("Duration = %d, expected %d", entry.Duration, n)
			}
			if len(sink.entries) != 1 {
				t.Errorf("expected 1 appended entry, got %d", len(sink.entries))
			}
			if m.Phase() != Idle || m.State().ElapsedSeconds != 0 {
				t.Errorf("expected idle after stop, got %+v", m.State())
			}
		})
	}
}

func TestPauseResumeScenario(t *testing.T) {
	m, sink, _ := newTestMachine(t)

	if _, err := m.Start("T1"); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	tickN(m, 65)
	if _, err := m.Pause(); err != nil {
		t.Fatalf("Pause() error: %v", err)
	}
	tickN(m, 100)
	if got := m.State().ElapsedSeconds; got != 65 {
		t.Errorf("ticks while paused changed elapsed: %d", got)
	}
	if _, err := m.Resume(); err != nil {
		t.Fatalf("Resume() error: %v", err)
	}
	tickN(m, 5)

	entry, err := m.Stop(StopOptions{EmployeeID: "e1"})
	if err != nil {
		t.Fatalf("Stop() error: %v", err)
	}
	if entry.Duration != 70 {
		t.Errorf("Duration = %d, expected 70", entry.Duration)
	}
	if len(sink.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(sink.entries))
	}

	state := m.State()
	if state.Phase() != Idle || state.ElapsedSeconds != 0 || state.CurrentTaskID != "" || state.StartTime != nil {
		t.Errorf("expected idle state after stop, got %+v", state)
	}
}

func TestStop_EntryFields(t *testing.T) {
	m, _, clock := newTestMachine(t)
	startedAt := clock.Now()

	_, _ = m.Start("T7")
	tickN(m, 3)
	clock.Advance(3 * time.Second)

	entry, err := m.Stop(StopOptions{EmployeeID: "e2", ProjectID: "p1", Description: "pairing"})
	if err != nil {
		t.Fatalf("Stop() error: %v", err)
	}

	if entry.ID != "entry-1" {
		t.Errorf("ID = %q, expected entry-1", entry.ID)
	}
	if entry.TaskID != "T7" || entry.EmployeeID != "e2" || entry.ProjectID != "p1" || entry.Description != "pairing" {
		t.Errorf("unexpected entry fields: %+v", entry)
	}
	if !entry.StartTime.Equal(startedAt) {
		t.Errorf("StartTime = %v, expected %v", entry.StartTime, startedAt)
	}
	if entry.EndTime == nil || !entry.EndTime.Equal(clock.Now()) {
		t.Errorf("EndTime = %v, expected %v", entry.EndTime, clock.Now())
	}
	if !entry.CreatedAt.Equal(clock.Now()) {
		t.Errorf("CreatedAt = %v, expected %v", entry.CreatedAt, clock.Now())
	}
}

func TestStop_FromPaused(t *testing.T) {
	m, sink, _ := newTestMachine(t)
	_, _ = m.Start("T1")
	tickN(m, 10)
	_, _ = m.Pause()

	entry, err := m.Stop(StopOptions{EmployeeID: "e1"})
	if err != nil || entry == nil {
		t.Fatalf("Stop() from paused = %v, %v", entry, err)
	}
	if entry.Duration != 10 || len(sink.entries) != 1 {
		t.Errorf("unexpected result: duration=%d entries=%d", entry.Duration, len(sink.entries))
	}
}

func TestStop_FromIdleIsNoop(t *testing.T) {
	m, sink, _ := newTestMachine(t)

	entry, err := m.Stop(StopOptions{EmployeeID: "e1"})
	if err != nil {
		t.Errorf("Stop() from idle returned error: %v", err)
	}
	if entry != nil {
		t.Errorf("Stop() from idle returned entry: %+v", entry)
	}
	if len(sink.entries) != 0 {
		t.Errorf("Stop() from idle appended %d entries", len(sink.entries))
	}
	if m.Phase() != Idle {
		t.Error("state changed after idle stop")
	}
}

func TestStop_SinkErrorStillResets(t *testing.T) {
	m, sink, _ := newTestMachine(t)
	sink.err = errors.New("disk full")
	_, _ = m.Start("T1")
	tickN(m, 4)

	entry, err := m.Stop(StopOptions{EmployeeID: "e1"})
	if err == nil || !errors.Is(err, sink.err) {
		t.Errorf("expected wrapped sink error, got %v", err)
	}
	if entry != nil {
		t.Error("expected nil entry on sink error")
	}
	if m.Phase() != Idle {
		t.Error("timer must return to idle even when the sink fails")
	}
}

func TestReset_FromAnyPhase(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *Machine)
	}{
		{"idle", func(m *Machine) {}},
		{"running", func(m *Machine) { _, _ = m.Start("T1"); tickN(m, 42) }},
		{"paused", func(m *Machine) { _, _ = m.Start("T1"); tickN(m, 42); _, _ = m.Pause() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, sink, _ := newTestMachine(t)
			tt.setup(m)

			state := m.Reset()
			if state.Phase() != Idle || state.ElapsedSeconds != 0 || state.CurrentTaskID != "" {
				t.Errorf("expected idle after reset, got %+v", state)
			}
			if len(sink.entries) != 0 {
				t.Errorf("Reset() appended %d entries", len(sink.entries))
			}
		})
	}
}

func TestInvalidTransitions(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m *Machine)
		call    func(m *Machine) error
		wantErr error
	}{
		{
			name:    "pause from idle",
			setup:   func(m *Machine) {},
			call:    func(m *Machine) error { _, err := m.Pause(); return err },
			wantErr: ErrTimerNotRunning,
		},
		{
			name:    "pause from paused",
			setup:   func(m *Machine) { _, _ = m.Start("T1"); _, _ = m.Pause() },
			call:    func(m *Machine) error { _, err := m.Pause(); return err },
			wantErr: ErrTimerNotRunning,
		},
		{
			name:    "resume from idle",
			setup:   func(m *Machine) {},
			call:    func(m *Machine) error { _, err := m.Resume(); return err },
			wantErr: ErrTimerNotPaused,
		},
		{
			name:    "resume from running",
			setup:   func(m *Machine) { _, _ = m.Start("T1") },
			call:    func(m *Machine) error { _, err := m.Resume(); return err },
			wantErr: ErrTimerNotPaused,
		},
		{
			name:    "start while running",
			setup:   func(m *Machine) { _, _ = m.Start("T1") },
			call:    func(m *Machine) error { _, err := m.Start("T2"); return err },
			wantErr: ErrTimerAlreadyActive,
		},
		{
			name:    "start while paused",
			setup:   func(m *Machine) { _, _ = m.Start("T1"); _, _ = m.Pause() },
			call:    func(m *Machine) error { _, err := m.Start("T2"); return err },
			wantErr: ErrTimerAlreadyActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestMachine(t)
			tt.setup(m)
			tickN(m, 3)
			before := m.State()

			err := tt.call(m)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, expected %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("error %v does not wrap ErrInvalidTransition", err)
			}

			after := m.State()
			if after.Phase() != before.Phase() || after.ElapsedSeconds != before.ElapsedSeconds || after.CurrentTaskID != before.CurrentTaskID {
				t.Errorf("rejected transition changed state: before=%+v after=%+v", before, after)
			}
		})
	}
}

func TestStart_EmptyTaskID(t *testing.T) {
	m, _, _ := newTestMachine(t)
	if _, err := m.Start(""); !errors.Is(err, ErrEmptyTaskID) {
		t.Errorf("expected ErrEmptyTaskID, got %v", err)
	}
	if m.Phase() != Idle {
		t.Error("rejected start changed state")
	}
}

func TestStart_AfterStopBeginsFresh(t *testing.T) {
	m, _, _ := newTestMachine(t)
	_, _ = m.Start("T1")
	tickN(m, 12)
	_, _ = m.Stop(StopOptions{EmployeeID: "e1"})

	state, err := m.Start("T2")
	if err != nil {
		t.Fatalf("Start() after stop error: %v", err)
	}
	if state.ElapsedSeconds != 0 || state.CurrentTaskID != "T2" {
		t.Errorf("expected fresh session, got %+v", state)
	}
}

func TestTick_OnlyCountsWhileRunning(t *testing.T) {
	m, _, _ := newTestMachine(t)
	if m.Tick() {
		t.Error("tick counted while idle")
	}
	_, _ = m.Start("T1")
	if !m.Tick() {
		t.Error("tick not counted while running")
	}
	_, _ = m.Pause()
	if m.Tick() {
		t.Error("tick counted while paused")
	}
	if got := m.State().ElapsedSeconds; got != 1 {
		t.Errorf("ElapsedSeconds = %d, expected 1", got)
	}
}

func TestWallClockSource_ExcludesPauses(t *testing.T) {
	m, _, clock := newTestMachine(t, WithDurationSource(SourceWallClock))

	_, _ = m.Start("T1")
	clock.Advance(90 * time.Second)
	tickN(m, 80) // a slow tick driver undercounts; wall clock wins
	_, _ = m.Pause()
	clock.Advance(10 * time.Minute)
	if got := m.WallElapsed(); got != 90*time.Second {
		t.Errorf("WallElapsed() while paused = %v, expected 90s", got)
	}
	_, _ = m.Resume()
	clock.Advance(30*time.Second + 400*time.Millisecond)

	entry, err := m.Stop(StopOptions{EmployeeID: "e1"})
	if err != nil {
		t.Fatalf("Stop() error: %v", err)
	}
	if entry.Duration != 120 {
		t.Errorf("Duration = %d, expected 120", entry.Duration)
	}
}

func TestState_SnapshotDoesNotAlias(t *testing.T) {
	m, _, _ := newTestMachine(t)
	_, _ = m.Start("T1")

	s := m.State()
	original := *s.StartTime
	*s.StartTime = original.Add(time.Hour)

	if !m.State().StartTime.Equal(original) {
		t.Error("mutating a snapshot changed the machine state")
	}
}

func TestPhase_String(t *testing.T) {
	tests := map[Phase]string{Idle: "idle", Running: "running", Paused: "paused"}
	for phase, want := range tests {
		if got := phase.String(); got != want {
			t.Errorf("%d.String() = %q, expected %q", phase, got, want)
		}
	}
}
