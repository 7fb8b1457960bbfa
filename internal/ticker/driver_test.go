package ticker

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// manualSource hands out channels the test pushes ticks into
type manualSource struct {
	mu       sync.Mutex
	chans    []chan time.Time
	released int
}

func (s *manualSource) source(time.Duration) (<-chan time.Time, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan time.Time)
	s.chans = append(s.chans, ch)
	return ch, func() {
		s.mu.Lock()
		s.released++
		s.mu.Unlock()
	}
}

func (s *manualSource) current(t *testing.T) chan time.Time {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.chans) == 0 {
		t.Fatal("no schedule was created")
	}
	return s.chans[len(s.chans)-1]
}

func (s *manualSource) schedules() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.chans)
}

func (s *manualSource) releases() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released
}

func newTestDriver(t *testing.T) (*Driver, *manualSource, chan struct{}) {
	t.Helper()
	src := &manualSource{}
	ticked := make(chan struct{}, 16)
	d := New(func() { ticked <- struct{}{} }, WithSource(src.source))
	t.Cleanup(d.Stop)
	return d, src, ticked
}

func waitTick(t *testing.T, ticked chan struct{}) {
	t.Helper()
	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("tick was not delivered")
	}
}

func TestDriver_DeliversTicks(t *testing.T) {
	d, src, ticked := newTestDriver(t)

	if !d.Start() {
		t.Fatal("Start() = false on a stopped driver")
	}
	ch := src.current(t)
	for i := 0; i < 3; i++ {
		ch <- time.Now()
		waitTick(t, ticked)
	}
}

func TestDriver_StartIsIdempotent(t *testing.T) {
	d, src, _ := newTestDriver(t)

	d.Start()
	if d.Start() {
		t.Error("second Start() reported a new schedule")
	}
	if got := src.schedules(); got != 1 {
		t.Errorf("expected 1 schedule, got %d", got)
	}
	if !d.Running() {
		t.Error("Running() = false after Start()")
	}
}

func TestDriver_StopIsSynchronous(t *testing.T) {
	var count atomic.Int32
	src := &manualSource{}
	d := New(func() { count.Add(1) }, WithSource(src.source))

	d.Start()
	ch := src.current(t)
	ch <- time.Now()
	d.Stop()

	if d.Running() {
		t.Error("Running() = true after Stop()")
	}
	if got := src.releases(); got != 1 {
		t.Errorf("expected the schedule to be released once, got %d", got)
	}

	// the goroutine is gone, so nobody receives on the old channel
	select {
	case ch <- time.Now():
		t.Error("a tick was accepted after Stop()")
	case <-time.After(50 * time.Millisecond):
	}
	if got := count.Load(); got != 1 {
		t.Errorf("expected 1 tick, got %d", got)
	}
}

func TestDriver_StopWhenStopped(t *testing.T) {
	d, src, _ := newTestDriver(t)
	d.Stop()
	d.Stop()
	if src.schedules() != 0 {
		t.Error("Stop() on a stopped driver created a schedule")
	}
}

func TestDriver_RestartCreatesFreshSchedule(t *testing.T) {
	d, src, ticked := newTestDriver(t)

	d.Start()
	first := src.current(t)
	d.Stop()
	d.Start()
	second := src.current(t)

	if first == second {
		t.Fatal("restart reused the old schedule")
	}
	second <- time.Now()
	waitTick(t, ticked)
	if got := src.schedules(); got != 2 {
		t.Errorf("expected 2 schedules, got %d", got)
	}
}

func TestNew_Defaults(t *testing.T) {
	d := New(func() {})
	if d.interval != DefaultInterval {
		t.Errorf("interval = %v, expected %v", d.interval, DefaultInterval)
	}
	d = New(func() {}, WithInterval(10*time.Millisecond))
	if d.interval != 10*time.Millisecond {
		t.Errorf("interval = %v, expected 10ms", d.interval)
	}
}

func TestDriver_RealSource(t *testing.T) {
	ticked := make(chan struct{}, 1)
	d := New(func() {
		select {
		case ticked <- struct{}{}:
		default:
		}
	}, WithInterval(5*time.Millisecond))
	d.Start()
	defer d.Stop()
	waitTick(t, ticked)
}
