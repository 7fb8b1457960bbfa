// Package ticker drives the focus timer once per second while it runs.
package ticker

import (
	"sync"
	"time"
)

// DefaultInterval is the real-time tick period
const DefaultInterval = time.Second

// Source produces a tick channel for the given interval and a function that
// releases it. It is replaceable in tests.
type Source func(interval time.Duration) (<-chan time.Time, func())

// RealSource is backed by time.Ticker
func RealSource(interval time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(interval)
	return t.C, t.Stop
}

// Driver delivers ticks to a callback from a single goroutine. At most one
// schedule is outstanding at any time.
type Driver struct {
	interval time.Duration
	source   Source
	onTick   func()

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// Option configures a Driver
type Option func(*Driver)

// WithInterval overrides DefaultInterval
func WithInterval(d time.Duration) Option {
	return func(dr *Driver) { dr.interval = d }
}

// WithSource replaces RealSource
func WithSource(src Source) Option {
	return func(dr *Driver) { dr.source = src }
}

// New creates a stopped Driver that calls onTick on every tick
func New(onTick func(), opts ...Option) *Driver {
	d := &Driver{
		interval: DefaultInterval,
		source:   RealSource,
		onTick:   onTick,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start begins delivering ticks. Calling Start while already running is a
// no-op and reports false.
func (d *Driver) Start() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stop != nil {
		return false
	}

	ticks, release := d.source(d.interval)
	d.stop = make(chan struct{})
	d.done = make(chan struct{})
	go d.loop(ticks, release, d.stop, d.done)
	return true
}

// Stop cancels the schedule and waits for the goroutine to exit. No tick is
// delivered after Stop returns. Stopping a stopped Driver is a no-op.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stop == nil {
		return
	}
	close(d.stop)
	<-d.done
	d.stop = nil
	d.done = nil
}

// Running reports whether a schedule is outstanding
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stop != nil
}

func (d *Driver) loop(ticks <-chan time.Time, release func(), stop, done chan struct{}) {
	defer close(done)
	defer release()

	for {
		select {
		case <-stop:
			return
		case <-ticks:
			// a tick racing with Stop is dropped
			select {
			case <-stop:
				return
			default:
			}
			d.onTick()
		}
	}
}
