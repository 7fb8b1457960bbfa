package service

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/xolan/timora/internal/config"
)

// testClock is a manually advanced clock shared by services under test
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// newTestServices builds services with external ticks, a fixed clock and
// sequential ids
func newTestServices(t *testing.T) (*Services, *testClock) {
	t.Helper()
	return newTestServicesWithConfig(t, config.DefaultConfig())
}

func newTestServicesWithConfig(t *testing.T, cfg config.Config) (*Services, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Date(2024, time.January, 15, 10, 0, 0, 0, time.Local)}
	var mu sync.Mutex
	seq := 0
	svcs := NewServicesWithPaths(filepath.Join(t.TempDir(), "config.toml"), cfg, Options{
		ExternalTicks: true,
		Now:           clock.Now,
		IDGenerator: func() string {
			mu.Lock()
			defer mu.Unlock()
			seq++
			return fmt.Sprintf("id-%d", seq)
		},
	})
	t.Cleanup(svcs.Close)
	return svcs, clock
}
