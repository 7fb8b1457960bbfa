package service

import (
	"sync"

	"github.com/xolan/timora/internal/stats"
	"github.com/xolan/timora/internal/store"
)

// StatsService computes project statistics from the store. The last report
// is cached against the store version and recomputed after any mutation.
type StatsService struct {
	store *store.Store

	mu      sync.Mutex
	cached  *StatsResult
	compute int
}

// NewStatsService creates a new StatsService
func NewStatsService(st *store.Store) *StatsService {
	return &StatsService{store: st}
}

// Report returns totals and the per-project breakdown sorted by hours.
// Callers get their own copy of the cached report.
func (s *StatsService) Report() StatsResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	version := s.store.Version()
	if s.cached != nil && s.cached.Version == version {
		return StatsResult{Report: s.cached.Report.Clone(), Version: s.cached.Version}
	}

	snap := s.store.Snapshot()
	result := StatsResult{
		Report:  stats.BuildReport(snap.Projects, snap.Tasks, snap.Employees, snap.TimeEntries),
		Version: snap.Version,
	}
	s.cached = &result
	s.compute++
	return StatsResult{Report: result.Report.Clone(), Version: result.Version}
}

// Project returns the report for a single project
func (s *StatsService) Project(id string) (stats.ProjectTimeStats, bool) {
	for _, p := range s.Report().Projects {
		if p.ProjectID == id {
			return p, true
		}
	}
	return stats.ProjectTimeStats{}, false
}
