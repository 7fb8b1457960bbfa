package service

import (
	"sort"

	"github.com/xolan/timora/internal/model"
	"github.com/xolan/timora/internal/stats"
	"github.com/xolan/timora/internal/store"
)

// RecentEntryLimit is how many entries TaskTime reports per task
const RecentEntryLimit = 5

// EntryService provides operations for recorded time entries
type EntryService struct {
	store *store.Store
}

// NewEntryService creates a new EntryService
func NewEntryService(st *store.Store) *EntryService {
	return &EntryService{store: st}
}

// List returns all time entries in insertion order
func (s *EntryService) List() []model.TimeEntry {
	return s.store.TimeEntries()
}

// ForTask returns the entries recorded against taskID, newest first
func (s *EntryService) ForTask(taskID string) []model.TimeEntry {
	var result []model.TimeEntry
	for _, e := range s.store.TimeEntries() {
		if e.TaskID == taskID {
			result = append(result, e)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartTime.After(result[j].StartTime)
	})
	return result
}

// TaskTime returns the total tracked seconds and the newest entries of a task
func (s *EntryService) TaskTime(taskID string) TaskTime {
	all := s.ForTask(taskID)
	recent := all
	if len(recent) > RecentEntryLimit {
		recent = recent[:RecentEntryLimit]
	}
	return TaskTime{
		TaskID:       taskID,
		TotalSeconds: stats.TaskSeconds(taskID, all),
		Recent:       recent,
	}
}

// Update merges patch into the entry. Returns false if the id is unknown.
func (s *EntryService) Update(id string, patch model.TimeEntryPatch) (bool, error) {
	return s.store.UpdateTimeEntry(id, patch)
}
