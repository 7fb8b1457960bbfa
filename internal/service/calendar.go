package service

import (
	"time"

	"github.com/xolan/timora/internal/config"
	"github.com/xolan/timora/internal/model"
	"github.com/xolan/timora/internal/store"
	"github.com/xolan/timora/internal/timeutil"
)

// CalendarService places tasks with a due date on a month grid
type CalendarService struct {
	store     *store.Store
	weekStart time.Weekday
	now       func() time.Time
}

// NewCalendarService creates a new CalendarService
func NewCalendarService(st *store.Store, cfg config.Config, now func() time.Time) *CalendarService {
	return &CalendarService{
		store:     st,
		weekStart: timeutil.ParseWeekday(cfg.WeekStartDay),
		now:       now,
	}
}

// Events returns one event per task that has a due date. The event color is
// the project's color, or the default when the project is unknown.
func (s *CalendarService) Events() []model.CalendarEvent {
	snap := s.store.Snapshot()
	return BuildEvents(snap.Tasks, snap.Projects)
}

// BuildEvents converts tasks with a due date into calendar events
func BuildEvents(tasks []model.Task, projects []model.Project) []model.CalendarEvent {
	colors := make(map[string]string, len(projects))
	for _, p := range projects {
		colors[p.ID] = p.Color
	}

	var events []model.CalendarEvent
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		color := colors[t.ProjectID]
		if color == "" {
			color = model.DefaultEventColor
		}
		events = append(events, model.CalendarEvent{
			ID:        t.ID,
			TaskID:    t.ID,
			Title:     t.Title,
			Start:     *t.DueDate,
			End:       *t.DueDate,
			Color:     color,
			ProjectID: t.ProjectID,
			Priority:  t.Priority,
		})
	}
	return events
}

// Month returns the grid for the month containing month
func (s *CalendarService) Month(month time.Time) CalendarMonth {
	events := s.Events()
	today := s.now()
	first := timeutil.StartOfMonth(month)

	result := CalendarMonth{Month: first}
	for _, week := range timeutil.MonthGrid(first, s.weekStart) {
		days := make([]CalendarDay, 0, len(week))
		for _, date := range week {
			day := CalendarDay{
				Date:    date,
				InMonth: date.Month() == first.Month() && date.Year() == first.Year(),
				IsToday: timeutil.SameDay(date, today),
			}
			for _, ev := range events {
				if timeutil.SameDay(date, ev.Start) {
					day.Events = append(day.Events, ev)
				}
			}
			days = append(days, day)
		}
		result.Weeks = append(result.Weeks, days)
	}
	return result
}

// WeekStart returns the configured first day of the week
func (s *CalendarService) WeekStart() time.Weekday {
	return s.weekStart
}
