package timeutil

import (
	"testing"
	"time"
)

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name      string
		month     time.Time
		weekStart time.Weekday
		weeks     int
		firstCell time.Time
		lastCell  time.Time
	}{
		{
			// January 2024 starts on a Monday and ends on a Wednesday
			name:      "month starting on monday",
			month:     makeTime(2024, time.January, 20, 0, 0, 0),
			weekStart: time.Monday,
			weeks:     5,
			firstCell: makeTime(2024, time.January, 1, 0, 0, 0),
			lastCell:  makeTime(2024, time.February, 4, 0, 0, 0),
		},
		{
			// September 2024 starts on a Sunday
			name:      "sunday first of month with monday weeks",
			month:     makeTime(2024, time.September, 1, 0, 0, 0),
			weekStart: time.Monday,
			weeks:     6,
			firstCell: makeTime(2024, time.August, 26, 0, 0, 0),
			lastCell:  makeTime(2024, time.October, 6, 0, 0, 0),
		},
		{
			// February 2026 runs Sunday 1st to Saturday 28th
			name:      "exact four weeks",
			month:     makeTime(2026, time.February, 14, 0, 0, 0),
			weekStart: time.Sunday,
			weeks:     4,
			firstCell: makeTime(2026, time.February, 1, 0, 0, 0),
			lastCell:  makeTime(2026, time.February, 28, 0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := MonthGrid(tt.month, tt.weekStart)
			if len(grid) != tt.weeks {
				t.Fatalf("MonthGrid() returned %d weeks, expected %d", len(grid), tt.weeks)
			}
			for i, week := range grid {
				if len(week) != 7 {
					t.Errorf("week %d has %d days", i, len(week))
				}
				if week[0].Weekday() != tt.weekStart {
					t.Errorf("week %d starts on %v, expected %v", i, week[0].Weekday(), tt.weekStart)
				}
			}
			if first := grid[0][0]; !first.Equal(tt.firstCell) {
				t.Errorf("first cell = %v, expected %v", first, tt.firstCell)
			}
			last := grid[len(grid)-1][6]
			if !last.Equal(tt.lastCell) {
				t.Errorf("last cell = %v, expected %v", last, tt.lastCell)
			}
		})
	}
}

func TestParseWeekday(t *testing.T) {
	if ParseWeekday("sunday") != time.Sunday {
		t.Error("sunday should map to time.Sunday")
	}
	for _, s := range []string{"monday", "", "friday"} {
		if ParseWeekday(s) != time.Monday {
			t.Errorf("ParseWeekday(%q) should default to Monday", s)
		}
	}
}
