package timeutil

import "time"

// MonthGrid returns the days shown on a month calendar: whole weeks starting
// on weekStart, covering every day of the month containing t. Leading and
// trailing days belong to the neighbouring months.
func MonthGrid(t time.Time, weekStart time.Weekday) [][]time.Time {
	first := StartOfMonth(t)
	last := StartOfDay(EndOfMonth(t))

	day := StartOfWeek(first, weekStart)
	end := StartOfWeek(last, weekStart).AddDate(0, 0, 7)

	var weeks [][]time.Time
	for day.Before(end) {
		week := make([]time.Time, 7)
		for i := range week {
			week[i] = day
			day = day.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// ParseWeekday maps "sunday" to time.Sunday; everything else is Monday
func ParseWeekday(s string) time.Weekday {
	if s == "sunday" {
		return time.Sunday
	}
	return time.Monday
}
