package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/timora/internal/cli"
	"github.com/xolan/timora/internal/service"
	"github.com/xolan/timora/internal/timeutil"
)

var (
	calendarTitleStyle = lipgloss.NewStyle().Bold(true)
	calendarCellStyle  = lipgloss.NewStyle().Width(5).Align(lipgloss.Right)
)

// ShowCalendar prints the month grid for month (YYYY-MM, empty for the
// current month) followed by the tasks due in it
func ShowCalendar(deps *cli.Deps, month string) {
	start, err := timeutil.ParseMonth(month, deps.Services.Now())
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	grid := deps.Services.Calendar.Month(start)
	weekStart := deps.Services.Calendar.WeekStart()

	_, _ = fmt.Fprintln(deps.Stdout, calendarTitleStyle.Render(grid.Month.Format("January 2006")))

	header := make([]string, 7)
	for i := range header {
		header[i] = calendarCellStyle.Render(((weekStart + time.Weekday(i)) % 7).String()[:2])
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Join(header, ""))

	var due []service.CalendarDay
	for _, week := range grid.Weeks {
		cells := make([]string, len(week))
		for i, day := range week {
			cells[i] = calendarCellStyle.Render(dayLabel(day))
			if day.InMonth && len(day.Events) > 0 {
				due = append(due, day)
			}
		}
		_, _ = fmt.Fprintln(deps.Stdout, strings.Join(cells, ""))
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 35))
	if len(due) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No tasks due this month")
		return
	}
	for _, day := range due {
		for _, ev := range day.Events {
			_, _ = fmt.Fprintf(deps.Stdout, "%s  %-32s %s\n",
				day.Date.Format("Mon Jan 02"), cli.Truncate(ev.Title, 32), cli.PriorityLabel(ev.Priority))
		}
	}
}

// dayLabel marks today with brackets and days with tasks due with an asterisk
func dayLabel(day service.CalendarDay) string {
	if !day.InMonth {
		return ""
	}
	label := fmt.Sprintf("%d", day.Date.Day())
	if len(day.Events) > 0 {
		label += "*"
	}
	if day.IsToday {
		label = "[" + label + "]"
	}
	return label
}
