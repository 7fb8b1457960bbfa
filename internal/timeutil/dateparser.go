package timeutil

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	monthOnlyRe = regexp.MustCompile(`^\d{4}-\d{1,2}$`)
	yearOnlyRe  = regexp.MustCompile(`^\d{4}$`)
)

// ParseDate parses a date string in YYYY-MM-DD or DD/MM/YYYY format.
// Returns the parsed date at midnight in the local timezone.
func ParseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)")
	}

	for _, layout := range []string{"2006-01-02", "02/01/2006"} {
		if t, err := time.ParseInLocation(layout, input, time.Local); err == nil {
			return StartOfDay(t), nil
		}
	}

	switch {
	case yearOnlyRe.MatchString(input):
		return time.Time{}, fmt.Errorf("incomplete date '%s': missing month and day (use format YYYY-MM-DD, e.g., %s-01-15)", input, input)
	case monthOnlyRe.MatchString(input):
		return time.Time{}, fmt.Errorf("incomplete date '%s': missing day (use format YYYY-MM-DD, e.g., %s-15)", input, input)
	}
	return time.Time{}, fmt.Errorf("invalid date format '%s' (use YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)", input)
}

// ParseMonth parses a YYYY-MM string into the first day of that month.
// An empty string yields the month containing now.
func ParseMonth(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return StartOfMonth(now), nil
	}

	t, err := time.ParseInLocation("2006-01", input, now.Location())
	if err != nil {
		if yearOnlyRe.MatchString(input) {
			return time.Time{}, fmt.Errorf("incomplete month '%s': missing month (use format YYYY-MM, e.g., %s-01)", input, input)
		}
		return time.Time{}, fmt.Errorf("invalid month format '%s' (use YYYY-MM, e.g., 2024-01)", input)
	}
	return t, nil
}
