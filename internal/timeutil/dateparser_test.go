package timeutil

import (
	"strings"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Time
		wantErr     bool
		errContains string
	}{
		{name: "iso", input: "2024-01-15", expected: makeTime(2024, time.January, 15, 0, 0, 0)},
		{name: "european", input: "15/01/2024", expected: makeTime(2024, time.January, 15, 0, 0, 0)},
		{name: "surrounding spaces", input: " 2024-03-01 ", expected: makeTime(2024, time.March, 1, 0, 0, 0)},
		{name: "empty", input: "", wantErr: true, errContains: "cannot be empty"},
		{name: "year only", input: "2024", wantErr: true, errContains: "missing month and day"},
		{name: "missing day", input: "2024-01", wantErr: true, errContains: "missing day"},
		{name: "garbage", input: "tomorrow", wantErr: true, errContains: "invalid date format"},
		{name: "impossible date", input: "2024-02-30", wantErr: true, errContains: "invalid date format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error, got %v", tt.input, result)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("ParseDate(%q) error = %q, expected to contain %q", tt.input, err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if !result.Equal(tt.expected) {
				t.Errorf("ParseDate(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	now := makeTime(2024, time.June, 18, 14, 0, 0)

	tests := []struct {
		name        string
		input       string
		expected    time.Time
		errContains string
	}{
		{name: "empty means current month", input: "", expected: makeTime(2024, time.June, 1, 0, 0, 0)},
		{name: "explicit month", input: "2023-12", expected: makeTime(2023, time.December, 1, 0, 0, 0)},
		{name: "year only", input: "2024", errContains: "missing month"},
		{name: "full date", input: "2024-01-15", errContains: "invalid month format"},
		{name: "month out of range", input: "2024-13", errContains: "invalid month format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseMonth(tt.input, now)
			if tt.errContains != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("ParseMonth(%q) error = %v, expected to contain %q", tt.input, err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMonth(%q) unexpected error: %v", tt.input, err)
			}
			if !result.Equal(tt.expected) {
				t.Errorf("ParseMonth(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}
