package timeutil

import (
	"strings"
	"testing"
	"time"
)

func TestParseDate_ISOFormat(t *testing.T) {
	result, err := ParseDate("2026-08-17")
	if err != nil {
		t.Fatalf("ParseDate returned unexpected error: %v", err)
	}

	expected := time.Date(2026, 8, 17, 0, 0, 0, 0, time.Local)
	if !result.Equal(expected) {
		t.Errorf("ParseDate(\"2026-08-17\") = %v, expected %v", result, expected)
	}
}

func TestParseDate_EuropeanFormat(t *testing.T) {
	result, err := ParseDate("17/08/2026")
	if err != nil {
		t.Fatalf("ParseDate returned unexpected error: %v", err)
	}

	expected := time.Date(2026, 8, 17, 0, 0, 0, 0, time.Local)
	if !result.Equal(expected) {
		t.Errorf("ParseDate(\"17/08/2026\") = %v, expected %v", result, expected)
	}
}

func TestParseDate_ISOPreferredForAmbiguous(t *testing.T) {
	// 2026-05-06 must read as May 6, not June 5.
	result, err := ParseDate("2026-05-06")
	if err != nil {
		t.Fatalf("ParseDate returned unexpected error: %v", err)
	}
	if result.Month() != time.May || result.Day() != 6 {
		t.Errorf("ParseDate(\"2026-05-06\") = %v, expected May 6", result)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"garbage", "not-a-date"},
		{"year only", "2026"},
		{"missing year", "17/08"},
		{"american order rejected", "08/17/2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			if err == nil {
				t.Errorf("ParseDate(%q) succeeded, expected an error", tt.input)
			} else if !strings.Contains(err.Error(), "YYYY-MM-DD") {
				t.Errorf("ParseDate(%q) error %q should suggest the expected formats", tt.input, err)
			}
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			"wednesday",
			time.Date(2026, 8, 19, 15, 30, 0, 0, time.Local),
			time.Date(2026, 8, 17, 0, 0, 0, 0, time.Local),
		},
		{
			"monday stays monday",
			time.Date(2026, 8, 17, 0, 0, 0, 0, time.Local),
			time.Date(2026, 8, 17, 0, 0, 0, 0, time.Local),
		},
		{
			"sunday belongs to the preceding monday",
			time.Date(2026, 8, 23, 10, 0, 0, 0, time.Local),
			time.Date(2026, 8, 17, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartOfWeek(tt.input); !got.Equal(tt.expected) {
				t.Errorf("StartOfWeek(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCurrentWeekRange(t *testing.T) {
	now := time.Date(2026, 8, 19, 15, 30, 0, 0, time.Local)
	start, end := CurrentWeekRange(now)

	if !start.Equal(time.Date(2026, 8, 17, 0, 0, 0, 0, time.Local)) {
		t.Errorf("start = %v, expected Monday midnight", start)
	}
	if end.Before(now) {
		t.Errorf("end = %v, expected it to cover the rest of today", end)
	}
	if end.Day() != 19 {
		t.Errorf("end = %v, expected it to stay on the current day", end)
	}
}

func TestEndOfDay(t *testing.T) {
	input := time.Date(2026, 8, 17, 9, 15, 0, 0, time.Local)
	end := EndOfDay(input)

	if end.Day() != 17 || end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("EndOfDay(%v) = %v, expected last instant of the same day", input, end)
	}
}
