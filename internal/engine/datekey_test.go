package engine

import (
	"testing"
	"time"
)

func TestDayKey_LocalCalendarDay(t *testing.T) {
	// Late evening local time must stay on the same day's key
	late := time.Date(2024, 3, 9, 23, 45, 0, 0, time.Local)
	if got := DayKey(late); got != "2024-03-09" {
		t.Errorf("Expected key 2024-03-09, got %s", got)
	}

	early := time.Date(2024, 3, 9, 0, 5, 0, 0, time.Local)
	if DayKey(late) != DayKey(early) {
		t.Errorf("Expected same key for any hour of the same day, got %s and %s", DayKey(late), DayKey(early))
	}
}

func TestDayKey_LexicographicOrderIsChronological(t *testing.T) {
	days := []time.Time{
		time.Date(2023, 12, 31, 12, 0, 0, 0, time.Local),
		time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local),
		time.Date(2024, 1, 9, 12, 0, 0, 0, time.Local),
		time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local),
		time.Date(2024, 2, 1, 12, 0, 0, 0, time.Local),
		time.Date(2024, 10, 1, 12, 0, 0, 0, time.Local),
	}

	for i := 1; i < len(days); i++ {
		prev, cur := DayKey(days[i-1]), DayKey(days[i])
		if !(prev < cur) {
			t.Errorf("Expected %s < %s to match chronological order", prev, cur)
		}
	}
}

func TestParseDayKey_RoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		time.Date(2024, 6, 15, 23, 59, 59, 0, time.Local),
		time.Date(2025, 12, 31, 4, 30, 0, 0, time.Local),
	}

	for _, instant := range instants {
		key := DayKey(instant)
		parsed, err := ParseDayKey(key)
		if err != nil {
			t.Fatalf("ParseDayKey(%s) failed: %v", key, err)
		}
		if DayKey(parsed) != key {
			t.Errorf("Round trip changed the day: %s became %s", key, DayKey(parsed))
		}
		if parsed.Year() != instant.Year() || parsed.Month() != instant.Month() || parsed.Day() != instant.Day() {
			t.Errorf("Parsed date %v does not match original local date %v", parsed, instant)
		}
	}
}

func TestParseDayKey_Invalid(t *testing.T) {
	if _, err := ParseDayKey("not-a-date"); err == nil {
		t.Error("Expected error for malformed key")
	}
}

func TestInRange(t *testing.T) {
	tests := []struct {
		name          string
		d, start, end string
		want          bool
	}{
		{"inside", "2024-01-15", "2024-01-01", "2024-01-31", true},
		{"start boundary inclusive", "2024-01-01", "2024-01-01", "2024-01-31", true},
		{"end boundary inclusive", "2024-01-31", "2024-01-01", "2024-01-31", true},
		{"before", "2023-12-31", "2024-01-01", "2024-01-31", false},
		{"after", "2024-02-01", "2024-01-01", "2024-01-31", false},
		{"inverted range is empty", "2024-01-15", "2024-01-31", "2024-01-01", false},
		{"single day range", "2024-01-15", "2024-01-15", "2024-01-15", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InRange(tt.d, tt.start, tt.end); got != tt.want {
				t.Errorf("InRange(%s, %s, %s) = %v, want %v", tt.d, tt.start, tt.end, got, tt.want)
			}
		})
	}
}
