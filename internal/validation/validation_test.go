package validation

import (
	"testing"
	"time"
)

func TestCoerceMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"30", 30},
		{"0", 0},
		{" 45 ", 45},
		{"29.4", 29},
		{"29.5", 30},
		{"-10", 0},
		{"-0.5", 0},
		{"abc", 0},
		{"", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"1e3", 1000},
		{"1e300", MaxMinutes},
		{"9223372036854775807", MaxMinutes},
	}

	for _, tt := range tests {
		if got := CoerceMinutes(tt.input); got != tt.want {
			t.Errorf("CoerceMinutes(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestCoerceMinutesNeverNegative(t *testing.T) {
	for _, input := range []string{"1e300", "1e18", "-1e300", "1.7976931348623157e308"} {
		if got := CoerceMinutes(input); got < 0 {
			t.Errorf("CoerceMinutes(%q) = %d, want a non-negative value", input, got)
		}
	}
}

func TestValidateImportance(t *testing.T) {
	for _, valid := range []int{1, 3, 5} {
		if err := ValidateImportance(valid); err != nil {
			t.Errorf("Expected importance %d to be valid: %v", valid, err)
		}
	}
	for _, invalid := range []int{0, -1, 6, 100} {
		if err := ValidateImportance(invalid); err == nil {
			t.Errorf("Expected importance %d to be rejected", invalid)
		}
	}
}

func TestValidateHabitName(t *testing.T) {
	if err := ValidateHabitName("Read"); err != nil {
		t.Errorf("Expected valid name: %v", err)
	}
	for _, invalid := range []string{"", "   ", "\t"} {
		if err := ValidateHabitName(invalid); err == nil {
			t.Errorf("Expected name %q to be rejected", invalid)
		}
	}
}

func TestValidateTargetMinutes(t *testing.T) {
	if err := ValidateTargetMinutes(0); err != nil {
		t.Errorf("Zero target should be valid: %v", err)
	}
	if err := ValidateTargetMinutes(-5); err == nil {
		t.Error("Negative target should be rejected")
	}
}

func TestResolveDay(t *testing.T) {
	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.Local)

	for _, input := range []string{"", "today"} {
		day, err := ResolveDay(input, now)
		if err != nil {
			t.Fatalf("ResolveDay(%q) failed: %v", input, err)
		}
		if day != "2024-05-20" {
			t.Errorf("ResolveDay(%q) = %s, want 2024-05-20", input, day)
		}
	}

	day, err := ResolveDay("2024-01-15", now)
	if err != nil || day != "2024-01-15" {
		t.Errorf("Expected explicit date to pass through, got %s, %v", day, err)
	}

	if _, err := ResolveDay("01/15/2024", now); err == nil {
		t.Error("Expected error for wrong date format")
	}
}
