package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	MinImportance = 1
	MaxImportance = 5

	// MaxMinutes caps a single coerced value. Converting a float beyond the
	// int range is implementation-defined and can come out negative, which
	// would break the non-negative contract below.
	MaxMinutes = math.MaxInt32
)

// CoerceMinutes converts free-form minute input to the non-negative integer
// the engine relies on: non-numeric or negative input becomes 0, valid input
// is rounded to the nearest integer, absurdly large input is capped at
// MaxMinutes.
func CoerceMinutes(input string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	if v > MaxMinutes {
		return MaxMinutes
	}
	return int(math.Round(v))
}

// ValidateImportance checks the 1-5 importance scale
func ValidateImportance(importance int) error {
	if importance < MinImportance || importance > MaxImportance {
		return fmt.Errorf("importance must be between %d and %d", MinImportance, MaxImportance)
	}
	return nil
}

// ValidateHabitName requires a non-empty display name
func ValidateHabitName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	return nil
}

// ValidateTargetMinutes checks the advisory daily target
func ValidateTargetMinutes(minutes int) error {
	if minutes < 0 {
		return fmt.Errorf("target minutes cannot be negative")
	}
	return nil
}

// ResolveDay turns a CLI date argument into a day key. Empty input and "today"
// resolve to now's local calendar day.
func ResolveDay(input string, now time.Time) (string, error) {
	if input == "" || input == "today" {
		return now.Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", input); err != nil {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", input)
	}
	return input, nil
}
