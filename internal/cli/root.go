package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/tend/internal/engine"
	"github.com/julianstephens/tend/internal/models"
	"github.com/julianstephens/tend/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// habitIndex builds an id lookup for display purposes
func habitIndex(habits []models.Habit) map[string]models.Habit {
	index := make(map[string]models.Habit, len(habits))
	for _, h := range habits {
		index[h.ID] = h
	}
	return index
}

func printSummary(s engine.Summary) {
	fmt.Printf("%s (%s)\n\n", s.Label, s.DateLabel)
	fmt.Printf("  Total minutes:      %d\n", s.TotalMinutes)
	fmt.Printf("  Average per habit:  %.1f\n", s.AverageMinutesPerHabit)
	fmt.Printf("  Active days:        %d\n", s.ActiveDays)
	if s.TopHabit != nil {
		fmt.Printf("  Top habit:          %s (%d min)\n", s.TopHabit.Name, s.TopHabit.Minutes)
	}
	fmt.Printf("\n%s\n", s.SuggestedFocus)
}

// truncate shortens a string for fixed-width table output
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func formatTarget(target *int) string {
	if target == nil {
		return "-"
	}
	return fmt.Sprintf("%d min/day", *target)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
