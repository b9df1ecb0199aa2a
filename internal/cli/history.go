package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/tend/internal/engine"
)

type HistoryCmd struct {
	Days int `help:"Limit to the most recent N days with activity (0 = all)." default:"0"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}
	logs, err := ctx.Store.GetAllLogs()
	if err != nil {
		return err
	}
	entries, err := ctx.Store.GetAllGratitude()
	if err != nil {
		return err
	}

	records := engine.Timeline(habits, logs, entries)
	if len(records) == 0 {
		fmt.Println("Nothing logged yet.")
		return nil
	}
	if c.Days > 0 && len(records) > c.Days {
		records = records[:c.Days]
	}

	index := habitIndex(habits)
	for _, rec := range records {
		fmt.Printf("%s\n", rec.Day)
		for _, log := range rec.Logs {
			name := "Habit"
			importance := "-"
			if habit, ok := index[log.HabitID]; ok {
				name = habit.Name
				importance = fmt.Sprintf("%d", habit.Importance)
			}
			fmt.Printf("  %s  %3d min  (importance %s)\n", pad(truncate(name, 24), 24), log.Minutes, importance)
		}
		if rec.Gratitude != nil && strings.TrimSpace(rec.Gratitude.Response) != "" {
			fmt.Printf("  Gratitude: %s\n", rec.Gratitude.Response)
		}
		fmt.Println()
	}

	return nil
}
