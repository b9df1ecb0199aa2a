package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/tend/internal/models"
	"github.com/julianstephens/tend/internal/validation"
)

type LogCmd struct {
	Habit   string `arg:"" help:"Habit name."`
	Minutes string `arg:"" optional:"" help:"Minutes practiced (free-form; rounded, negatives become 0)."`
	Date    string `short:"d" help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Clear   bool   `help:"Remove the day's log instead of setting it."`
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Habit)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Habit)
	}

	day, err := validation.ResolveDay(c.Date, time.Now())
	if err != nil {
		return err
	}

	if c.Clear {
		if err := ctx.Store.DeleteLog(habit.ID, day); err != nil {
			return err
		}
		fmt.Printf("Cleared log for %q on %s\n", c.Habit, day)
		return nil
	}

	if c.Minutes == "" {
		return fmt.Errorf("minutes required (or use --clear to remove the day's log)")
	}

	// Free-form input is coerced before it ever reaches the engine:
	// non-numeric or negative becomes 0, which removes the log.
	minutes := validation.CoerceMinutes(c.Minutes)
	if err := ctx.Store.UpsertLog(models.HabitLog{HabitID: habit.ID, Day: day, Minutes: minutes}); err != nil {
		return err
	}

	if minutes == 0 {
		fmt.Printf("Nothing logged for %q on %s (zero minutes means no log)\n", c.Habit, day)
	} else {
		fmt.Printf("Logged %d minutes of %q on %s\n", minutes, c.Habit, day)
	}
	return nil
}
