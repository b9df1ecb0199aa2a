package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/tend/internal/engine"
	"github.com/julianstephens/tend/internal/models"
	"github.com/julianstephens/tend/internal/validation"
)

type HabitAddCmd struct {
	Name       string `arg:"" help:"Habit name."`
	Importance int    `short:"i" help:"Importance (1-5, higher matters more)." default:"3"`
	Target     int    `short:"t" help:"Advisory target minutes per day." default:"0"`
}

func (c *HabitAddCmd) Validate() error {
	if err := validation.ValidateHabitName(c.Name); err != nil {
		return err
	}
	if err := validation.ValidateImportance(c.Importance); err != nil {
		return err
	}
	return validation.ValidateTargetMinutes(c.Target)
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Check if habit with same name already exists
	if _, err := ctx.Store.GetHabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	habit := models.Habit{
		ID:         uuid.New().String(),
		Name:       c.Name,
		Importance: c.Importance,
		CreatedAt:  time.Now(),
	}
	if c.Target > 0 {
		target := c.Target
		habit.TargetMinutes = &target
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (importance %d)\n", c.Name, c.Importance)
	return nil
}

type HabitEditCmd struct {
	Name       string `arg:"" help:"Habit to edit."`
	Rename     string `help:"New habit name."`
	Importance int    `short:"i" help:"New importance (1-5)." default:"0"`
	Target     int    `short:"t" help:"New target minutes per day (0 clears it)." default:"-1"`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	changed := false
	if c.Rename != "" {
		if err := validation.ValidateHabitName(c.Rename); err != nil {
			return err
		}
		habit.Name = c.Rename
		changed = true
	}
	if c.Importance != 0 {
		if err := validation.ValidateImportance(c.Importance); err != nil {
			return err
		}
		habit.Importance = c.Importance
		changed = true
	}
	if c.Target >= 0 {
		if c.Target == 0 {
			habit.TargetMinutes = nil
		} else {
			target := c.Target
			habit.TargetMinutes = &target
		}
		changed = true
	}

	if !changed {
		fmt.Println("Nothing to change.")
		return nil
	}

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'tend habit add'.")
		return nil
	}

	logs, err := ctx.Store.GetAllLogs()
	if err != nil {
		return err
	}
	streaks := engine.WeeklyStreaks(habits, logs, time.Now())

	fmt.Printf("%s %s %s %s\n", pad("Habit", 24), pad("Importance", 10), pad("Target", 12), "Streak")
	for _, habit := range habits {
		fmt.Printf("%s %s %s %d/7\n",
			pad(truncate(habit.Name, 24), 24),
			pad(fmt.Sprintf("%d", habit.Importance), 10),
			pad(formatTarget(habit.TargetMinutes), 12),
			streaks[habit.ID])
	}

	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", c.Name)
	fmt.Println("(Its logged minutes are kept and will show as \"Unknown habit\")")
	return nil
}
