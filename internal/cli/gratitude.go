package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tend/internal/engine"
	"github.com/julianstephens/tend/internal/models"
	"github.com/julianstephens/tend/internal/validation"
)

type GratitudeShowCmd struct {
	Date string `short:"d" help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *GratitudeShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := validation.ResolveDay(c.Date, time.Now())
	if err != nil {
		return err
	}

	prompt := engine.PromptForDay(day, engine.DefaultPrompts)
	fmt.Printf("Prompt for %s:\n  %s\n", day, prompt.Text)

	entries, err := ctx.Store.GetAllGratitude()
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.Day == day {
			if strings.TrimSpace(entry.Response) != "" {
				fmt.Printf("\nYour reflection:\n  %s\n", entry.Response)
			}
			return nil
		}
	}

	fmt.Println("\nNo reflection yet. Capture one with 'tend gratitude write'.")
	return nil
}

type GratitudeWriteCmd struct {
	Response string `arg:"" optional:"" help:"Reflection text (interactive prompt if omitted)."`
	Date     string `short:"d" help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *GratitudeWriteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := validation.ResolveDay(c.Date, time.Now())
	if err != nil {
		return err
	}

	prompt := engine.PromptForDay(day, engine.DefaultPrompts)

	response := c.Response
	if response == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewText().
					Title(prompt.Text).
					Description(fmt.Sprintf("Gratitude reflection for %s", day)).
					Value(&response),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	entry := models.GratitudeEntry{
		Day:      day,
		PromptID: prompt.ID,
		Response: response,
	}
	if err := ctx.Store.UpsertGratitude(entry); err != nil {
		return err
	}

	fmt.Printf("Saved reflection for %s\n", day)
	return nil
}

type GratitudeClearCmd struct {
	Date string `short:"d" help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *GratitudeClearCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := validation.ResolveDay(c.Date, time.Now())
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteGratitude(day); err != nil {
		return err
	}

	fmt.Printf("Removed reflection for %s\n", day)
	return nil
}
