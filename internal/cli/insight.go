package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/tend/internal/engine"
)

type InsightCmd struct {
	Show    InsightShowCmd    `cmd:"" help:"Show the weekly debrief." default:"1"`
	Enable  InsightEnableCmd  `cmd:"" help:"Enable weekly insights."`
	Disable InsightDisableCmd `cmd:"" help:"Disable weekly insights."`
}

type InsightShowCmd struct{}

func (c *InsightShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if !settings.InsightsEnabled {
		return fmt.Errorf("insights are disabled, run 'tend insight enable' first")
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

	fmt.Println(engine.WeeklyInsight(habits, logs, entries, time.Now()))
	return nil
}

type InsightEnableCmd struct{}

func (c *InsightEnableCmd) Run(ctx *Context) error {
	return setInsightsEnabled(ctx, true)
}

type InsightDisableCmd struct{}

func (c *InsightDisableCmd) Run(ctx *Context) error {
	return setInsightsEnabled(ctx, false)
}

func setInsightsEnabled(ctx *Context, enabled bool) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	settings.InsightsEnabled = enabled
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	if enabled {
		fmt.Println("Weekly insights enabled.")
	} else {
		fmt.Println("Weekly insights disabled.")
	}
	return nil
}
