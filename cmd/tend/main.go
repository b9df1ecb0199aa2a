package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/tend/internal/cli"
	"github.com/julianstephens/tend/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path." type:"path" default:"~/.config/tend/tend.db"`

	Init    cli.InitCmd    `cmd:"" help:"Initialize tend storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Log     cli.LogCmd     `cmd:"" help:"Log minutes for a habit."`
	Summary cli.SummaryCmd `cmd:"" help:"Show a period summary."`
	History cli.HistoryCmd `cmd:"" help:"Show the day-by-day timeline."`
	Insight cli.InsightCmd `cmd:"" help:"Weekly debrief."`
	Habit   struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		Edit   cli.HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List all habits."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	} `cmd:"" help:"Manage habits."`
	Gratitude struct {
		Show  cli.GratitudeShowCmd  `cmd:"" help:"Show today's prompt and reflection." default:"1"`
		Write cli.GratitudeWriteCmd `cmd:"" help:"Write a gratitude reflection."`
		Clear cli.GratitudeClearCmd `cmd:"" help:"Remove a reflection."`
	} `cmd:"" help:"Daily gratitude prompts."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the store."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("tend"),
		kong.Description("Personal habit-minutes and gratitude tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{Store: store}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
