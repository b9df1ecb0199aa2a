package cli

import (
	"time"

	"github.com/julianstephens/tend/internal/engine"
)

type SummaryCmd struct {
	Period string `arg:"" enum:"week,month,year" help:"Period to summarize (week|month|year)." default:"week"`
}

func (c *SummaryCmd) Run(ctx *Context) error {
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

	now := time.Now()
	var label string
	var start, end time.Time

	switch c.Period {
	case "week":
		label = "This Week"
		start, end = engine.WeekWindow(now)
	case "month":
		label = "This Month"
		start, end = engine.MonthToDate(now)
	case "year":
		label = "This Year"
		start, end = engine.YearToDate(now)
	}

	printSummary(engine.Summarize(habits, logs, label, start, end))
	return nil
}
