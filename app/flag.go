package app

import (
	"time"

	"github.com/urfave/cli/v2"
)

var (
	durationFlag = &cli.DurationFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Focus session `DURATION` (e.g. 25m, 1h)",
	}

	categoryFlag = &cli.StringFlag{
		Name:    "category",
		Aliases: []string{"c"},
		Usage:   "Session `CATEGORY`",
	}

	goalFlag = &cli.DurationFlag{
		Name:  "goal",
		Usage: "Daily focus `GOAL` used for streaks (e.g. 2h)",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	addDurationFlag = &cli.DurationFlag{
		Name:     "duration",
		Aliases:  []string{"d"},
		Usage:    "Focused `DURATION` of the session being recorded",
		Required: true,
	}

	distractionsFlag = &cli.IntFlag{
		Name:  "distractions",
		Usage: "Number of `TIMES` you got distracted during the session",
	}

	abandonedFlag = &cli.BoolFlag{
		Name:  "abandoned",
		Usage: "Record the session as stopped early instead of completed",
	}

	dateFlag = &cli.StringFlag{
		Name:        "date",
		Usage:       "Stop `DATE` of the session (defaults to now)",
		DefaultText: time.Now().Format("2006-01-02"),
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Time `PERIOD`: today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days, all-time",
	}

	startFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "Report start `DATE`",
	}

	endFlag = &cli.StringFlag{
		Name:  "end",
		Usage: "Report end `DATE`",
	}

	filterCategoryFlag = &cli.StringFlag{
		Name:    "category",
		Aliases: []string{"c"},
		Usage:   "Filter by comma-separated `CATEGORIES`",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Output as JSON",
	}

	daysFlag = &cli.IntFlag{
		Name:  "days",
		Usage: "Number of past `DAYS` to generate sessions for",
		Value: 30,
	}
)
