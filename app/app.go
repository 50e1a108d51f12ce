// Package app defines the odak command-line application.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/odakapp/odak/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the odak app instance.
func Get() *cli.App {
	odakApp := &cli.App{
		Name: "odak",
		Usage: `
		Odak is a personal focus timer for the command line. It records your
		focus sessions, tracks daily goals and streaks, and unlocks
		achievements as you go.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "add",
				Usage:  "Record an already finished focus session",
				Action: addAction,
				Flags: []cli.Flag{
					addDurationFlag,
					categoryFlag,
					distractionsFlag,
					abandonedFlag,
					dateFlag,
				},
			},
			{
				Name:   "list",
				Usage:  "List recorded sessions. Defaults to the last 7 days",
				Action: listAction,
				Flags: []cli.Flag{
					periodFlag,
					startFlag,
					endFlag,
					filterCategoryFlag,
					jsonFlag,
				},
			},
			{
				Name: "stats",
				Usage: `
				Track your progress with detailed statistics reporting: totals,
				personal records, category breakdown, and a weekly chart`,
				Action: statsAction,
				Flags: []cli.Flag{
					jsonFlag,
				},
			},
			{
				Name:   "streak",
				Usage:  "Show your current and longest daily-goal streaks",
				Action: streakAction,
				Flags: []cli.Flag{
					goalFlag,
				},
			},
			{
				Name:   "achievements",
				Usage:  "Check for new achievements and list the full catalog",
				Action: achievementsAction,
				Flags: []cli.Flag{
					goalFlag,
				},
			},
			{
				Name:   "seed",
				Usage:  "Populate the store with demo sessions (for trying odak out)",
				Action: seedAction,
				Flags: []cli.Flag{
					daysFlag,
				},
			},
			{
				Name:   "reset",
				Usage:  "Delete every recorded session",
				Action: resetAction,
			},
		},
		Flags: []cli.Flag{
			durationFlag,
			categoryFlag,
			goalFlag,
			noColorFlag,
		},
		Before: beforeAction,
		After:  afterAction,
		Action: defaultAction,
	}

	return odakApp
}
