package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/araddon/dateparse"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/odakapp/odak/achievement"
	"github.com/odakapp/odak/internal/config"
	"github.com/odakapp/odak/internal/models"
	"github.com/odakapp/odak/internal/timeutil"
	"github.com/odakapp/odak/internal/ui"
	"github.com/odakapp/odak/report"
	"github.com/odakapp/odak/stats"
	"github.com/odakapp/odak/store"
	"github.com/odakapp/odak/streak"
	"github.com/odakapp/odak/timer"
)

const (
	envNoColor     = "NO_COLOR"
	envOdakNoColor = "ODAK_NO_COLOR"
)

// initLogger routes slog output to a rotated log file so that diagnostics
// never interleave with the TUI or the report output.
func initLogger() {
	logger := slog.New(slog.NewJSONHandler(
		&lumberjack.Logger{
			Filename:   config.LogFilePath(),
			MaxSize:    5,
			MaxBackups: 3,
			Compress:   true,
		},
		&slog.HandlerOptions{Level: slog.LevelInfo},
	))

	slog.SetDefault(logger)
}

// setup resolves the configuration and returns a lazily initialized store
// client for it.
func setup(ctx *cli.Context) (*config.Config, *store.Client) {
	cfg := config.App(ctx)

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, store.NewClient(cfg.System.DBPath)
}

// checkAchievements runs the rule engine and announces anything newly
// earned.
func checkAchievements(db store.DB, dailyGoal time.Duration) {
	engine := achievement.NewEngine(db, dailyGoal)

	report.NewUnlocks(engine.CheckAndUnlock())
}

// filterSessions applies the time and category constraints to a session
// slice.
func filterSessions(
	sessions []models.FocusSession,
	f *config.FilterConfig,
) []models.FocusSession {
	filtered := make([]models.FocusSession, 0, len(sessions))

	for i := range sessions {
		sess := sessions[i]

		t := sess.Time()

		if !f.StartTime.IsZero() && t.Before(f.StartTime) {
			continue
		}

		if !f.EndTime.IsZero() && t.After(f.EndTime) {
			continue
		}

		if len(f.Categories) != 0 &&
			!slices.Contains(f.Categories, sess.Category) {
			continue
		}

		filtered = append(filtered, sess)
	}

	return filtered
}

// defaultAction runs a countdown focus session and records it when the timer
// stops.
func defaultAction(ctx *cli.Context) error {
	cfg, db := setup(ctx)
	defer db.Close()

	t := timer.New(db, cfg)

	p := tea.NewProgram(t)
	if _, err := p.Run(); err != nil {
		return err
	}

	if t.Recorded == nil {
		return nil
	}

	report.SessionRecorded()

	checkAchievements(db, cfg.Goal.Daily)

	return nil
}

// addAction records a session that already happened, e.g. focus time spent
// away from the terminal.
func addAction(ctx *cli.Context) error {
	cfg, db := setup(ctx)
	defer db.Close()

	date := time.Now()

	if ctx.String("date") != "" {
		parsed, err := dateparse.ParseAny(ctx.String("date"))
		if err != nil {
			return err
		}

		date = parsed
	}

	sess := &models.FocusSession{
		Category:     cfg.Session.DefaultCategory,
		Duration:     int(ctx.Duration("duration") / time.Second),
		Distractions: ctx.Int("distractions"),
		Date:         date.Format(time.RFC3339),
		Completed:    !ctx.Bool("abandoned"),
	}

	if err := db.AddSession(sess); err != nil {
		return err
	}

	report.SessionRecorded()

	checkAchievements(db, cfg.Goal.Daily)

	return nil
}

// listAction prints a table of the sessions recorded within a time period.
func listAction(ctx *cli.Context) error {
	_, db := setup(ctx)
	defer db.Close()

	filter, err := config.Filter(ctx)
	if err != nil {
		return err
	}

	sessions := filterSessions(db.AllSessions(), filter)

	if ctx.Bool("json") {
		b, err := json.Marshal(sessions)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	stats.PrintSessionsTable(os.Stdout, sessions)

	return nil
}

// statsAction computes and displays the statistics report.
func statsAction(ctx *cli.Context) error {
	_, db := setup(ctx)
	defer db.Close()

	s := &stats.Stats{
		DB:     db,
		Stdout: os.Stdout,
	}

	s.Compute()

	if ctx.Bool("json") {
		b, err := s.ToJSON()
		if err != nil {
			return err
		}

		fmt.Println(string(b))

		return nil
	}

	s.Show()

	return nil
}

// streakAction reports the current and longest streaks and today's progress
// toward the daily goal.
func streakAction(ctx *cli.Context) error {
	cfg, db := setup(ctx)
	defer db.Close()

	now := time.Now()

	result := streak.Calculate(db.AllSessions(), cfg.Goal.Daily, now)

	today := stats.TotalDuration(db.TodaySessions())

	percent := timeutil.Round(
		min(float64(today)/float64(cfg.Goal.Daily)*100, 100),
	)

	var goalDays int

	for _, b := range stats.WeeklyBuckets(db.SessionsByDateRange(7), now) {
		if b.Total >= cfg.Goal.Daily {
			goalDays++
		}
	}

	pterm.Printfln("Current streak: %s", ui.Green(result.Current))
	pterm.Printfln("Longest streak: %s", ui.Green(result.Longest))
	pterm.Printfln(
		"Today: %s of %s (%d%%)",
		ui.Green(stats.FormatDuration(today)),
		stats.FormatDuration(cfg.Goal.Daily),
		percent,
	)
	pterm.Printfln("Goal days this week: %s", ui.Green(fmt.Sprintf("%d/7", goalDays)))

	return nil
}

// achievementsAction runs the unlock check, then prints the catalog with
// each achievement's state.
func achievementsAction(ctx *cli.Context) error {
	cfg, db := setup(ctx)
	defer db.Close()

	checkAchievements(db, cfg.Goal.Daily)

	unlockedAt := make(map[string]string)
	for _, u := range db.UnlockedAchievements() {
		unlockedAt[u.AchievementID] = u.UnlockedAt
	}

	rows := [][]string{
		{"STATUS", "TITLE", "DESCRIPTION", "UNLOCKED"},
	}

	for _, a := range achievement.Catalog {
		status := ui.Red("locked")
		when := ""

		if at, ok := unlockedAt[a.ID]; ok {
			status = ui.Green("unlocked")

			if t, err := time.Parse(time.RFC3339, at); err == nil {
				when = t.Format("Jan 02, 2006")
			}
		}

		rows = append(rows, []string{status, a.Title, a.Description, when})
	}

	ui.PrintTable(rows, os.Stdout)

	pterm.Info.Printfln(
		"%d/%d achievements unlocked",
		len(unlockedAt),
		len(achievement.Catalog),
	)

	return nil
}

// seedAction fills the store with demo data.
func seedAction(ctx *cli.Context) error {
	_, db := setup(ctx)
	defer db.Close()

	days := ctx.Int("days")

	if err := db.SeedDemoData(days); err != nil {
		return err
	}

	pterm.Success.Printfln("generated demo sessions for the last %d days", days)

	return nil
}

// resetAction deletes every session after an explicit confirmation.
func resetAction(ctx *cli.Context) error {
	_, db := setup(ctx)
	defer db.Close()

	var confirmed bool

	err := huh.NewConfirm().
		Title("Delete every recorded session?").
		Description("This cannot be undone.").
		Affirmative("Delete").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	if err != nil {
		return err
	}

	if !confirmed {
		pterm.Info.Println("reset cancelled")
		return nil
	}

	if err := db.ClearAllData(); err != nil {
		return err
	}

	pterm.Success.Println("all session data cleared")

	return nil
}

func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()

	initLogger()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	if _, exists := os.LookupEnv(envOdakNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting odak")

	return nil
}
