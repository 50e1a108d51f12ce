// Package timer operates the odak countdown timer and records the finished
// session when it stops.
package timer

import (
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	btimer "github.com/charmbracelet/bubbles/timer"
	"github.com/charmbracelet/lipgloss"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/odakapp/odak/internal/config"
	"github.com/odakapp/odak/internal/models"
	"github.com/odakapp/odak/store"
)

const (
	padding  = 2
	maxWidth = 80
)

type keymap struct {
	togglePlay key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys("p", " "),
		key.WithHelp("p", "pause/resume"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "stop session"),
	),
}

type styles struct {
	base      lipgloss.Style
	category  lipgloss.Style
	main      lipgloss.Style
	hint      lipgloss.Style
	secondary lipgloss.Style
}

// Timer is the countdown model for a single focus session. Pausing the
// countdown counts as a distraction, the terminal analogue of switching away
// from the app mid-session.
type Timer struct {
	db   store.DB
	Opts *config.Config

	clock    btimer.Model
	progress progress.Model
	help     help.Model
	style    styles

	Category     string
	StartTime    time.Time
	Duration     time.Duration
	Distractions int
	Completed    bool

	// Recorded is the session written to the store when the timer stopped,
	// or nil if nothing was recorded.
	Recorded *models.FocusSession
}

// New returns a timer for a single session of the configured duration.
func New(db store.DB, cfg *config.Config) *Timer {
	t := &Timer{
		db:       db,
		Opts:     cfg,
		Category: cfg.Session.DefaultCategory,
		Duration: cfg.Session.Duration,
		clock:    btimer.New(cfg.Session.Duration),
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
	}

	t.style = styles{
		base:      lipgloss.NewStyle().Padding(1, padding),
		category:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		main:      lipgloss.NewStyle().Bold(true),
		hint:      lipgloss.NewStyle().Faint(true),
		secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
	}

	return t
}

// elapsed reports how much focused time has accumulated so far.
func (t *Timer) elapsed() time.Duration {
	return t.Duration - t.clock.Timeout
}

// record writes the finished session to the store and fires the
// post-session hooks. Aborted sessions keep their elapsed duration and are
// stored with Completed=false.
func (t *Timer) record() {
	duration := t.elapsed()
	if t.Completed {
		duration = t.Duration
	}

	if duration <= 0 && !t.Completed {
		return
	}

	sess := &models.FocusSession{
		Category:     t.Category,
		Duration:     int(duration / time.Second),
		Distractions: t.Distractions,
		Date:         time.Now().Format(time.RFC3339),
		Completed:    t.Completed,
	}

	if err := t.db.AddSession(sess); err != nil {
		slog.Error("recording session failed", slog.Any("error", err))
		return
	}

	t.Recorded = sess

	if t.Completed && t.Opts.Notification.Enabled {
		t.notify()
	}

	if t.Opts.Session.Cmd != "" {
		t.runSessionCmd(t.Opts.Session.Cmd)
	}
}

func (t *Timer) notify() {
	err := beeep.Notify(
		"Session complete",
		"Your focus session is complete. Time for a break!",
		"",
	)
	if err != nil {
		slog.Warn("notification failed", slog.Any("error", err))
	}
}

// runSessionCmd executes the configured command after a session is recorded.
func (t *Timer) runSessionCmd(sessionCmd string) {
	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		slog.Warn("invalid session command", slog.Any("error", err))
		return
	}

	if len(cmdSlice) == 0 {
		return
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		slog.Warn("session command failed", slog.Any("error", err))
	}
}
