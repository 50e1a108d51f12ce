package timer

import (
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
)

const envDebug = "ODAK_DEBUG"

func (t *Timer) Init() tea.Cmd {
	t.StartTime = time.Now()

	return t.clock.Init()
}

// handleTimerStartStop manages timer start/stop events. A transition to the
// stopped state is a pause, which counts as a distraction.
func (t *Timer) handleTimerStartStop(
	msg btimer.StartStopMsg,
) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	t.clock, cmd = t.clock.Update(msg)

	if !t.clock.Running() && !t.clock.Timedout() {
		t.Distractions++
	}

	return t, cmd
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if _, found := os.LookupEnv(envDebug); found {
		slog.Debug(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case btimer.TickMsg:
		t.clock, cmd = t.clock.Update(msg)

		return t, cmd

	case btimer.StartStopMsg:
		return t.handleTimerStartStop(msg)

	case btimer.TimeoutMsg:
		t.Completed = true

		t.record()

		return t, tea.Batch(tea.ClearScreen, tea.Quit)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeymap.togglePlay):
			cmd = t.clock.Toggle()

			return t, cmd

		case key.Matches(msg, defaultKeymap.quit):
			t.record()

			return t, tea.Batch(tea.ClearScreen, tea.Quit)
		}

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd = t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}
