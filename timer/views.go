package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/odakapp/odak/internal/timeutil"
)

// formatTimeRemaining returns the remaining time formatted as "MM:SS".
func (t *Timer) formatTimeRemaining() string {
	m, s := timeutil.SecsToMinsAndSecs(t.clock.Timeout.Seconds())

	return fmt.Sprintf("%02d:%02d", m, s)
}

func (t *Timer) timerView() string {
	var s strings.Builder

	s.WriteString(t.style.category.SetString(t.Category + " ").String())

	var timeFormat string
	if t.Opts.Display.TwentyFourHour {
		timeFormat = "15:04:05"
	} else {
		timeFormat = "03:04:05 PM"
	}

	if !t.clock.Running() && !t.clock.Timedout() {
		s.WriteString(t.style.secondary.SetString("[paused]").String())
	} else {
		endTime := time.Now().Add(t.clock.Timeout)

		s.WriteString(
			strings.TrimSpace(
				t.style.hint.SetString("until " + endTime.Format(timeFormat)).String()),
		)
	}

	percent := float64(t.clock.Timeout.Seconds()) / t.Duration.Seconds()

	s.WriteString("\n\n")
	s.WriteString(t.style.main.SetString(t.formatTimeRemaining()).String())
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(1 - percent))

	if t.Distractions > 0 {
		s.WriteString("\n\n")
		s.WriteString(
			t.style.hint.SetString(
				fmt.Sprintf("distractions: %d", t.Distractions),
			).String(),
		)
	}

	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Timer) View() string {
	if t.clock.Timedout() || t.Completed {
		return ""
	}

	return t.style.base.Render(t.timerView())
}
