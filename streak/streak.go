// Package streak derives consecutive-day streaks from the session history.
// A day counts toward a streak when its total focused time reaches the daily
// goal.
package streak

import (
	"sort"
	"time"

	"github.com/odakapp/odak/internal/models"
	"github.com/odakapp/odak/internal/timeutil"
)

// maxWalk bounds the backward walk for the current streak to one year.
const maxWalk = 365

// Result holds the streak ending today and the longest streak on record.
type Result struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// Calculate computes the current and longest streaks for the given sessions
// against the daily goal. The current streak walks backward from `now`; a
// shortfall on the current day does not break the streak since the day is
// still in progress, but a shortfall on any earlier day ends the walk.
func Calculate(
	sessions []models.FocusSession,
	dailyGoal time.Duration,
	now time.Time,
) Result {
	days := dailyTotals(sessions)
	goalSecs := int(dailyGoal / time.Second)

	var current int

	for i := 0; i < maxWalk; i++ {
		day := timeutil.DayKey(now.AddDate(0, 0, -i))

		if days[day] >= goalSecs {
			current++
			continue
		}

		if i == 0 {
			continue
		}

		break
	}

	return Result{
		Current: current,
		Longest: longestRun(days, goalSecs),
	}
}

// dailyTotals buckets sessions by calendar day, summing duration per day.
func dailyTotals(sessions []models.FocusSession) map[string]int {
	days := make(map[string]int)

	for i := range sessions {
		sess := sessions[i]
		days[sess.Day()] += sess.Duration
	}

	return days
}

// longestRun finds the longest run of qualifying days that are exactly one
// calendar day apart. A gap of two or more days resets the run.
func longestRun(days map[string]int, goalSecs int) int {
	qualifying := make([]string, 0, len(days))

	for day, total := range days {
		if total >= goalSecs {
			qualifying = append(qualifying, day)
		}
	}

	sort.Strings(qualifying)

	var longest, run int

	var prev time.Time

	for i, day := range qualifying {
		t, err := time.Parse(timeutil.DayLayout, day)
		if err != nil {
			continue
		}

		if i > 0 && t.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}

		prev = t

		if run > longest {
			longest = run
		}
	}

	return longest
}
