// Package stats computes and reports focus-session statistics. Every
// aggregate is a pure function of the session set and is recomputed from
// scratch on each load; there is no cached or incremental state.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/odakapp/odak/internal/models"
	"github.com/odakapp/odak/internal/timeutil"
)

// bestWeekWindow is the trailing window, in days, searched for the best
// 7-consecutive-day total.
const bestWeekWindow = 30

// CategorySummary is the share of total focused time spent on one category.
type CategorySummary struct {
	Name    string        `json:"name"`
	Total   time.Duration `json:"total"`
	Percent float64       `json:"percent"`
}

// DayTotal is the focused time accumulated on a single calendar day.
type DayTotal struct {
	Day   string        `json:"day"`
	Total time.Duration `json:"total"`
}

// Records holds the personal bests derived from the full session history.
type Records struct {
	BestDay        DayTotal      `json:"best_day"`
	BestWeek       time.Duration `json:"best_week"`
	LongestSession time.Duration `json:"longest_session"`
	PerfectCount   int           `json:"perfect_sessions"`
}

// DailyTotals buckets sessions by their calendar day and sums the focused
// duration per bucket.
func DailyTotals(sessions []models.FocusSession) map[string]time.Duration {
	days := make(map[string]time.Duration)

	for i := range sessions {
		sess := sessions[i]
		days[sess.Day()] += time.Duration(sess.Duration) * time.Second
	}

	return days
}

// TotalDuration sums the focused duration of every session, completed or
// not.
func TotalDuration(sessions []models.FocusSession) time.Duration {
	var total time.Duration

	for i := range sessions {
		total += time.Duration(sessions[i].Duration) * time.Second
	}

	return total
}

// TotalDistractions sums the distraction counts of every session.
func TotalDistractions(sessions []models.FocusSession) int {
	var total int

	for i := range sessions {
		total += sessions[i].Distractions
	}

	return total
}

// CompletedCount reports how many sessions ran to the end of their timer.
func CompletedCount(sessions []models.FocusSession) int {
	var count int

	for i := range sessions {
		if sessions[i].Completed {
			count++
		}
	}

	return count
}

// PerfectCount reports how many sessions finished without a single
// distraction.
func PerfectCount(sessions []models.FocusSession) int {
	var count int

	for i := range sessions {
		if sessions[i].Distractions == 0 {
			count++
		}
	}

	return count
}

// CategoryBreakdown sums focused time per category and derives each
// category's percentage share of the grand total, rounded to one decimal.
// Categories with no focused time are excluded, and the result is sorted by
// total descending.
func CategoryBreakdown(sessions []models.FocusSession) []CategorySummary {
	totals := make(map[string]time.Duration)

	for i := range sessions {
		sess := sessions[i]
		totals[sess.Category] += time.Duration(sess.Duration) * time.Second
	}

	var grand time.Duration
	for _, total := range totals {
		grand += total
	}

	if grand == 0 {
		return nil
	}

	breakdown := make([]CategorySummary, 0, len(totals))

	for name, total := range totals {
		if total == 0 {
			continue
		}

		percent := float64(total) / float64(grand) * 100

		breakdown = append(breakdown, CategorySummary{
			Name:    name,
			Total:   total,
			Percent: math.Round(percent*10) / 10,
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Total != breakdown[j].Total {
			return breakdown[i].Total > breakdown[j].Total
		}

		return breakdown[i].Name < breakdown[j].Name
	})

	return breakdown
}

// ComputeRecords derives the personal bests: the day with the highest total,
// the best 7-consecutive-day stretch within the trailing 30 days, the single
// longest session, and the perfect-session count.
func ComputeRecords(sessions []models.FocusSession, now time.Time) Records {
	var rec Records

	if len(sessions) == 0 {
		return rec
	}

	rec.PerfectCount = PerfectCount(sessions)

	for i := range sessions {
		d := time.Duration(sessions[i].Duration) * time.Second
		if d > rec.LongestSession {
			rec.LongestSession = d
		}
	}

	days := DailyTotals(sessions)

	for day, total := range days {
		if total > rec.BestDay.Total ||
			(total == rec.BestDay.Total && day < rec.BestDay.Day) {
			rec.BestDay = DayTotal{Day: day, Total: total}
		}
	}

	rec.BestWeek = bestWeek(days, now)

	return rec
}

// bestWeek finds the maximum sum over any 7 consecutive calendar days within
// the trailing 30-day window ending today.
func bestWeek(days map[string]time.Duration, now time.Time) time.Duration {
	keys := make([]string, bestWeekWindow)

	for i := 0; i < bestWeekWindow; i++ {
		keys[bestWeekWindow-1-i] = timeutil.DayKey(now.AddDate(0, 0, -i))
	}

	var best time.Duration

	for i := 0; i+7 <= bestWeekWindow; i++ {
		var sum time.Duration

		for _, day := range keys[i : i+7] {
			sum += days[day]
		}

		if sum > best {
			best = sum
		}
	}

	return best
}

// MonthlyCalendar returns a per-day total for every day of now's calendar
// month in ascending order, including days without sessions.
func MonthlyCalendar(
	sessions []models.FocusSession,
	now time.Time,
) []DayTotal {
	days := DailyTotals(sessions)

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	calendar := make([]DayTotal, 0, daysInMonth)

	for i := 0; i < daysInMonth; i++ {
		day := timeutil.DayKey(first.AddDate(0, 0, i))

		calendar = append(calendar, DayTotal{Day: day, Total: days[day]})
	}

	return calendar
}

// WeeklyBuckets returns the per-day totals for the last 7 calendar days in
// ascending order, including zero days, for charting.
func WeeklyBuckets(
	sessions []models.FocusSession,
	now time.Time,
) []DayTotal {
	days := DailyTotals(sessions)

	buckets := make([]DayTotal, 0, 7)

	for i := 6; i >= 0; i-- {
		day := timeutil.DayKey(now.AddDate(0, 0, -i))

		buckets = append(buckets, DayTotal{
			Day:   day,
			Total: days[day],
		})
	}

	return buckets
}
