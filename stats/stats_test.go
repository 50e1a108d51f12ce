package stats_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/odakapp/odak/internal/models"
	"github.com/odakapp/odak/stats"
)

var now = time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

func sess(daysAgo int, category string, durationSecs, distractions int) models.FocusSession {
	day := now.AddDate(0, 0, -daysAgo)

	return models.FocusSession{
		Category:     category,
		Duration:     durationSecs,
		Distractions: distractions,
		Date: time.Date(
			day.Year(), day.Month(), day.Day(), 10, 0, 0, 0, time.UTC,
		).Format(time.RFC3339),
		Completed: true,
	}
}

// TestDailyTotalsRoundTrip verifies that the per-day buckets always sum back
// to the grand total of the session set.
func TestDailyTotalsRoundTrip(t *testing.T) {
	sessions := []models.FocusSession{
		sess(0, "Coding", 1500, 0),
		sess(0, "Study", 900, 2),
		sess(1, "Coding", 3600, 1),
		sess(5, "Reading", 420, 0),
		sess(12, "Other", 60, 3),
	}

	var bucketSum time.Duration
	for _, total := range stats.DailyTotals(sessions) {
		bucketSum += total
	}

	if grand := stats.TotalDuration(sessions); bucketSum != grand {
		t.Errorf(
			"expected bucket sum %s to equal grand total %s",
			bucketSum,
			grand,
		)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	sessions := []models.FocusSession{
		sess(0, "Coding", 6000, 0),
		sess(1, "Study", 3000, 0),
		sess(2, "Reading", 1000, 0),
		sess(3, "Idle", 0, 0),
	}

	breakdown := stats.CategoryBreakdown(sessions)

	want := []stats.CategorySummary{
		{Name: "Coding", Total: 6000 * time.Second, Percent: 60},
		{Name: "Study", Total: 3000 * time.Second, Percent: 30},
		{Name: "Reading", Total: 1000 * time.Second, Percent: 10},
	}

	if diff := cmp.Diff(want, breakdown); diff != "" {
		t.Errorf("category breakdown mismatch (-want +got):\n%s", diff)
	}
}

// TestCategoryPercentagesSumTo100 checks the rounding property over an
// awkward three-way split.
func TestCategoryPercentagesSumTo100(t *testing.T) {
	sessions := []models.FocusSession{
		sess(0, "Coding", 1000, 0),
		sess(0, "Study", 1000, 0),
		sess(0, "Reading", 1000, 0),
	}

	var sum float64
	for _, c := range stats.CategoryBreakdown(sessions) {
		sum += c.Percent
	}

	if math.Abs(sum-100) > 0.2 {
		t.Errorf("expected percentages to sum to ~100, but got: %.1f", sum)
	}
}

func TestCategoryBreakdownEmpty(t *testing.T) {
	if got := stats.CategoryBreakdown(nil); len(got) != 0 {
		t.Errorf("expected empty breakdown, but got: %v", got)
	}
}

func TestComputeRecords(t *testing.T) {
	sessions := []models.FocusSession{
		// today: 40 minutes
		sess(0, "Coding", 1500, 0),
		sess(0, "Study", 900, 2),
		// 2 hours, 10 days ago
		sess(10, "Coding", 7200, 1),
		// a session outside the 30-day best-week window; best day is not
		// windowed, so it still sets that record
		sess(40, "Reading", 10800, 0),
	}

	rec := stats.ComputeRecords(sessions, now)

	if want := "2025-05-06"; rec.BestDay.Day != want {
		t.Errorf("expected best day %s, but got: %s", want, rec.BestDay.Day)
	}

	if want := 3 * time.Hour; rec.BestDay.Total != want {
		t.Errorf(
			"expected best day total %s, but got: %s",
			want,
			rec.BestDay.Total,
		)
	}

	// The 3-hour session is 40 days old: it sets the longest-session record
	// but cannot contribute to the best week.
	if want := 3 * time.Hour; rec.LongestSession != want {
		t.Errorf(
			"expected longest session %s, but got: %s",
			want,
			rec.LongestSession,
		)
	}

	if want := 2 * time.Hour; rec.BestWeek != want {
		t.Errorf("expected best week %s, but got: %s", want, rec.BestWeek)
	}

	if want := 2; rec.PerfectCount != want {
		t.Errorf(
			"expected %d perfect sessions, but got: %d",
			want,
			rec.PerfectCount,
		)
	}
}

// TestComputeRecordsBestWeekWindow verifies the sliding 7-day window: two
// clusters of days inside the trailing 30 days, where the denser cluster
// wins even though it is older.
func TestComputeRecordsBestWeekWindow(t *testing.T) {
	sessions := []models.FocusSession{
		sess(0, "Coding", 3600, 0),
		sess(1, "Coding", 3600, 0),
		// cluster of three consecutive days, two weeks back
		sess(14, "Study", 5400, 0),
		sess(15, "Study", 5400, 0),
		sess(16, "Study", 5400, 0),
	}

	rec := stats.ComputeRecords(sessions, now)

	if want := 16200 * time.Second; rec.BestWeek != want {
		t.Errorf("expected best week %s, but got: %s", want, rec.BestWeek)
	}
}

func TestComputeRecordsEmpty(t *testing.T) {
	rec := stats.ComputeRecords(nil, now)

	if diff := cmp.Diff(stats.Records{}, rec); diff != "" {
		t.Errorf("expected zero records (-want +got):\n%s", diff)
	}
}

func TestWeeklyBuckets(t *testing.T) {
	sessions := []models.FocusSession{
		sess(0, "Coding", 1800, 0),
		sess(3, "Study", 3600, 0),
	}

	buckets := stats.WeeklyBuckets(sessions, now)

	if len(buckets) != 7 {
		t.Fatalf("expected 7 buckets, but got: %d", len(buckets))
	}

	// Buckets run oldest to newest and include empty days.
	if want := "2025-06-09"; buckets[0].Day != want {
		t.Errorf("expected first bucket %s, but got: %s", want, buckets[0].Day)
	}

	if want := "2025-06-15"; buckets[6].Day != want {
		t.Errorf("expected last bucket %s, but got: %s", want, buckets[6].Day)
	}

	if want := 30 * time.Minute; buckets[6].Total != want {
		t.Errorf("expected today's bucket %s, but got: %s", want, buckets[6].Total)
	}

	if want := time.Hour; buckets[3].Total != want {
		t.Errorf("expected bucket total %s, but got: %s", want, buckets[3].Total)
	}
}

func TestMonthlyCalendar(t *testing.T) {
	sessions := []models.FocusSession{
		sess(0, "Coding", 1800, 0),
		sess(0, "Study", 900, 0),
		sess(5, "Reading", 3600, 0),
		// previous month, must not appear
		sess(20, "Other", 600, 0),
	}

	calendar := stats.MonthlyCalendar(sessions, now)

	// June has 30 days; every day appears even without sessions.
	if len(calendar) != 30 {
		t.Fatalf("expected 30 calendar days, but got: %d", len(calendar))
	}

	if want := "2025-06-01"; calendar[0].Day != want {
		t.Errorf("expected first day %s, but got: %s", want, calendar[0].Day)
	}

	if want := "2025-06-30"; calendar[29].Day != want {
		t.Errorf("expected last day %s, but got: %s", want, calendar[29].Day)
	}

	if want := 45 * time.Minute; calendar[14].Total != want {
		t.Errorf(
			"expected %s on June 15, but got: %s",
			want,
			calendar[14].Total,
		)
	}

	if want := time.Hour; calendar[9].Total != want {
		t.Errorf("expected %s on June 10, but got: %s", want, calendar[9].Total)
	}

	if calendar[19].Total != 0 {
		t.Errorf(
			"expected an empty day on June 20, but got: %s",
			calendar[19].Total,
		)
	}
}

func TestTotals(t *testing.T) {
	sessions := []models.FocusSession{
		{Category: "Coding", Duration: 1500, Distractions: 2, Completed: true},
		{Category: "Study", Duration: 900, Distractions: 1, Completed: false},
		{Category: "Other", Duration: 0, Distractions: 0, Completed: true},
	}

	if want, got := 2400*time.Second, stats.TotalDuration(sessions); got != want {
		t.Errorf("expected total duration %s, but got: %s", want, got)
	}

	if want, got := 3, stats.TotalDistractions(sessions); got != want {
		t.Errorf("expected %d distractions, but got: %d", want, got)
	}

	if want, got := 2, stats.CompletedCount(sessions); got != want {
		t.Errorf("expected %d completed sessions, but got: %d", want, got)
	}

	if want, got := 1, stats.PerfectCount(sessions); got != want {
		t.Errorf("expected %d perfect sessions, but got: %d", want, got)
	}
}
