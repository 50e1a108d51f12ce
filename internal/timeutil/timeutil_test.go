package timeutil_test

import (
	"testing"
	"time"

	"github.com/odakapp/odak/internal/timeutil"
)

func TestSecsToMinsAndSecs(t *testing.T) {
	testCases := []struct {
		Secs float64
		Mins int
		Rem  int
	}{
		{0, 0, 0},
		{59, 0, 59},
		{60, 1, 0},
		{61, 1, 1},
		{125.4, 2, 5},
		{125.6, 2, 6},
		{1500, 25, 0},
	}

	for _, tc := range testCases {
		mins, secs := timeutil.SecsToMinsAndSecs(tc.Secs)

		if mins != tc.Mins || secs != tc.Rem {
			t.Errorf(
				"expected %.1f seconds to split into %d:%02d, but got: %d:%02d",
				tc.Secs,
				tc.Mins,
				tc.Rem,
				mins,
				secs,
			)
		}
	}
}

func TestDayBounds(t *testing.T) {
	ts := time.Date(2025, 6, 15, 14, 30, 45, 123, time.UTC)

	if got := timeutil.DayKey(ts); got != "2025-06-15" {
		t.Errorf("expected day key 2025-06-15, but got: %s", got)
	}

	start := timeutil.RoundToStart(ts)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Errorf("expected the start of the day, but got: %s", start)
	}

	end := timeutil.RoundToEnd(ts)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("expected the end of the day, but got: %s", end)
	}

	if !start.Before(ts) || !end.After(ts) {
		t.Error("expected the original time to fall inside its day bounds")
	}
}

func TestRangeCoversEveryPeriod(t *testing.T) {
	for _, period := range timeutil.PeriodCollection {
		if _, ok := timeutil.Range[period]; !ok {
			t.Errorf("period %s has no range entry", period)
		}
	}

	if len(timeutil.Range) != len(timeutil.PeriodCollection) {
		t.Errorf(
			"expected %d range entries, but got: %d",
			len(timeutil.PeriodCollection),
			len(timeutil.Range),
		)
	}
}
