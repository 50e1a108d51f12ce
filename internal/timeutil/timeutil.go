// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"math"
	"time"
)

// DayLayout is the calendar-day key used to bucket sessions.
const DayLayout = "2006-01-02"

// Clock supplies the current time. Date-sensitive calculations take a Clock
// so that tests can pin "today".
type Clock func() time.Time

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period180Days   Period = "180days"
	Period365Days   Period = "365days"
)

var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: 1,
	Period7Days:     7,
	Period14Days:    14,
	Period30Days:    30,
	Period90Days:    90,
	Period180Days:   180,
	Period365Days:   365,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs splits a seconds value into whole minutes and seconds.
func SecsToMinsAndSecs(secs float64) (mins, seconds int) {
	total := Round(secs)
	mins = total / 60
	seconds = total % 60

	return
}

// DayKey returns the bucketing key (YYYY-MM-DD) for the given time.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}
