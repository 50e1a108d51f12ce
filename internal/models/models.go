package models

import "time"

// FocusSession is a single focus-timer run. Sessions are append-only: once
// written to the store they are never updated or re-ordered, and every derived
// statistic is recomputed from the full session set at query time.
type FocusSession struct {
	ID           uint64 `json:"id"`
	Category     string `json:"category"`
	Duration     int    `json:"duration"` // seconds of actual focused time
	Distractions int    `json:"distractions"`
	Date         string `json:"date"` // ISO-8601, session stop time
	Completed    bool   `json:"completed"`
}

// Day returns the calendar-day portion (YYYY-MM-DD) of the session date.
func (s *FocusSession) Day() string {
	if len(s.Date) < 10 {
		return s.Date
	}

	return s.Date[:10]
}

// Time parses the session date. The zero time is returned for dates that
// do not parse as RFC 3339.
func (s *FocusSession) Time() time.Time {
	t, err := time.Parse(time.RFC3339, s.Date)
	if err != nil {
		return time.Time{}
	}

	return t
}

// UnlockedAchievement records that an achievement was earned. It is written
// once per achievement id and never removed.
type UnlockedAchievement struct {
	AchievementID string `json:"achievement_id"`
	UnlockedAt    string `json:"unlocked_at"` // ISO-8601
}
