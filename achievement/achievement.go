// Package achievement evaluates the fixed achievement catalog against the
// session history and records newly earned unlocks.
package achievement

import (
	"time"

	"github.com/odakapp/odak/internal/models"
	"github.com/odakapp/odak/internal/timeutil"
	"github.com/odakapp/odak/stats"
	"github.com/odakapp/odak/store"
	"github.com/odakapp/odak/streak"
)

const (
	earlyBirdHour = 7
	nightOwlHour  = 22
)

// Engine checks unlock conditions against the session history. It owns the
// unlock table and only reads sessions; it never mutates them.
type Engine struct {
	DB        store.DB
	DailyGoal time.Duration
	Clock     timeutil.Clock
}

// NewEngine returns a rule engine backed by the given store.
func NewEngine(db store.DB, dailyGoal time.Duration) *Engine {
	return &Engine{
		DB:        db,
		DailyGoal: dailyGoal,
		Clock:     time.Now,
	}
}

// snapshot is the aggregate state the threshold rules are evaluated against,
// computed fresh on every check.
type snapshot struct {
	totalSeconds  int
	completed     int
	currentStreak int
}

// CheckAndUnlock evaluates the full catalog and persists any newly satisfied
// achievement. It returns the ids unlocked by this invocation; entries that
// were already unlocked are skipped, so running the check twice in a row with
// unchanged data returns nothing the second time.
func (e *Engine) CheckAndUnlock() []string {
	now := e.Clock()

	sessions := e.DB.AllSessions()

	unlocked := make(map[string]bool)
	for _, u := range e.DB.UnlockedAchievements() {
		unlocked[u.AchievementID] = true
	}

	snap := snapshot{
		totalSeconds:  int(stats.TotalDuration(sessions) / time.Second),
		completed:     stats.CompletedCount(sessions),
		currentStreak: streak.Calculate(sessions, e.DailyGoal, now).Current,
	}

	var newly []string

	for _, a := range Catalog {
		if unlocked[a.ID] {
			continue
		}

		if !satisfied(a, snap, sessions) {
			continue
		}

		// SaveUnlock is a no-op for an id that is already present, so a
		// repeated attempt can never double-unlock.
		err := e.DB.SaveUnlock(&models.UnlockedAchievement{
			AchievementID: a.ID,
			UnlockedAt:    now.Format(time.RFC3339),
		})
		if err != nil {
			continue
		}

		newly = append(newly, a.ID)
	}

	return newly
}

func satisfied(
	a Achievement,
	snap snapshot,
	sessions []models.FocusSession,
) bool {
	switch a.Type {
	case TypeTime:
		return snap.totalSeconds >= a.Requirement
	case TypeSessions:
		return snap.completed >= a.Requirement
	case TypeStreak:
		return snap.currentStreak >= a.Requirement
	case TypeSpecial:
		return specialSatisfied(a.ID, sessions)
	}

	return false
}

// specialSatisfied evaluates the condition-based achievements over the full
// session history. Each condition stands on its own.
func specialSatisfied(id string, sessions []models.FocusSession) bool {
	for i := range sessions {
		sess := sessions[i]

		switch id {
		case NoDistraction:
			if sess.Completed && sess.Distractions == 0 {
				return true
			}
		case EarlyBird:
			if t := sess.Time(); !t.IsZero() && t.Hour() < earlyBirdHour {
				return true
			}
		case NightOwl:
			if t := sess.Time(); !t.IsZero() && t.Hour() >= nightOwlHour {
				return true
			}
		}
	}

	return false
}
