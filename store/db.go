package store

import (
	"github.com/odakapp/odak/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// AddSession appends a session record and assigns its id. Sessions are
	// never updated after insertion.
	AddSession(sess *models.FocusSession) error
	// AllSessions returns every saved session sorted by date descending.
	AllSessions() []models.FocusSession
	// TodaySessions returns the sessions recorded on the current calendar day.
	TodaySessions() []models.FocusSession
	// SessionsByDate returns the sessions recorded on the given day
	// (YYYY-MM-DD).
	SessionsByDate(day string) []models.FocusSession
	// SessionsByDateRange returns the sessions recorded within the last
	// `days` days as a rolling window from now.
	SessionsByDateRange(days int) []models.FocusSession
	// UnlockedAchievements returns every recorded achievement unlock.
	UnlockedAchievements() []models.UnlockedAchievement
	// SaveUnlock records an achievement unlock. Saving an id that is already
	// present is a no-op.
	SaveUnlock(unlock *models.UnlockedAchievement) error
	// ClearAllData deletes every session row.
	ClearAllData() error
	// Close ends the database connection.
	Close() error
}
