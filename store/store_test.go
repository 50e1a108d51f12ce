package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/odakapp/odak/internal/models"
	"github.com/odakapp/odak/internal/timeutil"
	"github.com/odakapp/odak/store"
)

var now = time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *store.Client {
	t.Helper()

	db := store.NewClient(
		filepath.Join(t.TempDir(), "odak.db"),
		store.WithClock(func() time.Time { return now }),
	)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func addSession(t *testing.T, db *store.Client, daysAgo, durationSecs int) {
	t.Helper()

	err := db.AddSession(&models.FocusSession{
		Category:  "Coding",
		Duration:  durationSecs,
		Date:      now.AddDate(0, 0, -daysAgo).Format(time.RFC3339),
		Completed: true,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func ids(sessions []models.FocusSession) []uint64 {
	result := make([]uint64, len(sessions))
	for i, sess := range sessions {
		result[i] = sess.ID
	}

	return result
}

func TestAddSessionAssignsIncreasingIDs(t *testing.T) {
	db := newTestStore(t)

	addSession(t, db, 2, 1500)
	addSession(t, db, 1, 1500)
	addSession(t, db, 0, 1500)

	got := db.AllSessions()
	if len(got) != 3 {
		t.Fatalf("expected 3 sessions, but got: %d", len(got))
	}

	// Insertion order was oldest first, so descending date order puts the
	// highest id first.
	if diff := cmp.Diff([]uint64{3, 2, 1}, ids(got)); diff != "" {
		t.Errorf("unexpected session order (-want +got):\n%s", diff)
	}
}

func TestAddSessionDefaultsDate(t *testing.T) {
	db := newTestStore(t)

	sess := &models.FocusSession{Category: "Reading", Duration: 600}

	if err := db.AddSession(sess); err != nil {
		t.Fatal(err)
	}

	if sess.Date != now.Format(time.RFC3339) {
		t.Errorf(
			"expected date to default to the current time, but got: %s",
			sess.Date,
		)
	}
}

func TestAllSessionsSortedByDateDescending(t *testing.T) {
	db := newTestStore(t)

	// Inserted out of chronological order on purpose.
	addSession(t, db, 0, 1500)
	addSession(t, db, 5, 1500)
	addSession(t, db, 2, 1500)

	got := db.AllSessions()

	for i := 1; i < len(got); i++ {
		if got[i].Date > got[i-1].Date {
			t.Fatalf(
				"sessions out of order: %s before %s",
				got[i-1].Date,
				got[i].Date,
			)
		}
	}
}

func TestTodaySessions(t *testing.T) {
	db := newTestStore(t)

	addSession(t, db, 0, 1500)
	addSession(t, db, 0, 600)
	addSession(t, db, 1, 1500)

	got := db.TodaySessions()
	if len(got) != 2 {
		t.Fatalf("expected 2 sessions for today, but got: %d", len(got))
	}

	today := timeutil.DayKey(now)

	for _, sess := range got {
		if sess.Day() != today {
			t.Errorf("expected a session on %s, but got: %s", today, sess.Date)
		}
	}
}

func TestSessionsByDate(t *testing.T) {
	db := newTestStore(t)

	addSession(t, db, 0, 1500)
	addSession(t, db, 3, 900)
	addSession(t, db, 3, 1200)
	addSession(t, db, 5, 1500)

	day := timeutil.DayKey(now.AddDate(0, 0, -3))

	got := db.SessionsByDate(day)
	if len(got) != 2 {
		t.Fatalf("expected 2 sessions on %s, but got: %d", day, len(got))
	}
}

func TestSessionsByDateRange(t *testing.T) {
	db := newTestStore(t)

	// The sessions sit at 14:00 on their day, matching the pinned clock, so
	// the 6-day-old session falls inside a 7-day window and the 8-day-old
	// one outside it.
	addSession(t, db, 2, 1500)
	addSession(t, db, 6, 1500)
	addSession(t, db, 8, 1500)

	got := db.SessionsByDateRange(7)
	if len(got) != 2 {
		t.Fatalf("expected 2 sessions in the last 7 days, but got: %d", len(got))
	}
}

func TestSaveUnlockKeepsOriginalTime(t *testing.T) {
	db := newTestStore(t)

	first := &models.UnlockedAchievement{
		AchievementID: "first_hour",
		UnlockedAt:    "2025-06-10T09:00:00Z",
	}

	if err := db.SaveUnlock(first); err != nil {
		t.Fatal(err)
	}

	// A second unlock for the same id must leave the original untouched.
	err := db.SaveUnlock(&models.UnlockedAchievement{
		AchievementID: "first_hour",
		UnlockedAt:    "2025-06-15T14:00:00Z",
	})
	if err != nil {
		t.Fatal(err)
	}

	got := db.UnlockedAchievements()

	if diff := cmp.Diff([]models.UnlockedAchievement{*first}, got); diff != "" {
		t.Errorf("unexpected unlocks (-want +got):\n%s", diff)
	}
}

func TestClearAllDataKeepsUnlocks(t *testing.T) {
	db := newTestStore(t)

	addSession(t, db, 0, 1500)
	addSession(t, db, 1, 1500)

	err := db.SaveUnlock(&models.UnlockedAchievement{
		AchievementID: "first_session",
		UnlockedAt:    now.Format(time.RFC3339),
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := db.ClearAllData(); err != nil {
		t.Fatal(err)
	}

	if got := db.AllSessions(); len(got) != 0 {
		t.Errorf("expected no sessions after a reset, but got: %d", len(got))
	}

	if got := db.UnlockedAchievements(); len(got) != 1 {
		t.Errorf("expected unlocks to survive a reset, but got: %d", len(got))
	}

	// The store stays writable after a reset.
	addSession(t, db, 0, 600)

	if got := db.AllSessions(); len(got) != 1 {
		t.Errorf("expected 1 session after the reset, but got: %d", len(got))
	}
}

// TestUnavailableStoreDegrades covers the failure mode where the database
// cannot be opened at all. Reads come back empty and writes are swallowed;
// nothing panics and no error reaches the caller.
func TestUnavailableStoreDegrades(t *testing.T) {
	db := store.NewClient(
		filepath.Join(t.TempDir(), "missing", "odak.db"),
		store.WithClock(func() time.Time { return now }),
	)

	t.Cleanup(func() {
		_ = db.Close()
	})

	err := db.AddSession(&models.FocusSession{Category: "Coding", Duration: 60})
	if err != nil {
		t.Errorf("expected AddSession to swallow the failure, but got: %v", err)
	}

	if got := db.AllSessions(); got != nil {
		t.Errorf("expected no sessions from an unavailable store, but got: %v", got)
	}

	if got := db.TodaySessions(); got != nil {
		t.Errorf("expected no sessions from an unavailable store, but got: %v", got)
	}

	if got := db.UnlockedAchievements(); got != nil {
		t.Errorf("expected no unlocks from an unavailable store, but got: %v", got)
	}

	err = db.SaveUnlock(&models.UnlockedAchievement{AchievementID: "first_hour"})
	if err != nil {
		t.Errorf("expected SaveUnlock to swallow the failure, but got: %v", err)
	}

	if err := db.ClearAllData(); err != nil {
		t.Errorf("expected ClearAllData to swallow the failure, but got: %v", err)
	}
}

// TestSecondClientDegrades covers the locked-file failure mode: while one
// client holds the database, a second client's open times out and degrades
// the same way an unopenable path does.
func TestSecondClientDegrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odak.db")

	first := store.NewClient(path, store.WithClock(func() time.Time { return now }))

	t.Cleanup(func() {
		_ = first.Close()
	})

	// Force initialization so the file lock is held.
	addSession(t, first, 0, 1500)

	second := store.NewClient(path, store.WithClock(func() time.Time { return now }))

	t.Cleanup(func() {
		_ = second.Close()
	})

	if got := second.AllSessions(); got != nil {
		t.Errorf("expected no sessions from the locked store, but got: %v", got)
	}

	err := second.AddSession(&models.FocusSession{Category: "Coding", Duration: 60})
	if err != nil {
		t.Errorf("expected AddSession to swallow the failure, but got: %v", err)
	}

	// The first client is unaffected.
	if got := first.AllSessions(); len(got) != 1 {
		t.Errorf("expected 1 session from the original client, but got: %d", len(got))
	}
}

func TestSeedDemoData(t *testing.T) {
	db := newTestStore(t)

	if err := db.SeedDemoData(14); err != nil {
		t.Fatal(err)
	}

	got := db.AllSessions()
	if len(got) == 0 {
		t.Fatal("expected the seeded store to contain sessions")
	}

	cutoff := timeutil.DayKey(now.AddDate(0, 0, -14))

	for _, sess := range got {
		if sess.Day() < cutoff {
			t.Errorf("seeded session before the window: %s", sess.Date)
		}

		if sess.Day() > timeutil.DayKey(now) {
			t.Errorf("seeded session in the future: %s", sess.Date)
		}

		if sess.Duration <= 0 {
			t.Errorf("seeded session without a duration: %+v", sess)
		}
	}
}
