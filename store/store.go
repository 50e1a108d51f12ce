// Package store connects to the data store and manages focus sessions and
// achievement unlocks.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/odakapp/odak/internal/models"
	"github.com/odakapp/odak/internal/timeutil"
)

const (
	sessionBucket     = "sessions"
	achievementBucket = "achievements"
)

var errOdakRunning = errors.New(
	"is odak already running? Only one instance can be active at a time",
)

// Client is a BoltDB database client. It initializes lazily on first use and
// never lets an expected storage failure escape: failed reads degrade to
// empty results and writes no-op once initialization has failed. The UI
// renders empty stats instead of an error in that case.
type Client struct {
	path    string
	now     timeutil.Clock
	db      *bolt.DB
	once    sync.Once
	initErr error
}

// Option configures a Client.
type Option func(*Client)

// WithClock overrides the clock used for day bucketing and range queries.
func WithClock(clock timeutil.Clock) Option {
	return func(c *Client) {
		c.now = clock
	}
}

// NewClient returns a client for the database at dbPath. The connection is
// not opened until the first read or write.
func NewClient(dbPath string, opts ...Option) *Client {
	c := &Client{
		path: dbPath,
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ensure opens the database and creates the buckets exactly once, regardless
// of how many operations race on first use.
func (c *Client) ensure() error {
	c.once.Do(func() {
		c.initErr = c.open()
		if c.initErr != nil {
			slog.Error(
				"session store unavailable",
				slog.String("path", c.path),
				slog.Any("error", c.initErr),
			)
		}
	})

	return c.initErr
}

func (c *Client) open() error {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		c.path,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		// Another process holds the file lock until the open times out.
		if errors.Is(err, bolt.ErrTimeout) {
			return errOdakRunning
		}

		return err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(sessionBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(achievementBucket))

		return err
	})
	if err != nil {
		_ = db.Close()
		return err
	}

	c.db = db

	return nil
}

// sessionKey builds the bucket key for a session. The date prefix keeps the
// bucket in chronological order; the fixed-width id makes keys unique when
// two sessions share a timestamp.
func sessionKey(date string, id uint64) []byte {
	return []byte(fmt.Sprintf("%s#%020d", date, id))
}

func (c *Client) AddSession(sess *models.FocusSession) error {
	if c.ensure() != nil {
		return nil
	}

	if sess.Date == "" {
		sess.Date = c.now().Format(time.RFC3339)
	}

	err := c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		id, err := b.NextSequence()
		if err != nil {
			return err
		}

		sess.ID = id

		value, err := json.Marshal(sess)
		if err != nil {
			return err
		}

		return b.Put(sessionKey(sess.Date, id), value)
	})
	if err != nil {
		slog.Error("adding session failed", slog.Any("error", err))
	}

	return nil
}

// AllSessions returns every session sorted by date descending (most recent
// first). The whole table is read back; the session history is bounded.
func (c *Client) AllSessions() []models.FocusSession {
	if c.ensure() != nil {
		return nil
	}

	var sessions []models.FocusSession

	err := c.db.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()

		for k, v := cur.Last(); k != nil; k, v = cur.Prev() {
			var sess models.FocusSession

			if err := json.Unmarshal(v, &sess); err != nil {
				return err
			}

			sessions = append(sessions, sess)
		}

		return nil
	})
	if err != nil {
		slog.Error("reading sessions failed", slog.Any("error", err))
		return nil
	}

	return sessions
}

func (c *Client) TodaySessions() []models.FocusSession {
	return c.SessionsByDate(timeutil.DayKey(c.now()))
}

// SessionsByDate returns the sessions whose date falls on the given day,
// matched by prefix against the stored ISO-8601 date.
func (c *Client) SessionsByDate(day string) []models.FocusSession {
	if c.ensure() != nil {
		return nil
	}

	var sessions []models.FocusSession

	prefix := []byte(day)

	err := c.db.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()

		for k, v := cur.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = cur.Next() {
			var sess models.FocusSession

			if err := json.Unmarshal(v, &sess); err != nil {
				return err
			}

			sessions = append(sessions, sess)
		}

		return nil
	})
	if err != nil {
		slog.Error("reading sessions failed", slog.Any("error", err))
		return nil
	}

	slices.Reverse(sessions)

	return sessions
}

// SessionsByDateRange returns the sessions recorded on or after now minus
// `days` days. The window rolls from the current instant rather than
// aligning to calendar days.
func (c *Client) SessionsByDateRange(days int) []models.FocusSession {
	if c.ensure() != nil {
		return nil
	}

	cutoff := c.now().AddDate(0, 0, -days).Format(time.RFC3339)

	var sessions []models.FocusSession

	err := c.db.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()

		for k, v := cur.Last(); k != nil && string(k) >= cutoff; k, v = cur.Prev() {
			var sess models.FocusSession

			if err := json.Unmarshal(v, &sess); err != nil {
				return err
			}

			sessions = append(sessions, sess)
		}

		return nil
	})
	if err != nil {
		slog.Error("reading sessions failed", slog.Any("error", err))
		return nil
	}

	return sessions
}

func (c *Client) UnlockedAchievements() []models.UnlockedAchievement {
	if c.ensure() != nil {
		return nil
	}

	var unlocks []models.UnlockedAchievement

	err := c.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(achievementBucket)).
			ForEach(func(_, v []byte) error {
				var u models.UnlockedAchievement

				if err := json.Unmarshal(v, &u); err != nil {
					return err
				}

				unlocks = append(unlocks, u)

				return nil
			})
	})
	if err != nil {
		slog.Error("reading achievements failed", slog.Any("error", err))
		return nil
	}

	return unlocks
}

// SaveUnlock records an achievement unlock. An id that is already present is
// left untouched so that re-running the rule engine can never double-unlock
// or overwrite the original unlock time.
func (c *Client) SaveUnlock(unlock *models.UnlockedAchievement) error {
	if c.ensure() != nil {
		return nil
	}

	err := c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(achievementBucket))

		key := []byte(unlock.AchievementID)

		if b.Get(key) != nil {
			return nil
		}

		value, err := json.Marshal(unlock)
		if err != nil {
			return err
		}

		return b.Put(key, value)
	})
	if err != nil {
		slog.Error("saving unlock failed", slog.Any("error", err))
	}

	return nil
}

// ClearAllData deletes every session row. It is irreversible and exists for
// resetting demo or test data.
func (c *Client) ClearAllData() error {
	if c.ensure() != nil {
		return nil
	}

	err := c.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(sessionBucket)); err != nil {
			return err
		}

		_, err := tx.CreateBucket([]byte(sessionBucket))

		return err
	})
	if err != nil {
		slog.Error("clearing sessions failed", slog.Any("error", err))
	}

	return nil
}

func (c *Client) Close() error {
	if c.db == nil {
		return nil
	}

	return c.db.Close()
}
