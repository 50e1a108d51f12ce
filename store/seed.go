package store

import (
	"math/rand/v2"
	"time"

	"github.com/odakapp/odak/internal/models"
)

// demoCategories are only used for generated data and deliberately overlap
// with the default category list.
var demoCategories = []string{
	"Study",
	"Coding",
	"Project",
	"Reading",
	"Other",
}

// SeedDemoData populates the store with synthetic sessions for the last
// `days` days. It is a demo/testing utility, not part of the production
// write path, and goes through AddSession so ids stay monotonic.
func (c *Client) SeedDemoData(days int) error {
	if c.ensure() != nil {
		return nil
	}

	now := c.now()

	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)

		count := rand.IntN(3) + 1

		for j := 0; j < count; j++ {
			stop := time.Date(
				day.Year(),
				day.Month(),
				day.Day(),
				9+rand.IntN(13),
				rand.IntN(60),
				rand.IntN(60),
				0,
				day.Location(),
			)

			sess := &models.FocusSession{
				Category:     demoCategories[rand.IntN(len(demoCategories))],
				Duration:     (15 + rand.IntN(45)) * 60,
				Distractions: rand.IntN(4),
				Date:         stop.Format(time.RFC3339),
				Completed:    rand.IntN(5) != 0,
			}

			if err := c.AddSession(sess); err != nil {
				return err
			}
		}
	}

	return nil
}
