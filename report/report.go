// Package report prints user-facing status messages.
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/odakapp/odak/achievement"
)

func SessionRecorded() {
	pterm.Success.Println("session recorded")
}

// NewUnlocks announces achievements unlocked by the latest check.
func NewUnlocks(ids []string) {
	for _, id := range ids {
		a, ok := achievement.Lookup(id)
		if !ok {
			continue
		}

		pterm.Success.Printfln(
			"Achievement unlocked: %s (%s)",
			a.Title,
			a.Description,
		)
	}
}

func Error(err error) {
	pterm.Error.Println(err)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
