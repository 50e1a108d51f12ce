package config

import (
	"os"
	"sync"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

var (
	once   sync.Once
	appCfg *Config
)

// withCmdLineOverrides returns an Option that applies command-line flag
// values on top of the file-based configuration.
func withCmdLineOverrides(ctx *cli.Context) Option {
	return func(c *Config) error {
		if ctx.Duration("duration") != 0 {
			c.Session.Duration = ctx.Duration("duration")
		}

		if ctx.String("category") != "" {
			c.Session.DefaultCategory = ctx.String("category")
		}

		if ctx.Duration("goal") != 0 {
			c.Goal.Daily = ctx.Duration("goal")
		}

		return nil
	}
}

// App initializes and returns the application configuration. The
// configuration file is created with defaults on first run.
func App(ctx *cli.Context) *Config {
	once.Do(func() {
		cfg, err := New(
			WithViperConfig(configFilePath),
			withCmdLineOverrides(ctx),
		)
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}

		appCfg = cfg
	})

	return appCfg
}

// DailyGoalSeconds reports the configured daily goal in whole seconds.
func (c *Config) DailyGoalSeconds() int {
	return int(c.Goal.Daily / time.Second)
}
