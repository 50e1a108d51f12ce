package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyDailyGoal       = "goal.daily"
	keySessionDuration = "session.duration"
	keyCategories      = "session.categories"
	keyDefaultCategory = "session.default_category"
	keySessionCmd      = "settings.cmd"
	keyTwentyFourHour  = "settings.24hr_clock"
	keyNotifications   = "notifications.enabled"
	keyDarkTheme       = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from Viper.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading config file failed: %w", err)
		}

		if err := v.WriteConfig(); err != nil {
			return fmt.Errorf("writing default config failed: %w", err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyDailyGoal, "2h")
	v.SetDefault(keySessionDuration, "25m")
	v.SetDefault(keyCategories, []string{
		"Study",
		"Coding",
		"Project",
		"Reading",
		"Other",
	})
	v.SetDefault(keyDefaultCategory, "Other")
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyNotifications, true)
	v.SetDefault(keyDarkTheme, true)
}

// loadViperConfig copies Viper values into the Config.
func loadViperConfig(v *viper.Viper, c *Config) error {
	c.Goal.Daily = v.GetDuration(keyDailyGoal)
	if c.Goal.Daily <= 0 {
		return fmt.Errorf("%w: %s", errInvalidGoal, v.GetString(keyDailyGoal))
	}

	c.Session.Duration = v.GetDuration(keySessionDuration)
	if c.Session.Duration <= 0 {
		return fmt.Errorf(
			"%w: %s",
			errInvalidDuration,
			v.GetString(keySessionDuration),
		)
	}

	c.Session.Categories = v.GetStringSlice(keyCategories)
	c.Session.DefaultCategory = v.GetString(keyDefaultCategory)
	c.Session.Cmd = v.GetString(keySessionCmd)
	c.Display.TwentyFourHour = v.GetBool(keyTwentyFourHour)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Notification.Enabled = v.GetBool(keyNotifications)

	return nil
}
