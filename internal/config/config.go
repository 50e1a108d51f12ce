// Package config is responsible for odak's configuration: file paths,
// defaults, and values loaded from the config file or command-line flags.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Goal         GoalConfig
		Session      SessionConfig
		Notification NotificationConfig
		Display      DisplayConfig
		System       SystemConfig
	}

	// GoalConfig holds the daily focus goal.
	GoalConfig struct {
		// Daily is the cumulative focused time per calendar day that counts
		// as a successful streak day.
		Daily time.Duration
	}

	// SessionConfig holds timer and category settings.
	SessionConfig struct {
		Duration        time.Duration
		Categories      []string
		DefaultCategory string
		// Cmd is an optional command to run after a session is recorded.
		Cmd string
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		Enabled bool
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool
		TwentyFourHour bool
	}

	// SystemConfig holds system-related settings.
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		LogPath    string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.1"

const DefaultDailyGoal = 2 * time.Hour

var (
	configDir      = "odak"
	configFileName = "config.yml"
	dbFileName     = "odak.db"
	logFileName    = "odak.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

func InitializePaths() {
	odakEnv := strings.TrimSpace(os.Getenv("ODAK_ENV"))
	if odakEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", odakEnv)
		dbFileName = fmt.Sprintf("odak_%s.db", odakEnv)
		logFileName = fmt.Sprintf("odak_%s.log", odakEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New creates a new Config with default values and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{
		Goal: GoalConfig{
			Daily: DefaultDailyGoal,
		},
		System: SystemConfig{
			ConfigPath: configFilePath,
			DBPath:     dbFilePath,
			LogPath:    logFilePath,
		},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("config option error: %w", err)
		}
	}

	return cfg, nil
}
