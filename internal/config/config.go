// Package config resolves application settings from flags, environment
// variables, and the config file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config carries the application settings resolved from flags, environment,
// and the config file.
type Config struct {
	Database DatabaseConfig
	Logging  LoggingConfig
	Goals    GoalsConfig
}

// DatabaseConfig locates the SQLite database file.
type DatabaseConfig struct {
	Path string
}

// LoggingConfig controls the global slog handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// GoalsConfig tunes goal analytics.
type GoalsConfig struct {
	// PriorityThreshold is the highest priority value still treated as a
	// priority goal. Priority is ascending: 1 is the most urgent.
	PriorityThreshold int
}

// Load resolves the configuration from viper, applying defaults for anything
// unset.
func Load() Config {
	cfg := Config{
		Database: DatabaseConfig{
			Path: viper.GetString("database.path"),
		},
		Logging: LoggingConfig{
			Level:  viper.GetString("logging.level"),
			Format: viper.GetString("logging.format"),
		},
		Goals: GoalsConfig{
			PriorityThreshold: viper.GetInt("goals.priority_threshold"),
		},
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = DefaultDatabasePath()
	} else {
		cfg.Database.Path = ExpandPath(cfg.Database.Path)
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	return cfg
}

// DefaultDatabasePath returns the standard database location under the user's
// home directory, falling back to the working directory when home is unknown.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "finman.db"
	}
	return filepath.Join(home, ".local", "share", "finman", "finman.db")
}

// ExpandPath resolves a leading ~ and any $VAR references in a user-supplied
// path. Paths that cannot be expanded are returned as given.
func ExpandPath(path string) string {
	switch {
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}
