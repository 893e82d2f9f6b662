// Package config loads settings from a TOML file under the user config
// directory, with WORKLOG_* environment variables (and a local .env file)
// taking precedence over the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	// AppName is the application name used for the config directory.
	AppName = "worklog"
	// ConfigFile is the name of the TOML configuration file.
	ConfigFile = "config.toml"

	StorageSQLite = "sqlite"
	StorageJSON   = "json"
)

type Config struct {
	// Storage selects the persistence backend: "sqlite" or "json".
	Storage string `toml:"storage"`
	// DataDir overrides where the backend keeps its data. Empty means the
	// user config directory.
	DataDir string `toml:"data_dir"`
	// WeeklyTargetHours is the target the weekly overtime report compares against.
	WeeklyTargetHours float64 `toml:"weekly_target_hours"`
	// MonthlyTargetHours is the target the monthly overtime report compares against.
	MonthlyTargetHours float64 `toml:"monthly_target_hours"`
	// Debug widens log level and tees logs to stderr.
	Debug bool `toml:"debug"`
}

func Default() Config {
	return Config{
		Storage:            StorageSQLite,
		WeeklyTargetHours:  40,
		MonthlyTargetHours: 160,
	}
}

// Path returns the config file path, creating the config directory if needed.
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	appDir := filepath.Join(configDir, AppName)
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(appDir, ConfigFile), nil
}

// Load builds the effective config: defaults, then the TOML file if present,
// then environment overrides.
func Load() (Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return cfg, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	// A .env alongside the working directory is picked up if present.
	_ = godotenv.Load()
	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Storage = getEnv("WORKLOG_STORAGE", cfg.Storage)
	cfg.DataDir = getEnv("WORKLOG_DATA_DIR", cfg.DataDir)
	cfg.WeeklyTargetHours = getEnvFloat("WORKLOG_WEEKLY_TARGET", cfg.WeeklyTargetHours)
	cfg.MonthlyTargetHours = getEnvFloat("WORKLOG_MONTHLY_TARGET", cfg.MonthlyTargetHours)
	cfg.Debug = getEnvBool("WORKLOG_DEBUG", cfg.Debug)
}

func (c Config) validate() error {
	switch c.Storage {
	case StorageSQLite, StorageJSON:
	default:
		return fmt.Errorf("unknown storage backend %q (want %q or %q)", c.Storage, StorageSQLite, StorageJSON)
	}
	if c.WeeklyTargetHours < 0 || c.MonthlyTargetHours < 0 {
		return fmt.Errorf("target hours must be non-negative")
	}
	return nil
}

// DataPath resolves the backend data file for the configured storage.
func (c Config) DataPath() (string, error) {
	name := "worklog.db"
	if c.Storage == StorageJSON {
		name = "worklog.json"
	}
	if c.DataDir != "" {
		return filepath.Join(c.DataDir, name), nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AppName, name), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
