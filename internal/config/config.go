// Package config handles the ~/.studyquest directory and app settings.
// Precedence, lowest to highest: built-in defaults, config.yaml in the app
// dir, a .env file in the working directory, then process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppDirName is the dot directory created in the user's home.
const AppDirName = ".studyquest"

const configFileName = "config.yaml"

// Config holds all app settings. Every field has a documented default; zero
// values never leak into the engine.
type Config struct {
	// DBPath is the SQLite file location. Default: <appDir>/studyquest.db.
	DBPath string `yaml:"db_path" env:"STUDYQUEST_DB"`
	// ReminderStartHour/ReminderEndHour bound when report reminders may
	// fire (local time). Defaults: 8 and 22.
	ReminderStartHour int `yaml:"reminder_start_hour" env:"STUDYQUEST_REMINDER_START"`
	ReminderEndHour   int `yaml:"reminder_end_hour" env:"STUDYQUEST_REMINDER_END"`
	// DailyReportHour is when the daily report reminder fires. Default: 21.
	DailyReportHour int `yaml:"daily_report_hour" env:"STUDYQUEST_DAILY_REPORT_HOUR"`
}

func Default() Config {
	return Config{
		ReminderStartHour: 8,
		ReminderEndHour:   22,
		DailyReportHour:   21,
	}
}

// AppDir returns (and creates) the studyquest dot directory.
func AppDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	dir := filepath.Join(homeDir, AppDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure app dir: %w", err)
	}
	return dir, nil
}

// Load assembles the effective configuration.
func Load() (Config, string, error) {
	cfg := Default()

	appDir, err := AppDir()
	if err != nil {
		return cfg, "", err
	}

	path := filepath.Join(appDir, configFileName)
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// First run; leave defaults and write a starter file.
		if werr := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); werr != nil {
			return cfg, "", fmt.Errorf("write default config: %w", werr)
		}
	case err != nil:
		return cfg, "", fmt.Errorf("read config: %w", err)
	default:
		if uerr := yaml.Unmarshal(raw, &cfg); uerr != nil {
			return cfg, "", fmt.Errorf("parse %s: %w", configFileName, uerr)
		}
	}

	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	if err := env.Parse(&cfg); err != nil {
		return cfg, "", fmt.Errorf("parse env: %w", err)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(appDir, "studyquest.db")
	}
	if cfg.ReminderStartHour < 0 || cfg.ReminderStartHour > 23 {
		cfg.ReminderStartHour = Default().ReminderStartHour
	}
	if cfg.ReminderEndHour < 0 || cfg.ReminderEndHour > 23 {
		cfg.ReminderEndHour = Default().ReminderEndHour
	}
	if cfg.DailyReportHour < 0 || cfg.DailyReportHour > 23 {
		cfg.DailyReportHour = Default().DailyReportHour
	}

	return cfg, appDir, nil
}

const defaultConfigYAML = `# studyquest configuration
# db_path: /path/to/studyquest.db

# Local hours during which reminders may fire.
reminder_start_hour: 8
reminder_end_hour: 22

# When the daily report reminder fires.
daily_report_hour: 21
`
