package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsAndStarterFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, appDir, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ReminderStartHour != 8 || cfg.ReminderEndHour != 22 || cfg.DailyReportHour != 21 {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
	if cfg.DBPath != filepath.Join(appDir, "studyquest.db") {
		t.Fatalf("db path=%q", cfg.DBPath)
	}

	// A starter config.yaml is written on first run.
	if _, err := os.Stat(filepath.Join(appDir, "config.yaml")); err != nil {
		t.Fatalf("starter config missing: %v", err)
	}
}

func TestLoadYAMLAndEnvPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	appDir := filepath.Join(home, AppDirName)
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	yaml := "daily_report_hour: 19\nreminder_start_hour: 9\n"
	if err := os.WriteFile(filepath.Join(appDir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	// Environment beats the file.
	t.Setenv("STUDYQUEST_DAILY_REPORT_HOUR", "20")

	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DailyReportHour != 20 {
		t.Fatalf("daily report hour=%d, want env override 20", cfg.DailyReportHour)
	}
	if cfg.ReminderStartHour != 9 {
		t.Fatalf("reminder start=%d, want yaml 9", cfg.ReminderStartHour)
	}
	if cfg.ReminderEndHour != 22 {
		t.Fatalf("reminder end=%d, want default 22", cfg.ReminderEndHour)
	}
}

func TestLoadClampsBadHours(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STUDYQUEST_DAILY_REPORT_HOUR", "37")

	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DailyReportHour != 21 {
		t.Fatalf("daily report hour=%d, want default 21 for out-of-range value", cfg.DailyReportHour)
	}
}
