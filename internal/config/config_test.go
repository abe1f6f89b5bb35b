package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/sealsel/sealsel/pkg/seal"
)

func TestLoad_Valid(t *testing.T) {
	yaml := `
log:
  level: debug
  format: text
catalog:
  unique_part_numbers: true
metrics:
  textfile: /var/lib/node_exporter/sealsel.prom
defaults:
  motion: dynamic
  medium: Hydraulic Oil
  temp_c: 80
`
	cfg := loadFromString(t, yaml)

	if cfg.Log.Level != "debug" {
		t.Errorf("log.level: got %q", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format: got %q", cfg.Log.Format)
	}
	if !cfg.Catalog.UniquePartNumbers {
		t.Error("catalog.unique_part_numbers: got false")
	}
	if cfg.Metrics.Textfile != "/var/lib/node_exporter/sealsel.prom" {
		t.Errorf("metrics.textfile: got %q", cfg.Metrics.Textfile)
	}
	if cfg.Defaults.Motion != seal.MotionDynamic {
		t.Errorf("defaults.motion: got %q", cfg.Defaults.Motion)
	}
	if cfg.Defaults.Medium != "Hydraulic Oil" {
		t.Errorf("defaults.medium: got %q", cfg.Defaults.Medium)
	}
	if cfg.Defaults.TempC != 80 {
		t.Errorf("defaults.temp_c: got %d", cfg.Defaults.TempC)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg := loadFromString(t, "metrics:\n  textfile: out.prom\n")

	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("default log.level: got %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	if cfg.Log.Format != DefaultLogFormat {
		t.Errorf("default log.format: got %q, want %q", cfg.Log.Format, DefaultLogFormat)
	}
	if cfg.Defaults.Motion != seal.MotionBoth {
		t.Errorf("default motion: got %q, want both", cfg.Defaults.Motion)
	}
	if cfg.Defaults.TempC != DefaultTempC {
		t.Errorf("default temp_c: got %d, want %d", cfg.Defaults.TempC, DefaultTempC)
	}
	if cfg.Catalog.UniquePartNumbers {
		t.Error("default unique_part_numbers: got true, want false")
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg := loadFromString(t, "")
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("log.level: got %q", cfg.Log.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := loadStringErr(t, "log: [unterminated")
	if err == nil {
		t.Fatal("expected error for invalid yaml, got nil")
	}
}

func TestLoad_UnknownLogLevel(t *testing.T) {
	_, err := loadStringErr(t, "log:\n  level: chatty\n")
	if err == nil {
		t.Fatal("expected error for unknown log level, got nil")
	}
}

func TestLoad_UnknownLogFormat(t *testing.T) {
	_, err := loadStringErr(t, "log:\n  format: xml\n")
	if err == nil {
		t.Fatal("expected error for unknown log format, got nil")
	}
}

func TestLoad_UnknownMotion(t *testing.T) {
	_, err := loadStringErr(t, "defaults:\n  motion: rotary\n")
	if err == nil {
		t.Fatal("expected error for unknown motion, got nil")
	}
}

func TestLoad_MotionCaseInsensitive(t *testing.T) {
	cfg := loadFromString(t, "defaults:\n  motion: Static\n")
	if cfg.Defaults.Motion != seal.MotionStatic {
		t.Errorf("motion: got %q, want static", cfg.Defaults.Motion)
	}
}

func TestLoad_ExampleFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "sealsel.example.yaml"))
	if err != nil {
		t.Fatalf("Load example: %v", err)
	}
	if cfg.Defaults.Medium != "Hydraulic Oil" {
		t.Errorf("defaults.medium: got %q", cfg.Defaults.Medium)
	}
	if cfg.Defaults.Motion != seal.MotionBoth {
		t.Errorf("defaults.motion: got %q", cfg.Defaults.Motion)
	}
	if cfg.Metrics.Textfile != "" {
		t.Errorf("metrics.textfile: got %q, want empty", cfg.Metrics.Textfile)
	}
}

func TestLogConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range tests {
		if got := (LogConfig{Level: tc.level}).SlogLevel(); got != tc.want {
			t.Errorf("SlogLevel(%q): got %v, want %v", tc.level, got, tc.want)
		}
	}
}

// loadFromString writes yaml to a temp file and calls Load, failing on error.
func loadFromString(t *testing.T, content string) *Config {
	t.Helper()
	cfg, err := loadStringErr(t, content)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	return cfg
}

// loadStringErr writes yaml to a temp file and calls Load, returning any error.
func loadStringErr(t *testing.T, content string) (*Config, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sealsel.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return Load(path)
}
