package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/openmeteo"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{EnvGeocodingURL, EnvForecastURL, EnvUnit, EnvTimeout, EnvDebugLog} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	if cfg.GeocodingURL != openmeteo.DefaultGeocodingURL {
		t.Errorf("GeocodingURL = %s, want %s", cfg.GeocodingURL, openmeteo.DefaultGeocodingURL)
	}
	if cfg.ForecastURL != openmeteo.DefaultForecastURL {
		t.Errorf("ForecastURL = %s, want %s", cfg.ForecastURL, openmeteo.DefaultForecastURL)
	}
	if cfg.Unit != models.Celsius {
		t.Errorf("Unit = %v, want C", cfg.Unit)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout)
	}
	if cfg.DebugLog != "" {
		t.Errorf("DebugLog = %q, want empty", cfg.DebugLog)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvGeocodingURL, "http://localhost:8081")
	t.Setenv(EnvForecastURL, "http://localhost:8082")
	t.Setenv(EnvUnit, "F")
	t.Setenv(EnvTimeout, "3s")
	t.Setenv(EnvDebugLog, "debug.log")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	if cfg.GeocodingURL != "http://localhost:8081" {
		t.Errorf("GeocodingURL = %s", cfg.GeocodingURL)
	}
	if cfg.ForecastURL != "http://localhost:8082" {
		t.Errorf("ForecastURL = %s", cfg.ForecastURL)
	}
	if cfg.Unit != models.Fahrenheit {
		t.Errorf("Unit = %v, want F", cfg.Unit)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.Timeout)
	}
	if cfg.DebugLog != "debug.log" {
		t.Errorf("DebugLog = %q, want debug.log", cfg.DebugLog)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad unit", EnvUnit, "kelvin"},
		{"bad timeout", EnvTimeout, "soon"},
		{"zero timeout", EnvTimeout, "0s"},
		{"negative timeout", EnvTimeout, "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := FromEnv(); err == nil {
				t.Errorf("FromEnv() with %s=%q expected error", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(EnvUnit)

	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte("WEATHER_UNIT=fahrenheit\n"), 0644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	chdir(t, tmpDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Unit != models.Fahrenheit {
		t.Errorf("Unit from .env = %v, want F", cfg.Unit)
	}
}

func TestLoad_NoDotEnv(t *testing.T) {
	clearEnv(t)

	chdir(t, t.TempDir())

	if _, err := Load(); err != nil {
		t.Errorf("Load() without .env error = %v", err)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q): %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore Chdir(%q): %v", prev, err)
		}
	})
}
