package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Draw.Steps != 30 {
			t.Errorf("expected 30 draw steps, got %d", config.Draw.Steps)
		}

		if config.Draw.Interval() != 80*time.Millisecond {
			t.Errorf("expected 80ms interval, got %v", config.Draw.Interval())
		}

		if config.Grouping.Size != 4 {
			t.Errorf("expected group size 4, got %d", config.Grouping.Size)
		}

		if config.Locale.Name != "en" {
			t.Errorf("expected locale en, got %s", config.Locale.Name)
		}

		if err := config.Validate(); err != nil {
			t.Errorf("default config should validate: %v", err)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.Grouping.Size != DefaultConfig().Grouping.Size {
			t.Errorf("created config group size doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[locale]
name = "zh-TW"

[roster]
sample_names = ["Ann", "Bo"]

[draw]
steps = 5
interval_ms = 0
allow_duplicates = true

[grouping]
size = 6
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Locale.Name != "zh-TW" {
			t.Errorf("expected locale zh-TW, got %s", config.Locale.Name)
		}
		if len(config.Roster.SampleNames) != 2 {
			t.Errorf("expected 2 sample names, got %d", len(config.Roster.SampleNames))
		}
		if config.Draw.Steps != 5 || !config.Draw.AllowDuplicates {
			t.Errorf("unexpected draw config: %+v", config.Draw)
		}
		if config.Grouping.Size != 6 {
			t.Errorf("expected group size 6, got %d", config.Grouping.Size)
		}
		if config.Log.Level != "info" {
			t.Errorf("expected missing keys to keep defaults, got log level %q", config.Log.Level)
		}
	})

	t.Run("LoadConfig rejects out of range group size", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[grouping]\nsize = 21\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("LoadConfig rejects unknown locale", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[locale]\nname = \"fr\"\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfig(configPath); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestLocale(t *testing.T) {
	tc := []struct {
		name   string
		locale string
		want   string
		header string
	}{
		{name: "english", locale: "en", want: "Group 3", header: "Group"},
		{name: "traditional chinese", locale: "zh-TW", want: "第 3 組", header: "組別"},
		{name: "unknown falls back to english", locale: "fr", want: "Group 3", header: "Group"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			l := LookupLocale(tt.locale)
			if got := l.GroupName(3); got != tt.want {
				t.Errorf("GroupName() = %v, want %v", got, tt.want)
			}
			if l.Header[0] != tt.header {
				t.Errorf("Header[0] = %v, want %v", l.Header[0], tt.header)
			}
		})
	}
}
