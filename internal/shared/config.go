package shared

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

//go:embed config.example.toml
var exampleConf []byte

var validate = validator.New()

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Log      LogConfig      `toml:"log"`
	Locale   LocaleConfig   `toml:"locale"`
	Roster   RosterConfig   `toml:"roster"`
	Draw     DrawConfig     `toml:"draw"`
	Grouping GroupingConfig `toml:"grouping"`
}

// LogConfig controls the logger level and the file used while the TUI owns the terminal.
type LogConfig struct {
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `toml:"file"`
}

// LocaleConfig selects the labels used for group names and exports.
type LocaleConfig struct {
	Name string `toml:"name" validate:"omitempty,oneof=en zh-TW"`
}

// RosterConfig contains roster ingestion settings.
type RosterConfig struct {
	SampleNames []string `toml:"sample_names"`
}

// DrawConfig contains prize draw settings.
type DrawConfig struct {
	Steps           int  `toml:"steps" validate:"min=1,max=1000"`
	IntervalMS      int  `toml:"interval_ms" validate:"min=0,max=10000"`
	AllowDuplicates bool `toml:"allow_duplicates"`
}

// GroupingConfig contains auto grouping settings.
type GroupingConfig struct {
	Size      int    `toml:"size" validate:"min=2,max=20"`
	OutputDir string `toml:"output_dir"`
}

// Interval returns the cadence between cycling samples.
func (d DrawConfig) Interval() time.Duration {
	return time.Duration(d.IntervalMS) * time.Millisecond
}

// Validate checks the configuration values against their allowed ranges.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig reads, parses and validates a TOML configuration file from the specified path.
//
// Keys missing from the file keep the embedded defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, os.ErrExist)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
