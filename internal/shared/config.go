package shared

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Storage drivers understood by [DatabaseConfig.Driver].
const (
	DriverSQLite = "sqlite"
	DriverBadger = "badger"
	DriverMemory = "memory"
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Finder   FinderConfig   `toml:"finder"`
	Practice PracticeConfig `toml:"practice"`
	Log      LogConfig      `toml:"log"`
}

// DatabaseConfig contains key-value store settings.
//
// Path is a SQLite file for the sqlite driver and a directory for the badger driver.
type DatabaseConfig struct {
	Driver       string `toml:"driver"`
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// FinderConfig contains Song Finder settings.
//
// A zero Seed draws a fresh shuffle on every run.
type FinderConfig struct {
	Seed  int64 `toml:"seed"`
	Limit int   `toml:"limit"`
}

// PracticeConfig contains practice logging settings.
type PracticeConfig struct {
	MinSeconds int `toml:"min_seconds"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Values missing from the file keep their defaults.
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
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks driver names, limits and the log level.
func (c *Config) Validate() error {
	if !slices.Contains([]string{DriverSQLite, DriverBadger, DriverMemory}, c.Database.Driver) {
		return fmt.Errorf("%w: unknown database driver %q", ErrInvalidConfig, c.Database.Driver)
	}
	if c.Database.Driver != DriverMemory && c.Database.Path == "" {
		return fmt.Errorf("%w: database path is required for driver %q", ErrInvalidConfig, c.Database.Driver)
	}
	if c.Finder.Limit <= 0 {
		return fmt.Errorf("%w: finder limit must be positive", ErrInvalidConfig)
	}
	if c.Practice.MinSeconds < 0 {
		return fmt.Errorf("%w: practice min_seconds must not be negative", ErrInvalidConfig)
	}
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
