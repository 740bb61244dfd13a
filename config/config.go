package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rustyeddy/starwheel/ephemeris"
	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Aspects  AspectsConfig  `json:"aspects" yaml:"aspects"`
	Transits TransitsConfig `json:"transits" yaml:"transits"`
	Location LocationConfig `json:"location" yaml:"location"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
	Server   ServerConfig   `json:"server" yaml:"server"`
}

// AspectsConfig contains aspect-matching parameters
type AspectsConfig struct {
	Orb float64 `json:"orb" yaml:"orb"`
}

// TransitsConfig contains transit-scan parameters
type TransitsConfig struct {
	Planet      string `json:"planet" yaml:"planet"`
	StepMinutes int    `json:"step_minutes" yaml:"step_minutes"`
}

// LocationConfig contains the default observer location
type LocationConfig struct {
	Latitude            float64 `json:"latitude" yaml:"latitude"`
	Longitude           float64 `json:"longitude" yaml:"longitude"`
	TimezoneOffsetHours float64 `json:"timezone_offset_hours" yaml:"timezone_offset_hours"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "csv" or "sqlite"
	EventsFile string `json:"events_file,omitempty" yaml:"events_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// ServerConfig contains HTTP API parameters
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Aspects.Orb <= 0 {
		return fmt.Errorf("aspects.orb must be positive")
	}
	if c.Transits.StepMinutes < 1 || c.Transits.StepMinutes > 60 {
		return fmt.Errorf("transits.step_minutes must be between 1 and 60")
	}
	if _, err := ephemeris.ParseBody(c.Transits.Planet); err != nil {
		return fmt.Errorf("transits.planet: %w", err)
	}
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return fmt.Errorf("location.latitude must be between -90 and 90")
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return fmt.Errorf("location.longitude must be between -180 and 180")
	}
	if c.Location.TimezoneOffsetHours < -12 || c.Location.TimezoneOffsetHours > 14 {
		return fmt.Errorf("location.timezone_offset_hours must be between -12 and 14")
	}
	if c.Journal.Type != "csv" && c.Journal.Type != "sqlite" && c.Journal.Type != "" {
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or empty")
	}
	if c.Journal.Type == "csv" && c.Journal.EventsFile == "" {
		return fmt.Errorf("journal events_file required for CSV type")
	}
	if c.Journal.Type == "sqlite" && c.Journal.DBPath == "" {
		return fmt.Errorf("journal db_path required for SQLite type")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Aspects: AspectsConfig{
			Orb: 6.0,
		},
		Transits: TransitsConfig{
			Planet:      "Moon",
			StepMinutes: 15,
		},
		Location: LocationConfig{
			Latitude:            41.9028, // Rome
			Longitude:           12.4964,
			TimezoneOffsetHours: 1.0,
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./transits.sqlite",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}
