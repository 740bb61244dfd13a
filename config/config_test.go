package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, 6.0, cfg.Aspects.Orb)
	assert.Equal(t, "Moon", cfg.Transits.Planet)
	assert.Equal(t, 15, cfg.Transits.StepMinutes)
	assert.Equal(t, "sqlite", cfg.Journal.Type)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func(mutate func(*Config)) *Config {
		cfg := Default()
		mutate(cfg)
		return cfg
	}

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			config:  Default(),
			wantErr: false,
		},
		{
			name:    "zero orb",
			config:  valid(func(c *Config) { c.Aspects.Orb = 0 }),
			wantErr: true,
			errMsg:  "aspects.orb must be positive",
		},
		{
			name:    "negative orb",
			config:  valid(func(c *Config) { c.Aspects.Orb = -2 }),
			wantErr: true,
			errMsg:  "aspects.orb must be positive",
		},
		{
			name:    "step too small",
			config:  valid(func(c *Config) { c.Transits.StepMinutes = 0 }),
			wantErr: true,
			errMsg:  "transits.step_minutes must be between 1 and 60",
		},
		{
			name:    "step too large",
			config:  valid(func(c *Config) { c.Transits.StepMinutes = 61 }),
			wantErr: true,
			errMsg:  "transits.step_minutes must be between 1 and 60",
		},
		{
			name:    "unknown planet",
			config:  valid(func(c *Config) { c.Transits.Planet = "Vulcan" }),
			wantErr: true,
			errMsg:  "transits.planet",
		},
		{
			name:    "latitude out of range",
			config:  valid(func(c *Config) { c.Location.Latitude = 91 }),
			wantErr: true,
			errMsg:  "location.latitude must be between -90 and 90",
		},
		{
			name:    "longitude out of range",
			config:  valid(func(c *Config) { c.Location.Longitude = -181 }),
			wantErr: true,
			errMsg:  "location.longitude must be between -180 and 180",
		},
		{
			name:    "timezone out of range",
			config:  valid(func(c *Config) { c.Location.TimezoneOffsetHours = 15 }),
			wantErr: true,
			errMsg:  "location.timezone_offset_hours must be between -12 and 14",
		},
		{
			name:    "bad journal type",
			config:  valid(func(c *Config) { c.Journal.Type = "postgres" }),
			wantErr: true,
			errMsg:  "journal.type must be",
		},
		{
			name: "csv journal missing events file",
			config: valid(func(c *Config) {
				c.Journal.Type = "csv"
				c.Journal.EventsFile = ""
			}),
			wantErr: true,
			errMsg:  "events_file required",
		},
		{
			name: "sqlite journal missing db path",
			config: valid(func(c *Config) {
				c.Journal.Type = "sqlite"
				c.Journal.DBPath = ""
			}),
			wantErr: true,
			errMsg:  "db_path required",
		},
		{
			name:    "journaling disabled",
			config:  valid(func(c *Config) { c.Journal = JournalConfig{} }),
			wantErr: false,
		},
		{
			name:    "missing server addr",
			config:  valid(func(c *Config) { c.Server.Addr = "" }),
			wantErr: true,
			errMsg:  "server.addr is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
		{"yml format", ".yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Aspects.Orb = 4.5
			cfg.Transits.Planet = "Venus"
			path := filepath.Join(tmpDir, "test"+tt.ext)

			err := cfg.SaveToFile(path)
			require.NoError(t, err)

			_, err = os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)

			assert.Equal(t, cfg.Aspects.Orb, loaded.Aspects.Orb)
			assert.Equal(t, cfg.Transits.Planet, loaded.Transits.Planet)
			assert.Equal(t, cfg.Transits.StepMinutes, loaded.Transits.StepMinutes)
			assert.Equal(t, cfg.Location.Latitude, loaded.Location.Latitude)
			assert.Equal(t, cfg.Journal.Type, loaded.Journal.Type)
			assert.Equal(t, cfg.Server.Addr, loaded.Server.Addr)
		})
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("aspects:\n  orb: -1\n"), 0644))

	_, err := LoadFromFile(path)
	assert.ErrorContains(t, err, "invalid config")
}
