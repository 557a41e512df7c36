package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := InitializeConfig()
	require.NoError(t, err)
	return cfg
}

func TestInitializeConfigDefaults(t *testing.T) {
	cfg := defaultConfig(t)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "uploads", cfg.Server.UploadDir)
	assert.Equal(t, "outputs", cfg.Server.OutputDir)
	assert.Equal(t, int64(32), cfg.Server.MaxUploadMB)
	assert.Equal(t, 12.0, cfg.PDF.CellGap)
	assert.False(t, cfg.Categories.Enabled)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("P2F_SERVER_PORT", "9090")
	t.Setenv("P2F_LOG_LEVEL", "debug")

	cfg := defaultConfig(t)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestInitializeConfigLegacyDelimiter(t *testing.T) {
	t.Setenv("CSV_DELIMITER", ";")

	cfg := defaultConfig(t)
	assert.Equal(t, ";", cfg.CSV.Delimiter)
}

func TestAddr(t *testing.T) {
	cfg := defaultConfig(t)
	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"multi-char delimiter", func(c *Config) { c.CSV.Delimiter = ",," }},
		{"port out of range", func(c *Config) { c.Server.Port = 0 }},
		{"zero upload limit", func(c *Config) { c.Server.MaxUploadMB = 0 }},
		{"categories without file", func(c *Config) {
			c.Categories.Enabled = true
			c.Categories.File = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig(t)
			tt.mutate(cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Log.Level = "debug"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, "debug", logger.GetLevel().String())
}
