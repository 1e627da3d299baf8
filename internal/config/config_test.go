package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.WindowSize)
	assert.Equal(t, 0.5, cfg.Sensitivity)
	assert.Equal(t, 10, cfg.MaxNewCards)
	assert.Equal(t, 30, cfg.MaxReviewCards)
	assert.Equal(t, 10, cfg.QuizSize)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("MNEMO_WINDOW_SIZE", "8")
	t.Setenv("MNEMO_SENSITIVITY", "0.9")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.WindowSize)
	assert.Equal(t, 0.9, cfg.Sensitivity)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero window", func(c *Config) { c.WindowSize = 0 }},
		{"sensitivity too high", func(c *Config) { c.Sensitivity = 1.5 }},
		{"negative new cards", func(c *Config) { c.MaxNewCards = -1 }},
		{"negative quiz size", func(c *Config) { c.QuizSize = -1 }},
		{"negative recommend limit", func(c *Config) { c.RecommendLimit = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{WindowSize: 20, Sensitivity: 0.5, MaxNewCards: 10, MaxReviewCards: 30, QuizSize: 10, RecommendLimit: 10}
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
