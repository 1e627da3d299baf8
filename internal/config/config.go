// Package config loads host configuration for the CLI: storage location
// and engine tunables. Values resolve from defaults, an optional config
// file, and MNEMO_-prefixed environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the host-level settings around the engine.
type Config struct {
	// DBPath is the SQLite file; empty means the XDG default.
	DBPath string `mapstructure:"db_path"`

	// WindowSize and Sensitivity configure the adaptive difficulty engine.
	WindowSize  int     `mapstructure:"window_size"`
	Sensitivity float64 `mapstructure:"sensitivity"`

	// MaxNewCards and MaxReviewCards bound the study queue.
	MaxNewCards    int `mapstructure:"max_new_cards"`
	MaxReviewCards int `mapstructure:"max_review_cards"`

	// QuizSize is the default question count for generated quizzes.
	QuizSize int `mapstructure:"quiz_size"`

	// RecommendLimit caps the recommendation list.
	RecommendLimit int `mapstructure:"recommend_limit"`
}

// Load reads configuration from defaults, an optional
// $XDG_CONFIG_HOME/mnemo/config.yaml, and the environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("db_path", "")
	v.SetDefault("window_size", 20)
	v.SetDefault("sensitivity", 0.5)
	v.SetDefault("max_new_cards", 10)
	v.SetDefault("max_review_cards", 30)
	v.SetDefault("quiz_size", 10)
	v.SetDefault("recommend_limit", 10)

	v.SetEnvPrefix("MNEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if dir := configDir(); dir != "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the tunables' ranges.
func (c *Config) Validate() error {
	if c.WindowSize <= 0 {
		return fmt.Errorf("config: window_size %d must be positive", c.WindowSize)
	}
	if c.Sensitivity < 0 || c.Sensitivity > 1 {
		return fmt.Errorf("config: sensitivity %.2f out of range [0, 1]", c.Sensitivity)
	}
	if c.MaxNewCards < 0 || c.MaxReviewCards < 0 {
		return fmt.Errorf("config: queue limits must be non-negative")
	}
	if c.QuizSize < 0 {
		return fmt.Errorf("config: quiz_size %d must be non-negative", c.QuizSize)
	}
	if c.RecommendLimit < 0 {
		return fmt.Errorf("config: recommend_limit %d must be non-negative", c.RecommendLimit)
	}
	return nil
}

func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "mnemo")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "mnemo")
}
