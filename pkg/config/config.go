package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingToken is returned when no Vercel API token is configured
var ErrMissingToken = errors.New("VERCEL_TOKEN is not set")

// Config holds all configuration for deploywatch
type Config struct {
	Vercel  VercelConfig
	Monitor MonitorConfig
	Log     LogConfig
}

// VercelConfig holds API access configuration
type VercelConfig struct {
	Token       string
	TeamID      string
	APIURL      string
	HTTPTimeout time.Duration
}

// MonitorConfig holds poll loop configuration
type MonitorConfig struct {
	PollInterval time.Duration
	MaxPolls     int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// Load loads configuration from an optional config file and environment
// variables. A fresh viper instance is used so no package-global state
// leaks between loads.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.deploywatch")

	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, use defaults and env vars only
	}

	// Override with environment variables
	v.AutomaticEnv()
	v.BindEnv("vercel.token", "VERCEL_TOKEN")
	v.BindEnv("vercel.team_id", "VERCEL_TEAM_ID")
	v.BindEnv("vercel.api_url", "VERCEL_API_URL")
	v.BindEnv("vercel.http_timeout", "VERCEL_HTTP_TIMEOUT")
	v.BindEnv("monitor.poll_interval", "DEPLOYWATCH_POLL_INTERVAL")
	v.BindEnv("monitor.max_polls", "DEPLOYWATCH_MAX_POLLS")
	v.BindEnv("log.level", "DEPLOYWATCH_LOG_LEVEL")

	config := &Config{
		Vercel: VercelConfig{
			Token:       v.GetString("vercel.token"),
			TeamID:      v.GetString("vercel.team_id"),
			APIURL:      v.GetString("vercel.api_url"),
			HTTPTimeout: v.GetDuration("vercel.http_timeout"),
		},
		Monitor: MonitorConfig{
			PollInterval: v.GetDuration("monitor.poll_interval"),
			MaxPolls:     v.GetInt("monitor.max_polls"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
		},
	}

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Vercel API defaults
	v.SetDefault("vercel.token", "")
	v.SetDefault("vercel.team_id", "")
	v.SetDefault("vercel.api_url", "https://api.vercel.com")
	v.SetDefault("vercel.http_timeout", 30*time.Second)

	// Monitor defaults: 10 polls of 30s, five minutes in total
	v.SetDefault("monitor.poll_interval", 30*time.Second)
	v.SetDefault("monitor.max_polls", 10)

	// Logging defaults
	v.SetDefault("log.level", "info")
}

// Validate checks that the configuration is usable before any network call
func (c *Config) Validate() error {
	if c.Vercel.Token == "" {
		return ErrMissingToken
	}
	if c.Monitor.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", c.Monitor.PollInterval)
	}
	if c.Monitor.MaxPolls <= 0 {
		return fmt.Errorf("max polls must be positive, got %d", c.Monitor.MaxPolls)
	}
	return nil
}
