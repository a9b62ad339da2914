package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Vercel.APIURL != "https://api.vercel.com" {
		t.Errorf("Expected default API URL, got %s", cfg.Vercel.APIURL)
	}
	if cfg.Vercel.HTTPTimeout != 30*time.Second {
		t.Errorf("Expected default HTTP timeout 30s, got %s", cfg.Vercel.HTTPTimeout)
	}
	if cfg.Monitor.PollInterval != 30*time.Second {
		t.Errorf("Expected default poll interval 30s, got %s", cfg.Monitor.PollInterval)
	}
	if cfg.Monitor.MaxPolls != 10 {
		t.Errorf("Expected default max polls 10, got %d", cfg.Monitor.MaxPolls)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.Log.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("VERCEL_TOKEN", "tok_secret")
	t.Setenv("VERCEL_TEAM_ID", "team_42")
	t.Setenv("DEPLOYWATCH_MAX_POLLS", "3")
	t.Setenv("DEPLOYWATCH_POLL_INTERVAL", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Vercel.Token != "tok_secret" {
		t.Errorf("Expected token from env, got %q", cfg.Vercel.Token)
	}
	if cfg.Vercel.TeamID != "team_42" {
		t.Errorf("Expected team ID from env, got %q", cfg.Vercel.TeamID)
	}
	if cfg.Monitor.MaxPolls != 3 {
		t.Errorf("Expected max polls 3, got %d", cfg.Monitor.MaxPolls)
	}
	if cfg.Monitor.PollInterval != 5*time.Second {
		t.Errorf("Expected poll interval 5s, got %s", cfg.Monitor.PollInterval)
	}
}

func TestValidate_MissingToken(t *testing.T) {
	cfg := &Config{
		Monitor: MonitorConfig{PollInterval: 30 * time.Second, MaxPolls: 10},
	}

	if err := cfg.Validate(); err != ErrMissingToken {
		t.Errorf("Expected ErrMissingToken, got %v", err)
	}
}

func TestValidate_BadPollSettings(t *testing.T) {
	cfg := &Config{
		Vercel:  VercelConfig{Token: "tok"},
		Monitor: MonitorConfig{PollInterval: 0, MaxPolls: 10},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for zero poll interval")
	}

	cfg.Monitor.PollInterval = 30 * time.Second
	cfg.Monitor.MaxPolls = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for zero max polls")
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := &Config{
		Vercel:  VercelConfig{Token: "tok"},
		Monitor: MonitorConfig{PollInterval: 30 * time.Second, MaxPolls: 10},
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
}
