package config

import (
	"sync"

	"github.com/spf13/viper"
)

// Settings is a dotted-key value store scoped to one analysis run. It carries
// feature flags, the Jira connection settings, and the per-run ticket cache.
// Get and Set are atomic per key so concurrent analyses sharing a store do
// not corrupt it.
type Settings struct {
	mu sync.RWMutex
	v  *viper.Viper
}

// NewSettings creates a settings store seeded from the loaded configuration.
func NewSettings(cfg *Config) *Settings {
	v := viper.New()

	v.SetDefault("jira.enable_jira_integration", true)
	v.SetDefault("pr_reviewer.require_ticket_analysis_review", false)

	if cfg != nil {
		v.Set("jira.jira_base_url", cfg.Jira.BaseURL)
		v.Set("jira.jira_api_email", cfg.Jira.APIEmail)
		v.Set("jira.jira_api_token", cfg.Jira.APIToken)
	}

	return &Settings{v: v}
}

// Get returns the value stored under key, or nil if the key is unset.
func (s *Settings) Get(key string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.v.IsSet(key) {
		return nil
	}
	return s.v.Get(key)
}

// GetString returns the string value stored under key, or "" if unset.
func (s *Settings) GetString(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.GetString(key)
}

// GetBool returns the boolean value stored under key, or fallback if the
// key is unset.
func (s *Settings) GetBool(key string, fallback bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.v.IsSet(key) {
		return fallback
	}
	return s.v.GetBool(key)
}

// Set stores value under key, replacing any previous value.
func (s *Settings) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(key, value)
}

// JiraSettings assembles the Jira connection configuration from the store.
func (s *Settings) JiraSettings() JiraConfig {
	return JiraConfig{
		BaseURL:  s.GetString("jira.jira_base_url"),
		APIEmail: s.GetString("jira.jira_api_email"),
		APIToken: s.GetString("jira.jira_api_token"),
	}
}
