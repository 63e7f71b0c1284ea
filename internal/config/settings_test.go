package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsDefaults(t *testing.T) {
	s := NewSettings(nil)

	assert.True(t, s.GetBool("jira.enable_jira_integration", true),
		"jira integration defaults to enabled")
	assert.False(t, s.GetBool("pr_reviewer.require_ticket_analysis_review", false),
		"ticket analysis defaults to not required")
	assert.Nil(t, s.Get("no.such.key"))
	assert.True(t, s.GetBool("no.such.key", true), "unset key falls back")
}

func TestSettingsSetAndGet(t *testing.T) {
	s := NewSettings(nil)

	s.Set("jira.enable_jira_integration", false)
	assert.False(t, s.GetBool("jira.enable_jira_integration", true))

	s.Set("related_tickets_https://github.com/acme/widgets/pull/1", []string{"a"})
	got := s.Get("related_tickets_https://github.com/acme/widgets/pull/1")
	assert.Equal(t, []string{"a"}, got)
}

func TestSettingsSeededFromConfig(t *testing.T) {
	s := NewSettings(&Config{
		Jira: JiraConfig{
			BaseURL:  "https://jira.example.com",
			APIEmail: "bot@example.com",
			APIToken: "token",
		},
	})

	jira := s.JiraSettings()
	assert.Equal(t, "https://jira.example.com", jira.BaseURL)
	assert.Equal(t, "bot@example.com", jira.APIEmail)
	assert.Equal(t, "token", jira.APIToken)
}
