package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "gh-token")
	t.Setenv("GITHUB_DOMAIN", "github.example.com")
	t.Setenv("JIRA_BASE_URL", "https://jira.example.com")
	t.Setenv("JIRA_API_EMAIL", "bot@example.com")
	t.Setenv("JIRA_API_TOKEN", "jira-token")
	t.Setenv("AZDO_ORG_URL", "https://dev.azure.com/acme")
	t.Setenv("AZDO_PAT", "azdo-token")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "gh-token", cfg.GitHub.Token)
	assert.Equal(t, "github.example.com", cfg.GitHub.Domain)
	assert.Equal(t, "https://jira.example.com", cfg.Jira.BaseURL)
	assert.Equal(t, "bot@example.com", cfg.Jira.APIEmail)
	assert.Equal(t, "jira-token", cfg.Jira.APIToken)
	assert.Equal(t, "https://dev.azure.com/acme", cfg.AzureDevOps.OrganizationURL)
	assert.Equal(t, "azdo-token", cfg.AzureDevOps.PAT)
}

func TestValidateJiraConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     JiraConfig
		missing []string
	}{
		{
			name: "All fields present",
			cfg: JiraConfig{
				BaseURL:  "https://jira.example.com",
				APIEmail: "bot@example.com",
				APIToken: "token",
			},
			missing: nil,
		},
		{
			name: "Missing base URL",
			cfg: JiraConfig{
				APIEmail: "bot@example.com",
				APIToken: "token",
			},
			missing: []string{"jira_base_url"},
		},
		{
			name: "Whitespace counts as missing",
			cfg: JiraConfig{
				BaseURL:  "https://jira.example.com",
				APIEmail: "   ",
				APIToken: "\t",
			},
			missing: []string{"jira_api_email", "jira_api_token"},
		},
		{
			name:    "Everything missing",
			cfg:     JiraConfig{},
			missing: []string{"jira_base_url", "jira_api_email", "jira_api_token"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.missing, ValidateJiraConfig(tt.cfg))
		})
	}
}
