// Package config provides centralized configuration management for the application.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application.
type Config struct {
	GitHub      GitHubConfig
	Jira        JiraConfig
	AzureDevOps AzureDevOpsConfig
}

// GitHubConfig holds GitHub specific configuration.
type GitHubConfig struct {
	Token  string
	Domain string
}

// JiraConfig holds Jira specific configuration.
type JiraConfig struct {
	BaseURL  string
	APIEmail string
	APIToken string
}

// AzureDevOpsConfig holds Azure DevOps specific configuration.
type AzureDevOpsConfig struct {
	OrganizationURL string
	PAT             string
}

// LoadConfig initializes and loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	// Initialize Viper for environment variables
	v := viper.New()
	v.SetEnvPrefix("")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Map specific environment variables
	v.BindEnv("github.token", "GITHUB_TOKEN")
	v.BindEnv("github.domain", "GITHUB_DOMAIN")
	v.BindEnv("jira.jira_base_url", "JIRA_BASE_URL")
	v.BindEnv("jira.jira_api_email", "JIRA_API_EMAIL")
	v.BindEnv("jira.jira_api_token", "JIRA_API_TOKEN")
	v.BindEnv("azdo.org_url", "AZDO_ORG_URL")
	v.BindEnv("azdo.pat", "AZDO_PAT")

	config := &Config{
		GitHub: GitHubConfig{
			Token:  v.GetString("github.token"),
			Domain: v.GetString("github.domain"),
		},
		Jira: JiraConfig{
			BaseURL:  v.GetString("jira.jira_base_url"),
			APIEmail: v.GetString("jira.jira_api_email"),
			APIToken: v.GetString("jira.jira_api_token"),
		},
		AzureDevOps: AzureDevOpsConfig{
			OrganizationURL: v.GetString("azdo.org_url"),
			PAT:             v.GetString("azdo.pat"),
		},
	}

	return config, nil
}

// ValidateJiraConfig checks the Jira configuration for missing or
// whitespace-only values and returns the names of any offending fields.
// An empty result means the configuration is usable.
func ValidateJiraConfig(cfg JiraConfig) []string {
	var missing []string

	if strings.TrimSpace(cfg.BaseURL) == "" {
		missing = append(missing, "jira_base_url")
	}
	if strings.TrimSpace(cfg.APIEmail) == "" {
		missing = append(missing, "jira_api_email")
	}
	if strings.TrimSpace(cfg.APIToken) == "" {
		missing = append(missing, "jira_api_token")
	}

	return missing
}
