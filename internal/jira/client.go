// Package jira provides read-only access to a Jira instance for ticket
// metadata lookups.
package jira

import (
	"fmt"
	"strings"
	"time"

	jira "github.com/andygrunwald/go-jira"

	"github.com/prtrace/prtrace/internal/config"
	"github.com/prtrace/prtrace/internal/logging"
	"github.com/prtrace/prtrace/pkg/models"
)

// connectionTimeout bounds every request made through the client so a slow
// Jira instance cannot hang an analysis.
const connectionTimeout = 15 * time.Second

// Client handles interactions with the Jira API.
type Client struct {
	client  *jira.Client
	baseURL string
}

// NewClient creates a Jira client from the given configuration and verifies
// the connection with a self lookup. The configuration must already be
// validated; see config.ValidateJiraConfig.
func NewClient(cfg config.JiraConfig) (*Client, error) {
	tp := jira.BasicAuthTransport{
		Username: cfg.APIEmail,
		Password: cfg.APIToken,
	}

	httpClient := tp.Client()
	httpClient.Timeout = connectionTimeout

	client, err := jira.NewClient(httpClient, cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create jira client: %v", err)
	}

	// Verify credentials up front so a bad token fails the whole batch
	// once instead of once per key.
	if _, resp, err := client.User.GetSelf(); err != nil {
		return nil, apiError("failed to connect to jira", resp, err)
	}

	logging.Info("connected to jira",
		"base_url", cfg.BaseURL,
		"api_email", cfg.APIEmail,
		"api_token", logging.MaskSensitive(cfg.APIToken))

	return &Client{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

// BaseURL returns the Jira instance's base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Issue retrieves a single issue by key and converts it to the internal
// model. Status defaults to "Unknown" when the field is absent.
func (c *Client) Issue(key string) (models.JiraIssue, error) {
	issue, resp, err := c.client.Issue.Get(key, nil)
	if err != nil {
		return models.JiraIssue{}, apiError(fmt.Sprintf("failed to fetch jira issue %s", key), resp, err)
	}

	result := models.JiraIssue{
		Key:    key,
		Status: "Unknown",
	}

	if issue.Fields == nil {
		return result, nil
	}

	result.Summary = issue.Fields.Summary
	result.Description = issue.Fields.Description
	result.Labels = issue.Fields.Labels
	if result.Labels == nil {
		result.Labels = []string{}
	}
	if issue.Fields.Status != nil && issue.Fields.Status.Name != "" {
		result.Status = issue.Fields.Status.Name
	}
	for _, subtask := range issue.Fields.Subtasks {
		result.SubtaskKeys = append(result.SubtaskKeys, subtask.Key)
	}

	return result, nil
}

// BrowseURL returns the browsable URL for an issue key.
func (c *Client) BrowseURL(key string) string {
	return c.baseURL + "/browse/" + key
}

// apiError builds an error that is safe to log: it carries the HTTP status
// or the error's type, never the response payload, which can contain
// credentials or sensitive fields.
func apiError(op string, resp *jira.Response, err error) error {
	if resp != nil {
		return fmt.Errorf("%s: HTTP %d", op, resp.StatusCode)
	}
	return fmt.Errorf("%s: %T", op, err)
}
