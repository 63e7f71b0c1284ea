package tickets

import (
	"strings"

	"github.com/prtrace/prtrace/internal/config"
	"github.com/prtrace/prtrace/internal/extract"
	"github.com/prtrace/prtrace/internal/jira"
	"github.com/prtrace/prtrace/internal/logging"
	"github.com/prtrace/prtrace/pkg/models"
)

// enableJiraIntegrationKey gates the whole Jira fetch path; enabled unless
// explicitly turned off.
const enableJiraIntegrationKey = "jira.enable_jira_integration"

// jiraIssueFetcher is the slice of the Jira client the fetch path needs.
type jiraIssueFetcher interface {
	Issue(key string) (models.JiraIssue, error)
	BrowseURL(key string) string
}

// newJiraClient connects to Jira; swapped out in tests.
var newJiraClient = func(cfg config.JiraConfig) (jiraIssueFetcher, error) {
	return jira.NewClient(cfg)
}

// fetchJiraTickets extracts Jira keys from the description and fetches each
// one over a single client connection. The fetch is gated on keys being
// present, the integration flag, and complete credentials; an unmet gate is
// a logged skip, not an error. A connection failure empties the whole batch;
// a per-key failure skips that key only.
func fetchJiraTickets(description string, settings *config.Settings) []models.TicketRecord {
	keys := extract.JiraKeys(description)
	if len(keys) == 0 {
		return nil
	}

	if !settings.GetBool(enableJiraIntegrationKey, true) {
		logging.Info("jira integration disabled, skipping jira ticket fetch")
		return nil
	}

	cfg := settings.JiraSettings()
	if missing := config.ValidateJiraConfig(cfg); len(missing) > 0 {
		logging.Warn("jira configuration incomplete, skipping jira ticket fetch",
			"missing", strings.Join(missing, ", "))
		return nil
	}

	client, err := newJiraClient(cfg)
	if err != nil {
		// err carries status or error category only; see jira.apiError.
		logging.Error("failed to connect to jira", "error", err)
		return nil
	}

	var records []models.TicketRecord
	for _, key := range keys {
		if record, ok := fetchSingleJiraTicket(client, key); ok {
			records = append(records, record)
		}
	}

	return records
}

// fetchSingleJiraTicket builds the ticket record for one Jira key,
// including its subtasks.
func fetchSingleJiraTicket(client jiraIssueFetcher, key string) (models.TicketRecord, bool) {
	issue, err := client.Issue(key)
	if err != nil {
		logging.Error("failed to fetch jira ticket", "key", key, "error", err)
		return models.TicketRecord{}, false
	}

	record := models.TicketRecord{
		TicketID:  key,
		TicketURL: client.BrowseURL(key),
		Title:     issue.Summary,
		Body:      truncateText(issue.Description),
		Status:    issue.Status,
		Labels:    strings.Join(issue.Labels, ", "),
		SubIssues: fetchJiraSubtasks(client, issue.SubtaskKeys),
	}

	logging.Info("fetched jira ticket", "key", key)
	return record, true
}

// fetchJiraSubtasks loads the subtasks declared by a parent issue. A subtask
// that cannot be fetched is logged and omitted, never aborting the parent.
func fetchJiraSubtasks(client jiraIssueFetcher, keys []string) []models.SubTicket {
	subs := []models.SubTicket{}
	for _, key := range keys {
		sub, err := client.Issue(key)
		if err != nil {
			logging.Warn("failed to fetch jira subtask", "key", key, "error", err)
			continue
		}

		subs = append(subs, models.SubTicket{
			TicketURL: client.BrowseURL(key),
			Title:     sub.Summary,
			Body:      truncateText(sub.Description),
		})
	}
	return subs
}
