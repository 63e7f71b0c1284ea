package tickets

import (
	"context"
	"fmt"
	"strings"

	"github.com/prtrace/prtrace/internal/extract"
	"github.com/prtrace/prtrace/internal/logging"
	"github.com/prtrace/prtrace/pkg/models"
)

// fetchRepoIssueTickets resolves the repository-issue references found in
// the description and builds a ticket record for each one it can fetch.
// A reference that cannot be resolved or fetched is logged and skipped;
// the remaining references are still processed.
func fetchRepoIssueTickets(ctx context.Context, provider IssueRefProvider, description string) []models.TicketRecord {
	refs := extract.IssueReferences(description, provider.Repo(), provider.BaseURLHTML())
	if len(refs) == 0 {
		return nil
	}

	var records []models.TicketRecord
	for _, ref := range refs {
		repository, number, err := provider.ParseIssueURL(ref)
		if err != nil {
			logging.Error("failed to parse issue reference", "url", ref, "error", err)
			continue
		}

		issue, err := provider.Issue(ctx, repository, number)
		if err != nil {
			logging.Error("failed to fetch issue", "url", ref, "error", err)
			continue
		}

		records = append(records, models.TicketRecord{
			TicketID:  fmt.Sprintf("GH-%d", issue.Number),
			TicketURL: ref,
			Title:     issue.Title,
			Body:      truncateText(issue.Body),
			Labels:    strings.Join(issue.Labels, ", "),
			SubIssues: fetchSubIssues(ctx, provider, ref),
		})
	}

	return records
}

// fetchSubIssues loads the sub-issues declared by the issue at parentURL.
// Failures, whether listing the sub-issues or fetching one of them, never
// abort the parent ticket; the affected sub-issue is simply omitted.
func fetchSubIssues(ctx context.Context, provider IssueRefProvider, parentURL string) []models.SubTicket {
	subs := []models.SubTicket{}

	urls, err := provider.SubIssueURLs(ctx, parentURL)
	if err != nil {
		logging.Warn("failed to list sub-issues", "url", parentURL, "error", err)
		return subs
	}
	for _, subURL := range urls {
		repository, number, err := provider.ParseIssueURL(subURL)
		if err != nil {
			logging.Warn("failed to parse sub-issue url", "url", subURL, "error", err)
			continue
		}

		sub, err := provider.Issue(ctx, repository, number)
		if err != nil {
			logging.Warn("failed to fetch sub-issue", "url", subURL, "error", err)
			continue
		}

		subs = append(subs, models.SubTicket{
			TicketURL: subURL,
			Title:     sub.Title,
			Body:      truncateText(sub.Body),
		})
	}

	return subs
}
