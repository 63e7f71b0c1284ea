package tickets

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/prtrace/prtrace/internal/config"
	"github.com/prtrace/prtrace/internal/logging"
	"github.com/prtrace/prtrace/pkg/models"
)

// ExtractTickets reads the pull request's description once, fans out to the
// ticket sources the provider supports, and returns the merged list.
//
// The primary source is chosen by provider capability: repository issues for
// an IssueRefProvider, linked work items for a WorkItemProvider. The Jira
// fetch always runs against the same description, whatever the hosting
// provider, since Jira keys can appear in any description. Both fetches run
// as independent tasks and are joined; output order is fixed with primary
// tickets first, then Jira tickets. No deduplication happens across sources.
//
// ExtractTickets never fails: every source absorbs its own errors and a
// panic escaping one degrades to an empty result for that source.
func ExtractTickets(ctx context.Context, provider Provider, settings *config.Settings) []models.TicketRecord {
	description := provider.UserDescription()

	var primary, jiraTickets []models.TicketRecord
	var g errgroup.Group

	switch p := provider.(type) {
	case IssueRefProvider:
		g.Go(capture(&primary, func() []models.TicketRecord {
			return fetchRepoIssueTickets(ctx, p, description)
		}))
	case WorkItemProvider:
		g.Go(capture(&primary, func() []models.TicketRecord {
			return fetchWorkItemTickets(ctx, p)
		}))
	}

	g.Go(capture(&jiraTickets, func() []models.TicketRecord {
		return fetchJiraTickets(description, settings)
	}))

	g.Wait()

	return append(primary, jiraTickets...)
}

// capture runs fetch and stores its result, converting a panic into an
// empty result for that source.
func capture(dst *[]models.TicketRecord, fetch func() []models.TicketRecord) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				logging.Error("panic while fetching tickets", "panic", r)
			}
		}()
		*dst = fetch()
		return nil
	}
}
