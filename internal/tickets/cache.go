package tickets

import (
	"context"

	"github.com/prtrace/prtrace/internal/config"
	"github.com/prtrace/prtrace/internal/logging"
	"github.com/prtrace/prtrace/pkg/models"
)

const (
	// RelatedTicketsVar is the vars key holding the final ticket list.
	RelatedTicketsVar = "related_tickets"

	// requireTicketAnalysisKey gates the whole extraction; when false the
	// output is an empty list and nothing is fetched.
	requireTicketAnalysisKey = "pr_reviewer.require_ticket_analysis_review"

	cacheKeyPrefix = "related_tickets_"
)

// ExtractAndCachePRTickets populates vars[RelatedTicketsVar] with the ticket
// list for the provider's pull request, consulting the settings store as a
// per-PR cache so repeated calls within one run do not re-fetch.
//
// A cache entry's presence alone makes it a hit; empty results are cached
// too. The output field is always set, to an empty list in the worst case,
// and no error ever reaches the caller.
func ExtractAndCachePRTickets(ctx context.Context, provider Provider, settings *config.Settings, vars map[string]any) {
	if !settings.GetBool(requireTicketAnalysisKey, false) {
		vars[RelatedTicketsVar] = []models.TicketRecord{}
		return
	}

	cacheKey := cacheKeyPrefix + provider.URL()
	if cached, ok := settings.Get(cacheKey).([]models.TicketRecord); ok {
		logging.Info("using cached tickets", "pr_url", provider.URL(), logging.Artifact(cached))
		vars[RelatedTicketsVar] = cached
		return
	}

	records := ExtractTickets(ctx, provider, settings)
	if records == nil {
		records = []models.TicketRecord{}
	}

	vars[RelatedTicketsVar] = records
	settings.Set(cacheKey, records)

	if len(records) > 0 {
		logging.Info("extracted and cached tickets from pr description",
			"pr_url", provider.URL(),
			"count", len(records),
			logging.Artifact(records))
	} else {
		logging.Info("no relevant tickets found", "pr_url", provider.URL())
	}
}
