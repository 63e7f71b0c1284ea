package tickets

import (
	"context"
	"strings"

	"github.com/prtrace/prtrace/internal/logging"
	"github.com/prtrace/prtrace/pkg/models"
)

// fetchWorkItemTickets maps the work items the provider has linked to the
// pull request into ticket records. A failure listing the links empties this
// source only.
func fetchWorkItemTickets(ctx context.Context, provider WorkItemProvider) []models.TicketRecord {
	items, err := provider.LinkedWorkItems(ctx)
	if err != nil {
		logging.Error("failed to list linked work items", "error", err)
		return nil
	}

	var records []models.TicketRecord
	for _, item := range items {
		records = append(records, models.TicketRecord{
			TicketID:     item.ID,
			TicketURL:    item.URL,
			Title:        item.Title,
			Body:         truncateText(item.Body),
			Requirements: item.AcceptanceCriteria,
			Status:       item.Status,
			Labels:       strings.Join(item.Labels, ", "),
			SubIssues:    []models.SubTicket{},
		})
	}

	return records
}
