// Package models defines data structures shared across the application.
package models

// TicketRecord is the normalized representation of one external work item,
// regardless of which ticket system it came from.
type TicketRecord struct {
	// TicketID identifies the ticket: "GH-<number>" for repository issues,
	// the bare key (e.g. "ABC-123") for Jira, the provider-supplied id for
	// work items.
	TicketID string `json:"ticket_id"`

	// TicketURL is the browsable URL of the ticket
	TicketURL string `json:"ticket_url"`

	// Title is the ticket's title or summary
	Title string `json:"title"`

	// Body is the ticket's description, truncated to the character budget
	Body string `json:"body"`

	// Labels is a comma-joined list of label names
	Labels string `json:"labels"`

	// Status is the workflow state; set for Jira and work-item records
	Status string `json:"status,omitempty"`

	// SubIssues holds child tickets declared by this ticket; empty, never
	// absent, so consumers can index the key unconditionally
	SubIssues []SubTicket `json:"sub_issues"`

	// Requirements carries acceptance criteria for work-item records
	Requirements string `json:"requirements,omitempty"`
}

// SubTicket is a child work item referenced by a parent ticket.
type SubTicket struct {
	TicketURL string `json:"ticket_url"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}

// RepoIssue represents a repository-hosted issue with its essential fields.
type RepoIssue struct {
	// Number is the issue number in the repository (e.g., 42)
	Number int

	// Title is the issue's title or summary
	Title string

	// Body is the full body text of the issue
	Body string

	// Labels is a slice of label names attached to the issue
	Labels []string
}

// JiraIssue represents a Jira issue with the fields consumed by the
// ticket fetch path.
type JiraIssue struct {
	// Key is the full Jira issue identifier (e.g., "ABC-123")
	Key string

	// Summary is the issue's summary field
	Summary string

	// Description is the full body text of the issue
	Description string

	// Labels is a slice of label names attached to the issue
	Labels []string

	// Status is the name of the issue's workflow status
	Status string

	// SubtaskKeys lists the keys of the issue's declared subtasks
	SubtaskKeys []string
}

// WorkItem represents a work-item-tracker item linked to a pull request.
type WorkItem struct {
	// ID is the provider-supplied item identifier
	ID string

	// URL is the browsable URL of the item
	URL string

	// Title is the item's title
	Title string

	// Body is the item's description
	Body string

	// AcceptanceCriteria is the item's acceptance-criteria field, if any
	AcceptanceCriteria string

	// Status is the item's workflow state
	Status string

	// Labels is a slice of tag names attached to the item
	Labels []string
}
