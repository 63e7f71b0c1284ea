// Package tickets extracts references to external work items from
// pull-request descriptions, fetches their metadata from the owning ticket
// systems, and aggregates the results into a normalized, cached list.
//
// All failures are absorbed here: callers never receive an error, only a
// possibly shorter ticket list. See ExtractAndCachePRTickets.
package tickets

import (
	"context"

	"github.com/prtrace/prtrace/pkg/models"
)

// Provider is the minimal hosting-provider contract: a pull request with a
// description and a stable URL. Concrete providers additionally implement
// one of the capability interfaces below; the orchestrator resolves the
// capability once per call.
type Provider interface {
	// UserDescription returns the pull request's description text.
	UserDescription() string

	// URL returns the browsable URL of the pull request, used as the
	// cache identity.
	URL() string
}

// IssueRefProvider is a provider whose tickets are repository issues
// referenced from the description text.
type IssueRefProvider interface {
	Provider

	// Repo returns the repository path ("owner/repo") hosting the pull
	// request, used to qualify bare #number references.
	Repo() string

	// BaseURLHTML returns the base URL for browsable links on this host.
	BaseURLHTML() string

	// ParseIssueURL resolves an issue URL to its repository path and
	// issue number.
	ParseIssueURL(rawURL string) (repository string, number int, err error)

	// Issue retrieves a single issue.
	Issue(ctx context.Context, repository string, number int) (models.RepoIssue, error)

	// SubIssueURLs returns the URLs of the sub-issues declared by the
	// issue at issueURL.
	SubIssueURLs(ctx context.Context, issueURL string) ([]string, error)
}

// WorkItemProvider is a provider that already knows which work items are
// linked to the pull request; no text extraction is needed for this source.
type WorkItemProvider interface {
	Provider

	// LinkedWorkItems returns the work items linked to the pull request.
	LinkedWorkItems(ctx context.Context) ([]models.WorkItem, error)
}
