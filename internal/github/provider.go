package github

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/prtrace/prtrace/pkg/models"
)

// PullRequest is a hosting provider bound to one GitHub pull request. It
// satisfies the issue-reference provider contract consumed by the ticket
// extraction core.
type PullRequest struct {
	client      *Client
	repository  string
	description string
	htmlURL     string
}

// UserDescription returns the pull request's description text.
func (p *PullRequest) UserDescription() string {
	return p.description
}

// URL returns the browsable URL of the pull request.
func (p *PullRequest) URL() string {
	return p.htmlURL
}

// Repo returns the repository path ("owner/repo") hosting the pull request.
func (p *PullRequest) Repo() string {
	return p.repository
}

// BaseURLHTML returns the base URL for browsable links on this host.
func (p *PullRequest) BaseURLHTML() string {
	return p.client.baseHTML
}

// ParseIssueURL resolves an issue URL to its repository path and number.
func (p *PullRequest) ParseIssueURL(rawURL string) (string, int, error) {
	return p.client.ParseIssueURL(rawURL)
}

// Issue retrieves a single issue from the given repository.
func (p *PullRequest) Issue(ctx context.Context, repository string, number int) (models.RepoIssue, error) {
	return p.client.Issue(ctx, repository, number)
}

// taskItemPattern matches markdown task-list items, the convention GitHub
// renders as tracked (sub-)issues.
var taskItemPattern = regexp.MustCompile(`(?m)^\s*[-*]\s+\[[ xX]\]\s+(.+)$`)

// taskIssueRefPattern matches issue references inside a task-list item,
// either fully qualified or as a bare #number.
var taskIssueRefPattern = regexp.MustCompile(`(https://[^\s/]+/[^\s/]+/[^\s/]+/issues/\d+)|#(\d+)`)

// SubIssueURLs returns the URLs of the sub-issues declared by the issue at
// issueURL. Sub-issues are read from the task-list items of the parent
// issue's body; bare #number items resolve against the parent's repository.
func (p *PullRequest) SubIssueURLs(ctx context.Context, issueURL string) ([]string, error) {
	repository, number, err := p.client.ParseIssueURL(issueURL)
	if err != nil {
		return nil, err
	}

	parent, err := p.client.Issue(ctx, repository, number)
	if err != nil {
		return nil, err
	}

	return subIssueURLsFromBody(parent.Body, repository, p.client.baseHTML), nil
}

// subIssueURLsFromBody scans an issue body's task-list items for issue
// references and returns their URLs, deduplicated in order of appearance.
func subIssueURLsFromBody(body, repository, baseHTML string) []string {
	var urls []string
	seen := make(map[string]struct{})

	for _, item := range taskItemPattern.FindAllStringSubmatch(body, -1) {
		for _, ref := range taskIssueRefPattern.FindAllStringSubmatch(item[1], -1) {
			var subURL string
			if ref[1] != "" {
				subURL = ref[1]
			} else {
				subURL = fmt.Sprintf("%s/%s/issues/%s",
					strings.TrimRight(baseHTML, "/"), repository, ref[2])
			}
			if _, ok := seen[subURL]; ok {
				continue
			}
			seen[subURL] = struct{}{}
			urls = append(urls, subURL)
		}
	}

	return urls
}
