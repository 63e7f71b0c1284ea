// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-github/v41/github"
	"golang.org/x/oauth2"

	"github.com/prtrace/prtrace/internal/config"
	"github.com/prtrace/prtrace/internal/logging"
	"github.com/prtrace/prtrace/pkg/models"
)

// Client encapsulates the GitHub API client.
type Client struct {
	client   *github.Client
	baseHTML string
}

// NewClient creates a new GitHub API client using configuration from
// environment variables. It initializes the client with the appropriate base
// URL, authenticates with the GitHub API, and tests the connection. It
// returns the configured client or an error if initialization fails.
func NewClient() (*Client, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	token := cfg.GitHub.Token
	if token == "" {
		return nil, fmt.Errorf("github token not found in configuration")
	}

	// Get domain from config, default to github.com
	domain := cfg.GitHub.Domain
	if domain == "" {
		domain = "github.com"
	}

	// Construct API URL based on domain
	var apiURL string
	if domain == "github.com" {
		apiURL = "https://api.github.com/"
	} else {
		apiURL = fmt.Sprintf("https://%s/api/v3/", domain)
	}

	logging.Info("github configuration",
		"domain", domain,
		"api_url", apiURL,
		"token", logging.MaskSensitive(token))

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	client := github.NewClient(tc)

	// If not using default GitHub.com, set custom API endpoint
	if domain != "github.com" {
		parsedURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github api url: %w", err)
		}

		client.BaseURL = parsedURL
		client.UploadURL = parsedURL
	}

	// Test the token
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		logging.Error("failed to test github token", "error", err)
		return nil, fmt.Errorf("error testing github token: %w", err)
	}

	logging.Info("github authentication successful",
		"username", user.GetLogin())

	return &Client{
		client:   client,
		baseHTML: "https://" + domain,
	}, nil
}

// PullRequest loads the pull request identified by repository ("owner/repo")
// and number, and returns a provider bound to it. The description is read
// once here; later consumers see the same snapshot.
func (c *Client) PullRequest(ctx context.Context, repository string, number int) (*PullRequest, error) {
	owner, repo, err := splitRepository(repository)
	if err != nil {
		return nil, err
	}

	pr, _, err := c.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pull request %s#%d: %v", repository, number, err)
	}

	return &PullRequest{
		client:      c,
		repository:  repository,
		description: pr.GetBody(),
		htmlURL:     pr.GetHTMLURL(),
	}, nil
}

// Issue retrieves a single issue from the given repository ("owner/repo")
// and converts it to the internal model.
func (c *Client) Issue(ctx context.Context, repository string, number int) (models.RepoIssue, error) {
	owner, repo, err := splitRepository(repository)
	if err != nil {
		return models.RepoIssue{}, err
	}

	issue, _, err := c.client.Issues.Get(ctx, owner, repo, number)
	if err != nil {
		return models.RepoIssue{}, fmt.Errorf("failed to fetch issue %s#%d: %v", repository, number, err)
	}

	labelNames := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labelNames = append(labelNames, label.GetName())
	}

	return models.RepoIssue{
		Number: issue.GetNumber(),
		Title:  issue.GetTitle(),
		Body:   issue.GetBody(),
		Labels: labelNames,
	}, nil
}

// ParseIssueURL resolves a fully qualified issue URL to its repository path
// ("owner/repo") and issue number.
func (c *Client) ParseIssueURL(rawURL string) (string, int, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", 0, fmt.Errorf("invalid issue url %q: %v", rawURL, err)
	}

	// Expected path: /owner/repo/issues/number
	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) != 4 || parts[2] != "issues" {
		return "", 0, fmt.Errorf("not an issue url: %s", rawURL)
	}

	number, err := strconv.Atoi(parts[3])
	if err != nil {
		return "", 0, fmt.Errorf("invalid issue number in url %q: %v", rawURL, err)
	}

	return parts[0] + "/" + parts[1], number, nil
}

// splitRepository parses a repository path in "owner/repo" format.
func splitRepository(repository string) (string, string, error) {
	parts := strings.Split(repository, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid repository format: %s, expected format: owner/repo", repository)
	}
	return parts[0], parts[1], nil
}
