// Package azdo provides functionality for interacting with Azure DevOps:
// pull-request descriptions and the work items linked to them.
package azdo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/git"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/webapi"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtracking"

	"github.com/prtrace/prtrace/internal/config"
	"github.com/prtrace/prtrace/internal/logging"
	"github.com/prtrace/prtrace/pkg/models"
)

// Work-item field reference names used by the tracker.
const (
	fieldTitle              = "System.Title"
	fieldDescription        = "System.Description"
	fieldTags               = "System.Tags"
	fieldState              = "System.State"
	fieldAcceptanceCriteria = "Microsoft.VSTS.Common.AcceptanceCriteria"
)

// workItemRefLister is the slice of the git client LinkedWorkItems needs.
type workItemRefLister interface {
	GetPullRequestWorkItemRefs(ctx context.Context, args git.GetPullRequestWorkItemRefsArgs) (*[]webapi.ResourceRef, error)
}

// workItemGetter is the slice of the work-item client LinkedWorkItems needs.
type workItemGetter interface {
	GetWorkItem(ctx context.Context, args workitemtracking.GetWorkItemArgs) (*workitemtracking.WorkItem, error)
}

// Provider is a work-item provider bound to one Azure DevOps pull request.
type Provider struct {
	gitClient   workItemRefLister
	witClient   workItemGetter
	orgURL      string
	project     string
	repository  string
	prID        int
	description string
}

// NewProvider connects to Azure DevOps using configuration from environment
// variables and binds to the pull request identified by project, repository
// and number. The pull request's description is read once here.
func NewProvider(ctx context.Context, project, repository string, number int) (*Provider, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.AzureDevOps.OrganizationURL == "" || cfg.AzureDevOps.PAT == "" {
		return nil, fmt.Errorf("azure devops organization url or token not found in configuration")
	}

	orgURL := strings.TrimRight(cfg.AzureDevOps.OrganizationURL, "/")
	connection := azuredevops.NewPatConnection(orgURL, cfg.AzureDevOps.PAT)

	gitClient, err := git.NewClient(ctx, connection)
	if err != nil {
		return nil, fmt.Errorf("failed to create azure devops git client: %v", err)
	}

	witClient, err := workitemtracking.NewClient(ctx, connection)
	if err != nil {
		return nil, fmt.Errorf("failed to create azure devops work item client: %v", err)
	}

	pr, err := gitClient.GetPullRequest(ctx, git.GetPullRequestArgs{
		RepositoryId:  &repository,
		PullRequestId: &number,
		Project:       &project,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pull request %s/%s!%d: %v", project, repository, number, err)
	}

	description := ""
	if pr.Description != nil {
		description = *pr.Description
	}

	logging.Info("azure devops pull request loaded",
		"project", project,
		"repository", repository,
		"pull_request", number)

	return &Provider{
		gitClient:   gitClient,
		witClient:   witClient,
		orgURL:      orgURL,
		project:     project,
		repository:  repository,
		prID:        number,
		description: description,
	}, nil
}

// UserDescription returns the pull request's description text.
func (p *Provider) UserDescription() string {
	return p.description
}

// URL returns the browsable URL of the pull request.
func (p *Provider) URL() string {
	return fmt.Sprintf("%s/%s/_git/%s/pullrequest/%d", p.orgURL, p.project, p.repository, p.prID)
}

// LinkedWorkItems returns the work items the tracker has linked to the pull
// request. A work item that cannot be resolved is logged and skipped; only a
// failure listing the links themselves is returned as an error.
func (p *Provider) LinkedWorkItems(ctx context.Context) ([]models.WorkItem, error) {
	refs, err := p.gitClient.GetPullRequestWorkItemRefs(ctx, git.GetPullRequestWorkItemRefsArgs{
		RepositoryId:  &p.repository,
		PullRequestId: &p.prID,
		Project:       &p.project,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list linked work items: %v", err)
	}
	if refs == nil {
		return nil, nil
	}

	var items []models.WorkItem
	for _, ref := range *refs {
		if ref.Id == nil {
			continue
		}

		id, err := strconv.Atoi(*ref.Id)
		if err != nil {
			logging.Warn("skipping work item with non-numeric id", "id", *ref.Id)
			continue
		}

		expand := workitemtracking.WorkItemExpandValues.Fields
		workItem, err := p.witClient.GetWorkItem(ctx, workitemtracking.GetWorkItemArgs{
			Id:     &id,
			Expand: &expand,
		})
		if err != nil {
			logging.Warn("failed to fetch work item", "id", id, "error", err)
			continue
		}

		items = append(items, p.convertWorkItem(id, workItem))
	}

	return items, nil
}

// convertWorkItem maps a tracker work item into the internal model.
func (p *Provider) convertWorkItem(id int, workItem *workitemtracking.WorkItem) models.WorkItem {
	item := models.WorkItem{
		ID:  strconv.Itoa(id),
		URL: fmt.Sprintf("%s/%s/_workitems/edit/%d", p.orgURL, p.project, id),
	}

	if workItem.Fields == nil {
		return item
	}
	fields := *workItem.Fields

	item.Title = stringField(fields, fieldTitle)
	item.Body = stringField(fields, fieldDescription)
	item.AcceptanceCriteria = stringField(fields, fieldAcceptanceCriteria)
	item.Status = stringField(fields, fieldState)

	// Tags arrive as one semicolon-separated string.
	if tags := stringField(fields, fieldTags); tags != "" {
		for _, tag := range strings.Split(tags, ";") {
			if tag = strings.TrimSpace(tag); tag != "" {
				item.Labels = append(item.Labels, tag)
			}
		}
	}

	return item
}

// stringField reads a string-valued field from a work item's field map.
func stringField(fields map[string]interface{}, name string) string {
	if value, ok := fields[name].(string); ok {
		return value
	}
	return ""
}
