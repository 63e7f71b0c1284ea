package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prtrace/prtrace/internal/azdo"
	"github.com/prtrace/prtrace/internal/config"
	"github.com/prtrace/prtrace/internal/logging"
	"github.com/prtrace/prtrace/internal/tickets"
)

// azureCmd extracts related tickets for an Azure DevOps pull request.
var azureCmd = &cobra.Command{
	Use:   "azure",
	Short: "Extract related tickets for an Azure DevOps pull request",
	Long: `Fetch the work items the tracker has linked to an Azure DevOps pull
request, plus any Jira tickets referenced in its description, and print the
normalized ticket list as JSON.

Requires AZDO_ORG_URL and AZDO_PAT.

Example:
  prtrace azure --project MyProject -r my-repo -n 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repository, err := cmd.Flags().GetString("repository")
		if err != nil {
			return err
		}
		number, err := cmd.Flags().GetInt("number")
		if err != nil {
			return err
		}
		project, err := cmd.Flags().GetString("project")
		if err != nil {
			return err
		}

		if project == "" {
			return fmt.Errorf("project flag is required")
		}
		if repository == "" {
			return fmt.Errorf("repository flag is required")
		}
		if number <= 0 {
			return fmt.Errorf("a positive pull request number is required")
		}

		ctx := cmd.Context()

		provider, err := azdo.NewProvider(ctx, project, repository, number)
		if err != nil {
			return fmt.Errorf("failed to initialize azure devops provider: %v", err)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}

		settings := config.NewSettings(cfg)
		settings.Set("pr_reviewer.require_ticket_analysis_review", true)

		logging.Info("analyzing pull request",
			"project", project,
			"repository", repository,
			"pull_request", number)

		vars := map[string]any{}
		tickets.ExtractAndCachePRTickets(ctx, provider, settings, vars)

		out, err := json.MarshalIndent(vars[tickets.RelatedTicketsVar], "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode tickets: %v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		return nil
	},
}

func init() {
	azureCmd.Flags().String("project", "", "Azure DevOps project name")
}
