package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prtrace/prtrace/internal/config"
	"github.com/prtrace/prtrace/internal/github"
	"github.com/prtrace/prtrace/internal/logging"
	"github.com/prtrace/prtrace/internal/tickets"
)

// analyzeCmd extracts related tickets for a GitHub pull request.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract related tickets for a GitHub pull request",
	Long: `Scan a GitHub pull request's description for issue references
(full issue URLs, owner/repo#number shorthand, bare #number) and Jira keys,
fetch the referenced items, and print the normalized ticket list as JSON.

Jira fetching requires JIRA_BASE_URL, JIRA_API_EMAIL and JIRA_API_TOKEN;
when they are absent the Jira source is skipped, not failed.

Example:
  prtrace analyze -r owner/repo -n 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repository, err := cmd.Flags().GetString("repository")
		if err != nil {
			return err
		}
		number, err := cmd.Flags().GetInt("number")
		if err != nil {
			return err
		}

		if repository == "" {
			return fmt.Errorf("repository flag is required")
		}
		if number <= 0 {
			return fmt.Errorf("a positive pull request number is required")
		}

		ctx := cmd.Context()

		client, err := github.NewClient()
		if err != nil {
			return fmt.Errorf("failed to initialize github client: %v", err)
		}

		provider, err := client.PullRequest(ctx, repository, number)
		if err != nil {
			return fmt.Errorf("failed to load pull request: %v", err)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}

		settings := config.NewSettings(cfg)
		settings.Set("pr_reviewer.require_ticket_analysis_review", true)

		logging.Info("analyzing pull request",
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
