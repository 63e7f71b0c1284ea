// Package cmd provides the command-line interface for the prtrace tool.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prtrace",
	Short: "prtrace extracts related work-item tickets from pull requests",
	Long: `prtrace scans a pull request's description for references to external
work items (repository issues, Jira tickets, linked work items), fetches each
referenced item's metadata from its owning system, and prints the normalized
result. Results are cached per pull request for the lifetime of a run.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Flags shared by every analysis command
	rootCmd.PersistentFlags().StringP("repository", "r", "", "repository name (e.g., 'owner/repo')")
	rootCmd.PersistentFlags().IntP("number", "n", 0, "pull request number")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(azureCmd)
}
