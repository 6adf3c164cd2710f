package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scan GitHub for your latest change and draft posts about it",
	Long: `Scans all of your public repositories for the most recently merged
pull request, falling back to your most recent commit, and drafts a LinkedIn
post and a tweet about it with Gemini.

Examples:
  poster run
  poster run --github-username someone-else`,
	RunE: runRun,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(runCmd)
}

func runRun(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	appInstance, cleanup, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	titleColor.Println("🚀 Poster - GitHub activity to social posts")
	fmt.Printf("Fetching repositories for %s...\n", appInstance.cfg.GitHubUsername)

	report, err := appInstance.svc.Run(ctx)
	if err != nil {
		return err
	}
	if report == nil {
		warnColor.Println("No recent merged PRs or commits found. Nothing to report.")
		return nil
	}

	printReport(report)
	return nil
}
