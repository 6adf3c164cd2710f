package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find your latest merged pull request or commit without drafting posts",
	Long: `Runs the same selection pass as "run" but stops after printing what
it found, without calling the generation API. Useful for checking what a full
run would post about.`,
	RunE: runScan,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	appInstance, cleanup, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Printf("Fetching repositories for %s...\n", appInstance.cfg.GitHubUsername)

	sel, err := appInstance.svc.Scan(ctx)
	if err != nil {
		return err
	}
	if sel == nil {
		warnColor.Println("No recent merged PRs or commits found.")
		return nil
	}

	printSelection(*sel)
	return nil
}
