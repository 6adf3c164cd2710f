package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	githubToken    string
	githubUsername string
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "poster",
	Short: "poster drafts social media posts about your latest GitHub activity.",
	Long: `poster scans your public GitHub repositories for the most recently
merged pull request (or, failing that, your most recent commit), mines any
CodeRabbit review comments for insights, and drafts a LinkedIn post and a
tweet about the change.`,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&githubToken, "github-token", "t", "", "GitHub personal access token")
	rootCmd.PersistentFlags().StringVarP(&githubUsername, "github-username", "u", "", "GitHub username to scan")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := viper.BindPFlag("GITHUB_TOKEN", rootCmd.PersistentFlags().Lookup("github-token")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("GITHUB_USERNAME", rootCmd.PersistentFlags().Lookup("github-username")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("VERBOSE", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
}

// initConfig reads in ENV variables if set.
func initConfig() {
	viper.AutomaticEnv()
}
