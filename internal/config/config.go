// Package config loads the application's configuration from environment
// variables and an optional .env file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything one run of the poster needs.
type Config struct {
	GitHubToken    string
	GitHubUsername string
	GeminiAPIKey   string
	GeminiModel    string

	// Per-repository scan limits. PRScanLimit is the number of merged pull
	// requests requested per repository; CommitScanLimit the number of
	// commits requested during the fallback scan.
	PRScanLimit     int
	CommitScanLimit int

	LogLevel  string
	LogFormat string
}

// requiredKeys are the configuration values without which no network call is
// attempted. The descriptions are shown to the user when a key is missing.
var requiredKeys = []struct {
	Key         string
	Description string
}{
	{"GITHUB_TOKEN", "your GitHub personal access token"},
	{"GEMINI_API_KEY", "your Gemini API key"},
	{"GITHUB_USERNAME", "your GitHub username"},
}

// MissingKeysError reports every required configuration key that was not
// set, so the user can fix all of them in one pass.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	lines := make([]string, 0, len(e.Keys)+1)
	lines = append(lines, "missing required configuration:")
	for _, key := range e.Keys {
		for _, req := range requiredKeys {
			if req.Key == key {
				lines = append(lines, fmt.Sprintf("- %s: %s", req.Key, req.Description))
			}
		}
	}
	return strings.Join(lines, "\n")
}

// Load reads configuration from environment variables and an optional .env
// file in the working directory, sets defaults, and validates that all
// required keys are present. Environment variables take precedence over the
// .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("VERBOSE", false)
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("PR_SCAN_LIMIT", 5)
	viper.SetDefault("COMMIT_SCAN_LIMIT", 3)

	viper.AutomaticEnv()

	// The .env file is a convenience for local runs; a missing file is not
	// an error.
	_ = viper.ReadInConfig()

	var missing []string
	for _, req := range requiredKeys {
		if viper.GetString(req.Key) == "" {
			missing = append(missing, req.Key)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingKeysError{Keys: missing}
	}

	cfg := &Config{
		GitHubToken:     viper.GetString("GITHUB_TOKEN"),
		GitHubUsername:  viper.GetString("GITHUB_USERNAME"),
		GeminiAPIKey:    viper.GetString("GEMINI_API_KEY"),
		GeminiModel:     viper.GetString("GEMINI_MODEL"),
		PRScanLimit:     viper.GetInt("PR_SCAN_LIMIT"),
		CommitScanLimit: viper.GetInt("COMMIT_SCAN_LIMIT"),
		LogLevel:        viper.GetString("LOG_LEVEL"),
		LogFormat:       viper.GetString("LOG_FORMAT"),
	}

	// --verbose (or VERBOSE=true) overrides whatever level was configured.
	if viper.GetBool("VERBOSE") {
		cfg.LogLevel = "debug"
	}

	if cfg.PRScanLimit <= 0 {
		return nil, fmt.Errorf("PR_SCAN_LIMIT must be positive, got %d", cfg.PRScanLimit)
	}
	if cfg.CommitScanLimit <= 0 {
		return nil, fmt.Errorf("COMMIT_SCAN_LIMIT must be positive, got %d", cfg.CommitScanLimit)
	}

	return cfg, nil
}
