package config

import (
	"errors"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("GEMINI_API_KEY", "gm_test")
	t.Setenv("GITHUB_USERNAME", "mherzog4")
}

func TestLoad(t *testing.T) {
	t.Run("all required keys present", func(t *testing.T) {
		viper.Reset()
		setRequiredEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "ghp_test", cfg.GitHubToken)
		assert.Equal(t, "gm_test", cfg.GeminiAPIKey)
		assert.Equal(t, "mherzog4", cfg.GitHubUsername)
	})

	t.Run("defaults are applied", func(t *testing.T) {
		viper.Reset()
		setRequiredEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
		assert.Equal(t, 5, cfg.PRScanLimit)
		assert.Equal(t, 3, cfg.CommitScanLimit)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		viper.Reset()
		setRequiredEnv(t)
		t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
		t.Setenv("PR_SCAN_LIMIT", "10")
		t.Setenv("LOG_FORMAT", "json")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
		assert.Equal(t, 10, cfg.PRScanLimit)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("single missing key is reported", func(t *testing.T) {
		viper.Reset()
		setRequiredEnv(t)
		t.Setenv("GEMINI_API_KEY", "")

		_, err := Load()
		require.Error(t, err)

		var missingErr *MissingKeysError
		require.True(t, errors.As(err, &missingErr))
		assert.Equal(t, []string{"GEMINI_API_KEY"}, missingErr.Keys)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY: your Gemini API key")
	})

	t.Run("all missing keys are reported together", func(t *testing.T) {
		viper.Reset()
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("GITHUB_USERNAME", "")

		_, err := Load()
		require.Error(t, err)

		var missingErr *MissingKeysError
		require.True(t, errors.As(err, &missingErr))
		assert.Len(t, missingErr.Keys, 3)
		assert.Contains(t, err.Error(), "GITHUB_TOKEN: your GitHub personal access token")
		assert.Contains(t, err.Error(), "GEMINI_API_KEY: your Gemini API key")
		assert.Contains(t, err.Error(), "GITHUB_USERNAME: your GitHub username")
	})

	t.Run("verbose forces debug level", func(t *testing.T) {
		viper.Reset()
		setRequiredEnv(t)
		t.Setenv("LOG_LEVEL", "warn")
		t.Setenv("VERBOSE", "true")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("non-positive scan limits are rejected", func(t *testing.T) {
		viper.Reset()
		setRequiredEnv(t)
		t.Setenv("PR_SCAN_LIMIT", "0")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PR_SCAN_LIMIT")
	})
}
