package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fatih/color"

	"github.com/mherzog4/twitter-linkedin-poster/internal/config"
	"github.com/mherzog4/twitter-linkedin-poster/internal/content"
	"github.com/mherzog4/twitter-linkedin-poster/internal/github"
	"github.com/mherzog4/twitter-linkedin-poster/internal/logger"
	"github.com/mherzog4/twitter-linkedin-poster/internal/poster"
)

// app bundles the wired-up components one command invocation needs.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	svc    *poster.Service
}

// newApp loads the configuration and wires the GitHub client, the Gemini
// generator and the orchestrator. Configuration problems surface here,
// before any network call is made. The returned cleanup must be deferred.
func newApp(ctx context.Context) (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, nil)
	slog.SetDefault(log)

	gh := github.NewPATClient(ctx, cfg.GitHubToken, log)

	gen, err := content.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create content generator: %w", err)
	}

	svc := poster.NewService(cfg, gh, gen, color.Output, log)

	cleanup := func() {
		if err := gen.Close(); err != nil {
			log.Warn("failed to close content generator", "error", err)
		}
	}

	return &app{cfg: cfg, logger: log, svc: svc}, cleanup, nil
}
