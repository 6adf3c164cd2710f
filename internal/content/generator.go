// Package content drafts social media posts about code changes using the
// Gemini API.
package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/mherzog4/twitter-linkedin-poster/internal/core"
)

// Output token budgets per platform. These bound the generation call; the
// character limits in the prompts are advisory only.
const (
	maxTokensLongForm  int32 = 500
	maxTokensShortForm int32 = 200
)

// Generator drafts one post per call, one method per (event, platform)
// pair. The insight bundle is optional; passing nil (or an empty bundle)
// produces an insight-less prompt.
type Generator interface {
	LinkedInPostForPullRequest(ctx context.Context, pr core.PullRequest, insights *core.InsightBundle) (string, error)
	TweetForPullRequest(ctx context.Context, pr core.PullRequest, insights *core.InsightBundle) (string, error)
	LinkedInPostForCommit(ctx context.Context, commit core.Commit) (string, error)
	TweetForCommit(ctx context.Context, commit core.Commit) (string, error)
}

// GeminiGenerator implements Generator on top of the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewGeminiGenerator creates a generator that talks to the Gemini API with
// the given key and model name. Call Close when done.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, logger *slog.Logger) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model, logger: logger}, nil
}

// Close releases the underlying API client.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// LinkedInPostForPullRequest drafts a long-form post about a merged pull request.
func (g *GeminiGenerator) LinkedInPostForPullRequest(ctx context.Context, pr core.PullRequest, insights *core.InsightBundle) (string, error) {
	return g.generate(ctx, linkedInPullRequestPrompt(pr, insights), maxTokensLongForm)
}

// TweetForPullRequest drafts a short-form post about a merged pull request.
func (g *GeminiGenerator) TweetForPullRequest(ctx context.Context, pr core.PullRequest, insights *core.InsightBundle) (string, error) {
	return g.generate(ctx, tweetPullRequestPrompt(pr, insights), maxTokensShortForm)
}

// LinkedInPostForCommit drafts a long-form post about a recent commit.
func (g *GeminiGenerator) LinkedInPostForCommit(ctx context.Context, commit core.Commit) (string, error) {
	return g.generate(ctx, linkedInCommitPrompt(commit), maxTokensLongForm)
}

// TweetForCommit drafts a short-form post about a recent commit.
func (g *GeminiGenerator) TweetForCommit(ctx context.Context, commit core.Commit) (string, error) {
	return g.generate(ctx, tweetCommitPrompt(commit), maxTokensShortForm)
}

// generate issues one generation request and returns the first text segment
// of the first candidate, whitespace-trimmed. Errors from the API propagate
// untouched so the caller decides how fatal they are.
func (g *GeminiGenerator) generate(ctx context.Context, prompt string, maxTokens int32) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetMaxOutputTokens(maxTokens)

	g.logger.Debug("requesting generation", "model", g.model, "max_tokens", maxTokens, "prompt_len", len(prompt))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned an empty response")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("gemini returned a non-text part (%T)", resp.Candidates[0].Content.Parts[0])
	}

	return strings.TrimSpace(string(text)), nil
}
