// Package poster orchestrates the scan, insight extraction and content
// generation pipeline for one run.
package poster

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mherzog4/twitter-linkedin-poster/internal/config"
	"github.com/mherzog4/twitter-linkedin-poster/internal/content"
	"github.com/mherzog4/twitter-linkedin-poster/internal/core"
	"github.com/mherzog4/twitter-linkedin-poster/internal/github"
	"github.com/mherzog4/twitter-linkedin-poster/internal/insights"
)

// Service drives the whole pipeline: find the most recent change, mine
// review insights for it, and draft the two posts. Scan progress is written
// to out as it happens; the structured log carries the same events for
// debugging.
type Service struct {
	cfg    *config.Config
	gh     github.Client
	gen    content.Generator
	out    io.Writer
	logger *slog.Logger
}

// NewService creates the orchestrator. A nil out writer defaults to stdout;
// all other dependencies are required.
func NewService(cfg *config.Config, gh github.Client, gen content.Generator, out io.Writer, logger *slog.Logger) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if gh == nil {
		panic("github client cannot be nil")
	}
	if gen == nil {
		panic("content generator cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if out == nil {
		out = os.Stdout
	}
	return &Service{cfg: cfg, gh: gh, gen: gen, out: out, logger: logger}
}

// Scan finds the single most recent merged pull request across all of the
// user's public repositories, falling back to the most recent authored
// commit when no repository has one. A nil selection with a nil error means
// there is nothing to report. Failing to list the repositories at all is
// fatal; a failure while scanning one repository only skips that repository.
func (s *Service) Scan(ctx context.Context) (*core.Selection, error) {
	username := s.cfg.GitHubUsername

	repos, err := s.gh.ListPublicRepos(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories for %s: %w", username, err)
	}
	s.logger.Info("listed public repositories", "user", username, "count", len(repos))
	fmt.Fprintf(s.out, "Found %d public repositories\n", len(repos))

	if sel := s.scanPullRequests(ctx, repos); sel != nil {
		return sel, nil
	}

	s.logger.Info("no merged pull requests found, falling back to recent commits")
	fmt.Fprintln(s.out, "\nNo recent merged PRs found. Looking for recent commits instead...")
	if sel := s.scanCommits(ctx, repos); sel != nil {
		return sel, nil
	}

	return nil, nil
}

// Run executes the full pipeline and returns the report, or (nil, nil) when
// there is nothing to post about. Generation failures are fatal; insight
// collection failures are not.
func (s *Service) Run(ctx context.Context) (*core.Report, error) {
	sel, err := s.Scan(ctx)
	if err != nil {
		return nil, err
	}
	if sel == nil {
		return nil, nil
	}

	if sel.PullRequest != nil {
		return s.reportForPullRequest(ctx, *sel.PullRequest)
	}
	return s.reportForCommit(ctx, *sel.Commit)
}

// scanPullRequests returns the most recently merged pull request across the
// given repositories, or nil when none was found. Replacement requires a
// strictly later merge timestamp, so equal timestamps keep the pull request
// discovered first.
func (s *Service) scanPullRequests(ctx context.Context, repos []core.Repository) *core.Selection {
	var best core.MostRecent[core.PullRequest]

	for _, repo := range repos {
		s.logger.Debug("checking repository for merged pull requests", "repo", repo.FullName())
		fmt.Fprintf(s.out, "Checking %s for recent PRs...\n", repo.Name)

		prs, err := s.gh.ListMergedPullRequests(ctx, repo.Owner, repo.Name, s.cfg.PRScanLimit)
		if err != nil {
			s.logger.Warn("skipping repository after pull request listing failure", "repo", repo.FullName(), "error", err)
			fmt.Fprintf(s.out, "  Error checking %s: %v\n", repo.Name, err)
			continue
		}
		if len(prs) == 0 {
			fmt.Fprintf(s.out, "  No merged PRs found in %s\n", repo.Name)
			continue
		}

		fmt.Fprintf(s.out, "  Found %d merged PR(s) in %s\n", len(prs), repo.Name)
		for i, pr := range prs {
			s.logger.Debug("found merged pull request", "repo", repo.FullName(), "pr", pr.Number, "merged_at", *pr.MergedAt)
			fmt.Fprintf(s.out, "    %d. '%s' merged on %s\n", i+1, pr.Title, pr.MergedAt.UTC().Format("2006-01-02"))
			best.Offer(pr, *pr.MergedAt)
		}
	}

	pr, mergedAt, ok := best.Best()
	if !ok {
		return nil
	}
	s.logger.Info("selected most recent merged pull request", "repo", pr.Repo.FullName(), "pr", pr.Number, "merged_at", mergedAt)
	return &core.Selection{PullRequest: &pr}
}

// scanCommits is the fallback pass: the most recent commit authored by the
// configured user across the given repositories, same tie policy as the
// pull request scan.
func (s *Service) scanCommits(ctx context.Context, repos []core.Repository) *core.Selection {
	var best core.MostRecent[core.Commit]

	for _, repo := range repos {
		commits, err := s.gh.ListAuthorCommits(ctx, repo.Owner, repo.Name, s.cfg.GitHubUsername, s.cfg.CommitScanLimit)
		if err != nil {
			s.logger.Warn("skipping repository after commit listing failure", "repo", repo.FullName(), "error", err)
			continue
		}
		for _, commit := range commits {
			best.Offer(commit, commit.AuthoredAt)
		}
	}

	commit, authoredAt, ok := best.Best()
	if !ok {
		return nil
	}
	s.logger.Info("selected most recent commit", "repo", commit.Repo.FullName(), "sha", commit.ShortSHA(), "authored_at", authoredAt)
	return &core.Selection{Commit: &commit}
}

func (s *Service) reportForPullRequest(ctx context.Context, pr core.PullRequest) (*core.Report, error) {
	// The listing response has no addition/deletion counts; the detail fetch
	// fills them in. Listing data is good enough when the fetch fails.
	if detailed, err := s.gh.GetPullRequest(ctx, pr.Repo.Owner, pr.Repo.Name, pr.Number); err != nil {
		s.logger.Warn("could not fetch pull request details, using listing data", "pr", pr.Number, "error", err)
	} else {
		detailed.Repo = pr.Repo
		pr = *detailed
	}

	bundle := s.collectInsights(ctx, pr)

	fmt.Fprintln(s.out, "\nGenerating LinkedIn post...")
	linkedIn, err := s.gen.LinkedInPostForPullRequest(ctx, pr, bundle)
	if err != nil {
		return nil, fmt.Errorf("failed to generate LinkedIn post: %w", err)
	}
	fmt.Fprintln(s.out, "\nGenerating Twitter post...")
	tweet, err := s.gen.TweetForPullRequest(ctx, pr, bundle)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Twitter post: %w", err)
	}

	return &core.Report{
		Selection:    core.Selection{PullRequest: &pr},
		Insights:     bundle,
		LinkedInPost: linkedIn,
		TwitterPost:  tweet,
	}, nil
}

func (s *Service) reportForCommit(ctx context.Context, commit core.Commit) (*core.Report, error) {
	fmt.Fprintln(s.out, "\nGenerating LinkedIn post...")
	linkedIn, err := s.gen.LinkedInPostForCommit(ctx, commit)
	if err != nil {
		return nil, fmt.Errorf("failed to generate LinkedIn post: %w", err)
	}
	fmt.Fprintln(s.out, "\nGenerating Twitter post...")
	tweet, err := s.gen.TweetForCommit(ctx, commit)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Twitter post: %w", err)
	}

	return &core.Report{
		Selection:    core.Selection{Commit: &commit},
		LinkedInPost: linkedIn,
		TwitterPost:  tweet,
	}, nil
}

// collectInsights fetches the pull request's feedback and mines it for
// CodeRabbit insights. Any failure here degrades to "no insights" rather
// than aborting the run; an empty bundle is reported as nil.
func (s *Service) collectInsights(ctx context.Context, pr core.PullRequest) *core.InsightBundle {
	comments, err := s.gh.ListPullRequestFeedback(ctx, pr.Repo.Owner, pr.Repo.Name, pr.Number)
	if err != nil {
		s.logger.Warn("failed to fetch pull request feedback, continuing without insights", "pr", pr.Number, "error", err)
		return nil
	}

	bundle := insights.Extract(comments)
	if bundle.Empty() {
		s.logger.Info("no CodeRabbit insights found", "pr", pr.Number, "comments", len(comments))
		return nil
	}

	s.logger.Info("extracted CodeRabbit insights", "pr", pr.Number, "count", bundle.Count())
	return &bundle
}
