// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"github.com/mherzog4/twitter-linkedin-poster/internal/core"
)

// reposPerPage is the page size used when listing a user's repositories.
const reposPerPage = 100

// Client defines the read-only GitHub operations the scan pipeline needs:
// repository discovery, merged pull request and commit listings, and the
// feedback attached to a single pull request.
type Client interface {
	ListPublicRepos(ctx context.Context, username string) ([]core.Repository, error)
	ListMergedPullRequests(ctx context.Context, owner, repo string, limit int) ([]core.PullRequest, error)
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*core.PullRequest, error)
	ListAuthorCommits(ctx context.Context, owner, repo, author string, limit int) ([]core.Commit, error)
	ListPullRequestFeedback(ctx context.Context, owner, repo string, number int) ([]core.Comment, error)
}

type gitHubClient struct {
	client *github.Client
	logger *slog.Logger
}

// NewClient wraps an already-configured go-github client. Tests use this to
// point the client at a mock server.
func NewClient(client *github.Client, logger *slog.Logger) Client {
	return &gitHubClient{client: client, logger: logger}
}

// NewPATClient creates a GitHub client authenticated with a Personal Access
// Token (PAT).
func NewPATClient(ctx context.Context, token string, logger *slog.Logger) Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)
	return &gitHubClient{client: client, logger: logger}
}

// ListPublicRepos retrieves every public repository of the given user. It
// pages through the listing until an empty page is returned, so the result
// is unbounded for prolific accounts.
func (g *gitHubClient) ListPublicRepos(ctx context.Context, username string) ([]core.Repository, error) {
	var all []core.Repository
	opts := &github.RepositoryListByUserOptions{
		Type:        "public",
		ListOptions: github.ListOptions{Page: 1, PerPage: reposPerPage},
	}

	for {
		repos, resp, err := g.client.Repositories.ListByUser(ctx, username, opts)
		if err != nil {
			g.logger.Error("failed to list repositories", "user", username, "page", opts.Page, "error", err)
			return nil, newRequestError("list repositories", resp, err)
		}
		if len(repos) == 0 {
			break
		}
		for _, r := range repos {
			all = append(all, core.Repository{
				Owner: r.GetOwner().GetLogin(),
				Name:  r.GetName(),
			})
		}
		opts.Page++
	}

	return all, nil
}

// ListMergedPullRequests returns up to limit recently merged pull requests
// for a repository. GitHub has no merged-only listing, so it over-fetches
// 2x limit of the most recently updated closed pull requests and keeps the
// merged ones, in the order received. The result is ordered by update
// recency, not merge recency.
func (g *gitHubClient) ListMergedPullRequests(ctx context.Context, owner, repo string, limit int) ([]core.PullRequest, error) {
	opts := &github.PullRequestListOptions{
		State:       "closed",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: limit * 2},
	}

	prs, resp, err := g.client.PullRequests.List(ctx, owner, repo, opts)
	if err != nil {
		g.logger.Error("failed to list pull requests", "owner", owner, "repo", repo, "error", err)
		return nil, newRequestError("list pull requests", resp, err)
	}

	var merged []core.PullRequest
	for _, pr := range prs {
		if pr.MergedAt == nil {
			continue
		}
		merged = append(merged, convertPullRequest(pr, owner, repo))
		if len(merged) == limit {
			break
		}
	}

	return merged, nil
}

// GetPullRequest fetches a single pull request by number. Unlike the listing
// call, the response carries the addition and deletion counts.
func (g *gitHubClient) GetPullRequest(ctx context.Context, owner, repo string, number int) (*core.PullRequest, error) {
	pr, resp, err := g.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		g.logger.Error("failed to get pull request", "owner", owner, "repo", repo, "pr", number, "error", err)
		return nil, newRequestError("get pull request", resp, err)
	}
	converted := convertPullRequest(pr, owner, repo)
	return &converted, nil
}

// ListAuthorCommits returns up to limit recent commits authored by the given
// login, filtered server-side.
func (g *gitHubClient) ListAuthorCommits(ctx context.Context, owner, repo, author string, limit int) ([]core.Commit, error) {
	opts := &github.CommitsListOptions{
		Author:      author,
		ListOptions: github.ListOptions{PerPage: limit},
	}

	commits, resp, err := g.client.Repositories.ListCommits(ctx, owner, repo, opts)
	if err != nil {
		g.logger.Error("failed to list commits", "owner", owner, "repo", repo, "author", author, "error", err)
		return nil, newRequestError("list commits", resp, err)
	}

	result := make([]core.Commit, 0, len(commits))
	for _, c := range commits {
		result = append(result, core.Commit{
			SHA:        c.GetSHA(),
			Message:    c.GetCommit().GetMessage(),
			Author:     c.GetCommit().GetAuthor().GetName(),
			AuthoredAt: c.GetCommit().GetAuthor().GetDate().Time,
			HTMLURL:    c.GetHTMLURL(),
			Repo:       core.Repository{Owner: owner, Name: repo},
		})
	}

	return result, nil
}

// ListPullRequestFeedback flattens the three feedback sources GitHub keeps
// for a pull request into one comment list: general conversation comments,
// inline review comments, and formal review submissions. Reviews with an
// empty body are dropped; the rest are synthesized into comment records so
// the insight extractor only deals with one shape.
func (g *gitHubClient) ListPullRequestFeedback(ctx context.Context, owner, repo string, number int) ([]core.Comment, error) {
	var all []core.Comment

	issueComments, resp, err := g.client.Issues.ListComments(ctx, owner, repo, number, nil)
	if err != nil {
		g.logger.Error("failed to list issue comments", "owner", owner, "repo", repo, "pr", number, "error", err)
		return nil, newRequestError("list issue comments", resp, err)
	}
	for _, c := range issueComments {
		all = append(all, core.Comment{
			Author:    c.GetUser().GetLogin(),
			Body:      c.GetBody(),
			CreatedAt: c.GetCreatedAt().Time,
			Kind:      core.KindIssueComment,
		})
	}

	reviewComments, resp, err := g.client.PullRequests.ListComments(ctx, owner, repo, number, nil)
	if err != nil {
		g.logger.Error("failed to list review comments", "owner", owner, "repo", repo, "pr", number, "error", err)
		return nil, newRequestError("list review comments", resp, err)
	}
	for _, c := range reviewComments {
		all = append(all, core.Comment{
			Author:    c.GetUser().GetLogin(),
			Body:      c.GetBody(),
			CreatedAt: c.GetCreatedAt().Time,
			Kind:      core.KindReviewComment,
		})
	}

	reviews, resp, err := g.client.PullRequests.ListReviews(ctx, owner, repo, number, nil)
	if err != nil {
		g.logger.Error("failed to list reviews", "owner", owner, "repo", repo, "pr", number, "error", err)
		return nil, newRequestError("list reviews", resp, err)
	}
	for _, r := range reviews {
		if r.GetBody() == "" {
			continue
		}
		all = append(all, core.Comment{
			Author:    r.GetUser().GetLogin(),
			Body:      r.GetBody(),
			CreatedAt: r.GetSubmittedAt().Time,
			Kind:      core.KindReview,
		})
	}

	return all, nil
}

func convertPullRequest(pr *github.PullRequest, owner, repo string) core.PullRequest {
	var mergedAt *time.Time
	if pr.MergedAt != nil {
		t := pr.MergedAt.Time
		mergedAt = &t
	}
	return core.PullRequest{
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		Body:      pr.GetBody(),
		Author:    pr.GetUser().GetLogin(),
		MergedAt:  mergedAt,
		Additions: pr.GetAdditions(),
		Deletions: pr.GetDeletions(),
		HTMLURL:   pr.GetHTMLURL(),
		Repo:      core.Repository{Owner: owner, Name: repo},
	}
}
