// Package core defines the domain types shared by the scanning, insight
// extraction and content generation components. These types are deliberately
// plain so the adapters around the GitHub and Gemini APIs stay decoupled from
// each other.
package core

import "time"

// Repository identifies one of the user's public repositories. It is only
// used as a lookup key for the pull request and commit scans.
type Repository struct {
	Owner string
	Name  string
}

// FullName returns the "owner/name" form used in logs and prompts.
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// PullRequest is the subset of pull request data the pipeline works with.
// MergedAt is nil for pull requests that were closed without being merged;
// only merged pull requests are eligible for selection.
type PullRequest struct {
	Number    int
	Title     string
	Body      string
	Author    string
	MergedAt  *time.Time
	Additions int
	Deletions int
	HTMLURL   string
	Repo      Repository
}

// Commit is the fallback event when no merged pull request exists anywhere.
type Commit struct {
	SHA        string
	Message    string
	Author     string
	AuthoredAt time.Time
	HTMLURL    string
	Repo       Repository
}

// ShortSHA returns the conventional 7-character abbreviation of the SHA.
func (c Commit) ShortSHA() string {
	if len(c.SHA) > 7 {
		return c.SHA[:7]
	}
	return c.SHA
}

// CommentKind discriminates the three feedback shapes GitHub attaches to a
// pull request.
type CommentKind string

const (
	// KindIssueComment is a general comment on the pull request conversation.
	KindIssueComment CommentKind = "issue_comment"
	// KindReviewComment is an inline comment on a specific diff location.
	KindReviewComment CommentKind = "review_comment"
	// KindReview is the top-level body of a formal review submission.
	KindReview CommentKind = "review"
)

// Comment normalizes issue comments, inline review comments and review
// bodies into one shape so the insight extractor can stay shape-agnostic.
type Comment struct {
	Author    string
	Body      string
	CreatedAt time.Time
	Kind      CommentKind
}

// InsightBundle holds the CodeRabbit review insights mined from one pull
// request's comments. Slices preserve the order in which the comments were
// fetched.
type InsightBundle struct {
	Summary         string
	KeyChanges      []string
	Suggestions     []string
	QualityInsights []string
}

// Empty reports whether no insight of any kind was found.
func (b InsightBundle) Empty() bool {
	return b.Summary == "" &&
		len(b.KeyChanges) == 0 &&
		len(b.Suggestions) == 0 &&
		len(b.QualityInsights) == 0
}

// Count returns the total number of insights across all four slots.
func (b InsightBundle) Count() int {
	n := len(b.KeyChanges) + len(b.Suggestions) + len(b.QualityInsights)
	if b.Summary != "" {
		n++
	}
	return n
}

// Platform is the social network a post is drafted for. The two platforms
// differ only in framing and advisory length (LinkedIn ~1300 characters,
// Twitter ~280).
type Platform string

const (
	PlatformLinkedIn Platform = "linkedin"
	PlatformTwitter  Platform = "twitter"
)

// Selection is the event the scan settled on. Exactly one of PullRequest or
// Commit is non-nil.
type Selection struct {
	PullRequest *PullRequest
	Commit      *Commit
}

// Repo returns the repository the selected event belongs to.
func (s Selection) Repo() Repository {
	if s.PullRequest != nil {
		return s.PullRequest.Repo
	}
	if s.Commit != nil {
		return s.Commit.Repo
	}
	return Repository{}
}

// Report is the final result of one run: the selected event, the insights
// that informed the prompts (nil when none were found), and the two drafted
// posts.
type Report struct {
	Selection    Selection
	Insights     *InsightBundle
	LinkedInPost string
	TwitterPost  string
}
