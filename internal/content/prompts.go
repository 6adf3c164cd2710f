package content

import (
	"fmt"
	"strings"

	"github.com/mherzog4/twitter-linkedin-poster/internal/core"
)

// summaryPreviewLen caps how much of the CodeRabbit summary is embedded into
// a prompt.
const summaryPreviewLen = 200

func linkedInPullRequestPrompt(pr core.PullRequest, insights *core.InsightBundle) string {
	return fmt.Sprintf(`Create a professional LinkedIn post about this merged pull request.
Make it engaging and highlight the technical achievement without being too technical for a general audience.

Repository: %s
PR Title: %s
PR Description: %s
Author: %s
Changes: %d additions, %d deletions%s

Make the post:
- Professional but approachable
- Include relevant hashtags
- Highlight the impact or improvement
- If CodeRabbit insights are available, mention that AI code review was used to ensure quality
- Keep it under 1300 characters
- Don't use overly technical jargon`,
		pr.Repo.Name, pr.Title, bodyOrDefault(pr.Body), pr.Author,
		pr.Additions, pr.Deletions, insightContext(insights))
}

func tweetPullRequestPrompt(pr core.PullRequest, insights *core.InsightBundle) string {
	return fmt.Sprintf(`Create a concise Twitter post (under 280 characters) about this merged pull request.
Make it engaging and use relevant hashtags.

Repository: %s
PR Title: %s
PR Description: %s
Author: %s%s

Make the tweet:
- Concise and engaging
- Include relevant hashtags like #OpenSource #Development #Code #AI
- If CodeRabbit insights available, mention AI code review briefly
- Highlight the key achievement
- Stay under 280 characters`,
		pr.Repo.Name, pr.Title, bodyOrDefault(pr.Body), pr.Author,
		tweetInsightContext(insights))
}

func linkedInCommitPrompt(commit core.Commit) string {
	return fmt.Sprintf(`Create a professional LinkedIn post about this recent code commit.
Make it engaging and highlight the development progress without being too technical.

Repository: %s
Commit Message: %s
Commit SHA: %s
Author: %s

Make the post:
- Professional but approachable
- Include relevant hashtags like #Development #Coding #OpenSource
- Highlight the progress or improvement made
- Keep it under 1300 characters
- Focus on the value/impact rather than technical details`,
		commit.Repo.Name, commit.Message, commit.ShortSHA(), commit.Author)
}

func tweetCommitPrompt(commit core.Commit) string {
	return fmt.Sprintf(`Create a concise Twitter post (under 280 characters) about this recent code commit.
Make it engaging and use relevant hashtags.

Repository: %s
Commit Message: %s
Commit SHA: %s

Make the tweet:
- Concise and engaging
- Include relevant hashtags like #Coding #Development #OpenSource
- Highlight the key progress made
- Stay under 280 characters
- Use an enthusiastic but professional tone`,
		commit.Repo.Name, commit.Message, commit.ShortSHA())
}

// insightContext renders the long-form insight clause: a truncated summary
// plus counts of suggestions and quality findings. Empty or nil bundles
// produce no clause at all.
func insightContext(insights *core.InsightBundle) string {
	if insights == nil || insights.Empty() {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\nCodeRabbit AI Review Insights:")
	if insights.Summary != "" {
		b.WriteString(fmt.Sprintf("\n- Summary: %s...", truncate(insights.Summary, summaryPreviewLen)))
	}
	if len(insights.Suggestions) > 0 {
		b.WriteString(fmt.Sprintf("\n- Key suggestions: %d improvements identified", len(insights.Suggestions)))
	}
	if len(insights.QualityInsights) > 0 {
		b.WriteString(fmt.Sprintf("\n- Quality insights: %d quality improvements noted", len(insights.QualityInsights)))
	}
	return b.String()
}

// tweetInsightContext renders the short-form clause: just the total insight
// count, character budget being what it is.
func tweetInsightContext(insights *core.InsightBundle) string {
	if insights == nil || insights.Empty() {
		return ""
	}
	return fmt.Sprintf("\nAI-reviewed with %d insights from CodeRabbit", insights.Count())
}

func bodyOrDefault(body string) string {
	if body == "" {
		return "No description provided"
	}
	return body
}

// truncate cuts s to at most n characters, never splitting a multi-byte
// rune.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
