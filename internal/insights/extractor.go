// Package insights mines CodeRabbit review comments for reusable insight
// material.
package insights

import (
	"strings"

	"github.com/mherzog4/twitter-linkedin-poster/internal/core"
)

// botLogins are the substrings that identify the CodeRabbit bot account.
// Matching is by login substring, not by GitHub's account-type flag.
var botLogins = []string{"coderabbitai", "coderabbit"}

var (
	summaryMarkers     = []string{"## Summary", "**Summary**"}
	changesMarkers     = []string{"## Changes", "**Changes**"}
	suggestionKeywords = []string{"suggest", "recommend", "consider", "improvement"}
	qualityKeywords    = []string{"quality", "security", "performance", "best practice"}
)

// Extract classifies a pull request's comments into an insight bundle.
// Comments not authored by the CodeRabbit bot are ignored. The four checks
// are independent, so a single comment can land in more than one slot. When
// several comments carry a summary marker, the last one wins; the list slots
// preserve input order. Extract is pure: same input, same output.
func Extract(comments []core.Comment) core.InsightBundle {
	var bundle core.InsightBundle

	for _, comment := range comments {
		login := strings.ToLower(comment.Author)
		if !containsAny(login, botLogins) {
			continue
		}

		body := comment.Body
		lower := strings.ToLower(body)

		if containsAny(body, summaryMarkers) {
			bundle.Summary = body
		}
		if containsAny(body, changesMarkers) {
			bundle.KeyChanges = append(bundle.KeyChanges, body)
		}
		if containsAny(lower, suggestionKeywords) {
			bundle.Suggestions = append(bundle.Suggestions, body)
		}
		if containsAny(lower, qualityKeywords) {
			bundle.QualityInsights = append(bundle.QualityInsights, body)
		}
	}

	return bundle
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
