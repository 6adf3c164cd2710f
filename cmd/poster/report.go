package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"

	"github.com/mherzog4/twitter-linkedin-poster/internal/core"
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgWhite)
	dimColor     = color.New(color.FgHiBlack)
)

const timestampLayout = "2006-01-02 15:04:05 UTC"

func printSelection(sel core.Selection) {
	if sel.PullRequest != nil {
		pr := sel.PullRequest
		successColor.Printf("\nMost recent PR found in %s:\n", pr.Repo.Name)
		infoColor.Printf("Title: %s\n", pr.Title)
		infoColor.Printf("Merged: %s\n", pr.MergedAt.UTC().Format(timestampLayout))
		infoColor.Printf("URL: %s\n", pr.HTMLURL)
		if pr.Body != "" {
			infoColor.Println("Description:")
			fmt.Println(renderMarkdown(pr.Body))
		}
		return
	}

	commit := sel.Commit
	successColor.Printf("\nMost recent commit found in %s:\n", commit.Repo.Name)
	infoColor.Printf("Message: %s\n", commit.Message)
	infoColor.Printf("Date: %s\n", commit.AuthoredAt.UTC().Format(timestampLayout))
	infoColor.Printf("SHA: %s\n", commit.ShortSHA())
	infoColor.Printf("URL: %s\n", commit.HTMLURL)
}

// renderMarkdown renders a pull request description for the terminal. Any
// rendering failure falls back to the raw text so the description is never
// lost from the report.
func renderMarkdown(body string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return body
	}
	rendered, err := renderer.Render(body)
	if err != nil {
		return body
	}
	return strings.TrimRight(rendered, "\n")
}

func printReport(report *core.Report) {
	printSelection(report.Selection)

	if report.Insights != nil {
		dimColor.Printf("\nCodeRabbit insights used: %d\n", report.Insights.Count())
	}

	separator := strings.Repeat("=", 60)
	thinSeparator := strings.Repeat("-", 40)

	header := "GENERATED CONTENT"
	if report.Selection.Commit != nil {
		header = "GENERATED CONTENT (Based on Recent Commit)"
	}

	fmt.Println()
	titleColor.Println(separator)
	titleColor.Println(header)
	titleColor.Println(separator)

	fmt.Println()
	warnColor.Println("LINKEDIN POST:")
	dimColor.Println(thinSeparator)
	infoColor.Println(report.LinkedInPost)

	fmt.Println()
	warnColor.Println("TWITTER POST:")
	dimColor.Println(thinSeparator)
	infoColor.Println(report.TwitterPost)

	fmt.Println()
	titleColor.Println(separator)
}
