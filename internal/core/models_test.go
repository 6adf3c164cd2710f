package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepositoryFullName(t *testing.T) {
	repo := Repository{Owner: "mherzog4", Name: "dotfiles"}
	assert.Equal(t, "mherzog4/dotfiles", repo.FullName())
}

func TestCommitShortSHA(t *testing.T) {
	tests := []struct {
		name string
		sha  string
		want string
	}{
		{"full SHA is abbreviated", "a1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6a7b8c9d0", "a1b2c3d"},
		{"short SHA is returned as-is", "a1b2c", "a1b2c"},
		{"empty SHA", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Commit{SHA: tt.sha}
			assert.Equal(t, tt.want, c.ShortSHA())
		})
	}
}

func TestInsightBundle(t *testing.T) {
	tests := []struct {
		name      string
		bundle    InsightBundle
		wantEmpty bool
		wantCount int
	}{
		{
			name:      "zero value is empty",
			bundle:    InsightBundle{},
			wantEmpty: true,
			wantCount: 0,
		},
		{
			name:      "summary alone counts as one",
			bundle:    InsightBundle{Summary: "## Summary\nstuff"},
			wantEmpty: false,
			wantCount: 1,
		},
		{
			name: "all slots populated",
			bundle: InsightBundle{
				Summary:         "## Summary",
				KeyChanges:      []string{"a", "b"},
				Suggestions:     []string{"c"},
				QualityInsights: []string{"d", "e", "f"},
			},
			wantEmpty: false,
			wantCount: 7,
		},
		{
			name:      "list slot alone is not empty",
			bundle:    InsightBundle{Suggestions: []string{"consider X"}},
			wantEmpty: false,
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantEmpty, tt.bundle.Empty())
			assert.Equal(t, tt.wantCount, tt.bundle.Count())
		})
	}
}

func TestSelectionRepo(t *testing.T) {
	repo := Repository{Owner: "me", Name: "project"}

	sel := Selection{PullRequest: &PullRequest{Repo: repo}}
	assert.Equal(t, repo, sel.Repo())

	sel = Selection{Commit: &Commit{Repo: repo}}
	assert.Equal(t, repo, sel.Repo())

	assert.Equal(t, Repository{}, Selection{}.Repo())
}
