package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssueReferences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		repoPath string
		baseURL  string
		want     []string
	}{
		{
			name:     "Full issue URL used verbatim",
			text:     "Fixes https://github.com/acme/widgets/issues/17 for real",
			repoPath: "acme/widgets",
			baseURL:  "https://github.com",
			want:     []string{"https://github.com/acme/widgets/issues/17"},
		},
		{
			name:     "Shorthand owner/repo#number",
			text:     "See owner/repo#42 for details",
			repoPath: "acme/widgets",
			baseURL:  "https://github.com",
			want:     []string{"https://github.com/owner/repo/issues/42"},
		},
		{
			name:     "Bare number against current repo",
			text:     "Closes #7",
			repoPath: "acme/widgets",
			baseURL:  "https://github.com",
			want:     []string{"https://github.com/acme/widgets/issues/7"},
		},
		{
			name:     "Bare number with five digits is ignored",
			text:     "Ref #99999 is not an issue",
			repoPath: "acme/widgets",
			baseURL:  "https://github.com",
			want:     nil,
		},
		{
			name:     "Bare number without repo path is ignored",
			text:     "Closes #7",
			repoPath: "",
			baseURL:  "https://github.com",
			want:     nil,
		},
		{
			name:     "Trailing slash on base url is trimmed",
			text:     "See owner/repo#42",
			repoPath: "",
			baseURL:  "https://github.example.com/",
			want:     []string{"https://github.example.com/owner/repo/issues/42"},
		},
		{
			name:     "Duplicates collapse to first occurrence",
			text:     "Fixes #7 and also #7, plus acme/widgets#7",
			repoPath: "acme/widgets",
			baseURL:  "https://github.com",
			want:     []string{"https://github.com/acme/widgets/issues/7"},
		},
		{
			name:     "Empty text",
			text:     "",
			repoPath: "acme/widgets",
			baseURL:  "https://github.com",
			want:     nil,
		},
		{
			name:     "Mixed shapes keep occurrence order",
			text:     "https://github.com/a/b/issues/1 then c/d#2 then #3",
			repoPath: "acme/widgets",
			baseURL:  "https://github.com",
			want: []string{
				"https://github.com/a/b/issues/1",
				"https://github.com/c/d/issues/2",
				"https://github.com/acme/widgets/issues/3",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IssueReferences(tt.text, tt.repoPath, tt.baseURL)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIssueReferencesCap(t *testing.T) {
	var parts []string
	for i := 1; i <= 6; i++ {
		parts = append(parts, fmt.Sprintf("#%d", i))
	}
	text := "Fixes " + strings.Join(parts, " and ")

	got := IssueReferences(text, "acme/widgets", "https://github.com")

	// First three in occurrence order survive the cap.
	assert.Equal(t, []string{
		"https://github.com/acme/widgets/issues/1",
		"https://github.com/acme/widgets/issues/2",
		"https://github.com/acme/widgets/issues/3",
	}, got)
}

func TestJiraKeys(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "Bare key",
			text: "Implements ABC-123",
			want: []string{"ABC-123"},
		},
		{
			name: "Browse URL",
			text: "See https://x/browse/XYZ-9",
			want: []string{"XYZ-9"},
		},
		{
			name: "Key with digits in prefix",
			text: "Relates to S4R-1234",
			want: []string{"S4R-1234"},
		},
		{
			name: "Multiple keys deduplicated",
			text: "ABC-1 then ABC-2 then ABC-1 again",
			want: []string{"ABC-1", "ABC-2"},
		},
		{
			name: "Lowercase is not a key",
			text: "abc-123 is a branch name",
			want: nil,
		},
		{
			name: "Empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JiraKeys(tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}
