package github

import (
	"strings"
	"testing"
)

func TestParseIssueURL(t *testing.T) {
	client := &Client{baseHTML: "https://github.com"}

	tests := []struct {
		name       string
		url        string
		wantRepo   string
		wantNumber int
		wantErr    string
	}{
		{
			name:       "Standard issue URL",
			url:        "https://github.com/acme/widgets/issues/42",
			wantRepo:   "acme/widgets",
			wantNumber: 42,
		},
		{
			name:       "Enterprise host",
			url:        "https://github.example.com/acme/widgets/issues/7",
			wantRepo:   "acme/widgets",
			wantNumber: 7,
		},
		{
			name:    "Pull request URL is not an issue",
			url:     "https://github.com/acme/widgets/pull/42",
			wantErr: "not an issue url",
		},
		{
			name:    "Missing number",
			url:     "https://github.com/acme/widgets/issues",
			wantErr: "not an issue url",
		},
		{
			name:    "Non-numeric number",
			url:     "https://github.com/acme/widgets/issues/abc",
			wantErr: "invalid issue number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, number, err := client.ParseIssueURL(tt.url)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("expected error containing %q, got: %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo != tt.wantRepo || number != tt.wantNumber {
				t.Errorf("got (%s, %d), want (%s, %d)", repo, number, tt.wantRepo, tt.wantNumber)
			}
		})
	}
}

func TestSplitRepositoryValidation(t *testing.T) {
	_, _, err := splitRepository("invalid-repo-format")
	if err == nil {
		t.Error("Expected error with invalid repository format, got nil")
	}
	if err != nil && !strings.Contains(err.Error(), "invalid repository format") {
		t.Errorf("Expected 'invalid repository format' error, got: %v", err)
	}

	owner, repo, err := splitRepository("acme/widgets")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if owner != "acme" || repo != "widgets" {
		t.Errorf("got (%s, %s), want (acme, widgets)", owner, repo)
	}
}
