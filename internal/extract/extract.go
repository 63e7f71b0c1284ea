// Package extract recognizes work-item references embedded in free-form
// pull-request description text. It performs no I/O; callers hand the
// resulting identifiers to the fetch layer.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/prtrace/prtrace/internal/logging"
)

// MaxIssueRefs caps how many repository-issue references are handed to the
// fetch layer from a single description.
const MaxIssueRefs = 3

// issueRefPattern recognizes three mutually exclusive shapes of repository
// issue references, tried left to right per match span:
// a fully qualified issue URL, the owner/repo#number shorthand, and a bare
// #number.
var issueRefPattern = regexp.MustCompile(
	`(https://github[^/]+/[^/]+/[^/]+/issues/\d+)|(\b(\w+)/(\w+)#(\d+)\b)|(#\d+)`)

// jiraKeyPatterns recognize Jira issue keys, bare (e.g. "S4R-1234") or
// preceded by a /browse/ URL prefix. Matches from both patterns are unioned.
var jiraKeyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Z0-9]{2,10}-\d{1,7}\b`),
	regexp.MustCompile(`(?:https?://[^\s/]+/browse/)?([A-Z0-9]{2,10}-\d{1,7})\b`),
}

// bareRefMaxDigits bounds bare #number references; longer digit runs are
// treated as unrelated hash-prefixed tokens, not issue numbers.
const bareRefMaxDigits = 4

// IssueReferences scans text for repository issue references and returns
// canonical issue URLs, deduplicated in first-occurrence order. Shorthand
// references are qualified against baseURL; bare #number references are
// qualified against repoPath and ignored when no repo path is available.
// At most MaxIssueRefs references are returned; the overflow is logged and
// dropped.
func IssueReferences(text, repoPath, baseURL string) []string {
	if text == "" {
		return nil
	}

	base := strings.TrimRight(baseURL, "/")

	var refs []string
	seen := make(map[string]struct{})
	add := func(url string) {
		if _, ok := seen[url]; ok {
			return
		}
		seen[url] = struct{}{}
		refs = append(refs, url)
	}

	for _, match := range issueRefPattern.FindAllStringSubmatch(text, -1) {
		switch {
		case match[1] != "":
			// Fully qualified URL, used verbatim.
			add(match[1])
		case match[2] != "":
			// owner/repo#number shorthand.
			add(fmt.Sprintf("%s/%s/%s/issues/%s", base, match[3], match[4], match[5]))
		case match[6] != "":
			number := strings.TrimPrefix(match[6], "#")
			if len(number) <= bareRefMaxDigits && repoPath != "" {
				add(fmt.Sprintf("%s/%s/issues/%s", base, repoPath, number))
			}
		}
	}

	if len(refs) > MaxIssueRefs {
		logging.Info("too many issue references in description, truncating",
			"found", len(refs),
			"kept", MaxIssueRefs)
		refs = refs[:MaxIssueRefs]
	}

	return refs
}

// JiraKeys scans text for Jira issue keys and returns them deduplicated in
// first-occurrence order.
func JiraKeys(text string) []string {
	if text == "" {
		return nil
	}

	var keys []string
	seen := make(map[string]struct{})

	for _, pattern := range jiraKeyPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			// Prefer the capture group when the pattern has one; the
			// whole match otherwise.
			key := match[len(match)-1]
			if key == "" {
				key = match[0]
			}
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}

	return keys
}
