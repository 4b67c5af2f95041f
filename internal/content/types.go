package content

import (
	"sort"
	"time"
)

// ShareLink is a provider-specific sharing URL generated for one article.
type ShareLink struct {
	ProviderName string `json:"provider_name"`
	URL          string `json:"url"`
}

// ShareProvider pairs a provider name with its URL template. Templates may
// reference the {URL}, {TITLE}, {TEXT} and {TAGS} placeholders.
type ShareProvider struct {
	Name     string
	Template string
}

// Article is the resolved, render-ready representation of one source file.
// Instances are immutable after assembly.
type Article struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Tags        []string    `json:"tags"`
	Created     time.Time   `json:"created"`
	Modified    time.Time   `json:"modified"`
	LinkURL     string      `json:"link_url,omitempty"`
	Content     string      `json:"content"`
	HTMLContent string      `json:"html_content"`
	Slug        string      `json:"slug"`
	ShareLinks  []ShareLink `json:"share_links"`
}

// normalizeTags drops empty entries, dedupes and sorts lexicographically.
// Applied to both source strategies so the Article tag invariant holds
// regardless of where the tags came from.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// dateOf truncates a timestamp to day granularity in UTC.
func dateOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
