package content

import (
	"net/url"
	"strings"
)

// GenerateShareLinks expands each provider template against the article's
// URL, title, raw text and tags. Placeholder values are percent-encoded with
// the RFC 3986 component rules; {TAGS} renders the tag list as "#a #b" with
// internal spaces turned into underscores before encoding. Provider input
// order is preserved and templates without placeholders pass through
// unchanged. There is no failure mode.
func GenerateShareLinks(providers []ShareProvider, linkURL, title, text string, tags []string) []ShareLink {
	if len(providers) == 0 {
		return nil
	}

	tagTokens := make([]string, 0, len(tags))
	for _, tag := range tags {
		tagTokens = append(tagTokens, "#"+strings.ReplaceAll(tag, " ", "_"))
	}

	replacer := strings.NewReplacer(
		"{URL}", percentEncode(linkURL),
		"{TITLE}", percentEncode(title),
		"{TEXT}", percentEncode(text),
		"{TAGS}", percentEncode(strings.Join(tagTokens, " ")),
	)

	links := make([]ShareLink, 0, len(providers))
	for _, provider := range providers {
		links = append(links, ShareLink{
			ProviderName: provider.Name,
			URL:          replacer.Replace(provider.Template),
		})
	}
	return links
}

// percentEncode escapes everything outside the RFC 3986 unreserved set,
// encoding spaces as %20 rather than '+'.
func percentEncode(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}
