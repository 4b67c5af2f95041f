package content

import "regexp"

// Compiled once at process start and reused read-only across all files.
var (
	firstURLPattern = regexp.MustCompile(`https?://[^\s()<>]+`)
	bodyTagPattern  = regexp.MustCompile(`#(\p{L}[\p{L}\p{N}-]*)`)
)

// FirstURL returns the first absolute http(s) URL found scanning content
// left-to-right, or the empty string when none is present. The match is not
// validated beyond the URL pattern.
func FirstURL(content string) string {
	return firstURLPattern.FindString(content)
}

// BodyTags extracts hashtags (e.g. #go, #你好) from content with Unicode
// support. Duplicates are preserved; normalization happens at assembly.
func BodyTags(content string) []string {
	matches := bodyTagPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}
