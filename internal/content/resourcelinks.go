package content

import (
	"net/url"
	"regexp"
	"strings"
)

// resourceAttrPattern captures every src="..." or href='...' attribute value
// in an HTML fragment.
var resourceAttrPattern = regexp.MustCompile(`(?:src|href)=["'](.*?)["']`)

// ValidateResourceLinks enforces the absoluteness policy on rendered HTML:
// every src/href value must be an absolute URL. Empty values, in-page
// anchors (#...) and data: URIs are skipped. The first offending value fails
// the validation with an error naming the originating file. Pure; no side
// effects.
func ValidateResourceLinks(htmlContent, sourcePath string) error {
	for _, m := range resourceAttrPattern.FindAllStringSubmatch(htmlContent, -1) {
		value := m[1]
		if value == "" || strings.HasPrefix(value, "#") || strings.HasPrefix(value, "data:") {
			continue
		}
		if parsed, err := url.Parse(value); err != nil || !parsed.IsAbs() {
			return resourceLinkError(sourcePath, value)
		}
	}
	return nil
}
