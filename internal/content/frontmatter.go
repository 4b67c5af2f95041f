package content

import (
	"bytes"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// Frontmatter is the typed envelope for the optional YAML block at the top of
// a Markdown file. Every field is optional, unknown fields are ignored, and
// date fields stay raw strings so invalid values can fall through the
// precedence chain instead of failing the parse.
type Frontmatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Created     string   `yaml:"created"`
	Modified    string   `yaml:"modified"`
	LinkURL     string   `yaml:"link_url"`
}

// ParseFrontmatter splits source into its frontmatter envelope and Markdown
// body. A missing frontmatter block is not an error: the whole input becomes
// the body and the envelope stays zero. A present but malformed block fails
// with a frontmatter decode error naming the file.
func ParseFrontmatter(path string, source []byte) (Frontmatter, []byte, error) {
	var meta Frontmatter

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return Frontmatter{}, nil, frontmatterDecodeError(path, err)
	}

	return meta, body, nil
}

// CreatedDate parses the created field as YYYY-MM-DD. Malformed values are
// reported as absent, never as errors.
func (f Frontmatter) CreatedDate() (time.Time, bool) {
	return parseDate(f.Created)
}

// ModifiedDate parses the modified field as YYYY-MM-DD. Malformed values are
// reported as absent, never as errors.
func (f Frontmatter) ModifiedDate() (time.Time, bool) {
	return parseDate(f.Modified)
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	date, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
