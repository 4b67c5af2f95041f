package content

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-static/pkg/interfaces"
)

// markdownRenderOptions is the fixed configuration the pipeline hands to the
// renderer: strikethrough enabled, nothing else.
var markdownRenderOptions = interfaces.RenderOptions{
	Extensions: []string{"strikethrough"},
}

// Parser resolves a single raw source file into a fully-populated Article.
// It dispatches on the file extension: .md uses the Markdown strategy, .txt
// the plain-text strategy, anything else is an unsupported file type.
type Parser struct {
	renderer  interfaces.MarkdownRenderer
	providers []ShareProvider
}

// NewParser constructs a parser around a Markdown renderer and the share
// provider templates applied to every article.
func NewParser(renderer interfaces.MarkdownRenderer, providers []ShareProvider) *Parser {
	return &Parser{
		renderer:  renderer,
		providers: append([]ShareProvider(nil), providers...),
	}
}

// ParseFile reads path once, resolves its metadata through the precedence
// chains and returns the assembled article.
func (p *Parser) ParseFile(path string) (*Article, error) {
	switch strings.TrimPrefix(filepath.Ext(path), ".") {
	case "md":
		return p.parseMarkdown(path)
	case "txt":
		return p.parseText(path)
	default:
		return nil, unsupportedFileTypeError(path)
	}
}

// fileDates captures the filesystem-derived portion of the precedence chains.
type fileDates struct {
	modified   time.Time
	created    time.Time
	hasCreated bool
}

func (p *Parser) readSource(path string) ([]byte, fileDates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fileDates{}, sourceReadError(path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fileDates{}, sourceReadError(path, err)
	}

	dates := fileDates{modified: dateOf(info.ModTime())}
	if created, ok := birthTime(info); ok {
		dates.created = dateOf(created)
		dates.hasCreated = true
	}
	return data, dates, nil
}

// parseMarkdown implements the Markdown strategy: frontmatter envelope +
// body, resolution order per field, goldmark rendering, then resource-link
// validation against the produced HTML.
func (p *Parser) parseMarkdown(path string) (*Article, error) {
	meta := ExtractPathMeta(path)

	source, dates, err := p.readSource(path)
	if err != nil {
		return nil, err
	}

	fm, body, err := ParseFrontmatter(path, source)
	if err != nil {
		return nil, err
	}
	content := string(body)

	title := strings.TrimSpace(fm.Title)
	if title == "" {
		title = meta.Title
	}

	created, ok := fm.CreatedDate()
	if !ok {
		switch {
		case meta.HasDate:
			created = meta.Date
		case dates.hasCreated:
			created = dates.created
		default:
			created = dates.modified
		}
	}

	modified, ok := fm.ModifiedDate()
	if !ok {
		modified = dates.modified
	}

	linkURL := strings.TrimSpace(fm.LinkURL)
	if linkURL == "" {
		linkURL = FirstURL(content)
	}

	tags := normalizeTags(append(append([]string(nil), fm.Tags...), BodyTags(content)...))

	rendered, err := p.renderer.RenderWithOptions(body, markdownRenderOptions)
	if err != nil {
		return nil, fmt.Errorf("render markdown %s: %w", path, err)
	}
	htmlContent := string(rendered)

	if err := ValidateResourceLinks(htmlContent, path); err != nil {
		return nil, err
	}

	return &Article{
		Title:       title,
		Description: fm.Description,
		Tags:        tags,
		Created:     created,
		Modified:    modified,
		LinkURL:     linkURL,
		Content:     content,
		HTMLContent: htmlContent,
		Slug:        Slug(path),
		ShareLinks:  GenerateShareLinks(p.providers, linkURL, title, content, tags),
	}, nil
}

// parseText implements the plain-text strategy. The content is never treated
// as HTML: special characters are escaped, newlines become line breaks and
// the result is wrapped in a single paragraph. Resource-link validation does
// not apply to plain-text output.
func (p *Parser) parseText(path string) (*Article, error) {
	meta := ExtractPathMeta(path)

	source, dates, err := p.readSource(path)
	if err != nil {
		return nil, err
	}
	content := string(source)

	created := dates.modified
	switch {
	case meta.HasDate:
		created = meta.Date
	case dates.hasCreated:
		created = dates.created
	}

	linkURL := FirstURL(content)
	tags := normalizeTags(BodyTags(content))

	escaped := html.EscapeString(content)
	htmlContent := "<p>" + strings.ReplaceAll(escaped, "\n", "<br>") + "</p>"

	return &Article{
		Title:       meta.Title,
		Description: "",
		Tags:        tags,
		Created:     created,
		Modified:    dates.modified,
		LinkURL:     linkURL,
		Content:     content,
		HTMLContent: htmlContent,
		Slug:        Slug(path),
		ShareLinks:  GenerateShareLinks(p.providers, linkURL, meta.Title, content, tags),
	}, nil
}
