package generator

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-static/pkg/interfaces"
)

// PageFile is the name of the rendered page artifact.
const PageFile = "index.html"

//go:embed templates/index.html
var defaultPageTemplate string

var registerFiltersOnce sync.Once

// registerTemplateFilters installs the custom pongo2 filters. Registration is
// process-global in pongo2, so it runs once.
func registerTemplateFilters() {
	registerFiltersOnce.Do(func() {
		_ = pongo2.RegisterFilter("slugify", filterSlugify)
	})
}

// filterSlugify normalizes a value into a URL-safe slug for tag anchors and
// asset names inside templates.
func filterSlugify(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	normalized, err := slug.Normalize(in.String())
	if err != nil {
		return nil, &pongo2.Error{Sender: "filter:slugify", OrigError: err}
	}
	return pongo2.AsValue(normalized), nil
}

// pageRenderer renders the final page document through pongo2. It satisfies
// interfaces.TemplateRenderer.
type pageRenderer struct{}

func newPageRenderer() *pageRenderer {
	registerTemplateFilters()
	return &pageRenderer{}
}

func (r *pageRenderer) RenderString(templateContent string, data map[string]any) (string, error) {
	tpl, err := pongo2.FromString(templateContent)
	if err != nil {
		return "", fmt.Errorf("generator: parse template: %w", err)
	}
	out, err := tpl.Execute(pongo2.Context(data))
	if err != nil {
		return "", fmt.Errorf("generator: execute template: %w", err)
	}
	return out, nil
}

func (r *pageRenderer) RenderFile(path string, data map[string]any) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("generator: read template %s: %w", path, err)
	}
	return r.RenderString(string(source), data)
}

var _ interfaces.TemplateRenderer = (*pageRenderer)(nil)
