package interfaces

// TemplateRenderer renders the final page document from a template source and
// a free-form context map.
type TemplateRenderer interface {
	RenderString(templateContent string, data map[string]any) (string, error)
	RenderFile(path string, data map[string]any) (string, error)
}
