package interfaces

// RenderOptions controls how Markdown is converted to HTML.
type RenderOptions struct {
	// Extensions lists the markdown extensions to enable by name
	// (e.g. "strikethrough", "table"). Unknown names are ignored.
	Extensions []string
	// HardWraps renders single newlines as <br> elements.
	HardWraps bool
	// SafeMode suppresses raw HTML present in the source document.
	SafeMode bool
}

// MarkdownRenderer converts Markdown body text into an HTML fragment. The
// renderer is treated as a pure function: same input, same output, no side
// effects.
type MarkdownRenderer interface {
	Render(markdown []byte) ([]byte, error)
	RenderWithOptions(markdown []byte, opts RenderOptions) ([]byte, error)
}
