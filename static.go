// Package static converts a directory tree of Markdown and plain-text source
// files into a fully-formed static site: it discovers content files, resolves
// metadata through frontmatter/filename/filesystem precedence chains, renders
// sanitized HTML, computes social share links, builds a client-side search
// index and emits favicon assets plus the final rendered page.
package static

import (
	"context"
	"time"

	"github.com/goliatone/go-static/internal/content"
	"github.com/goliatone/go-static/internal/generator"
	"github.com/goliatone/go-static/internal/logging"
	"github.com/goliatone/go-static/internal/logging/gologger"
	"github.com/goliatone/go-static/internal/markdown"
	"github.com/goliatone/go-static/pkg/interfaces"
)

type (
	// Article is the resolved, render-ready representation of one source file.
	Article = content.Article
	// ShareLink is a provider-specific sharing URL generated for one article.
	ShareLink = content.ShareLink
	// SearchEntry is the per-article projection in the search index.
	SearchEntry = generator.SearchEntry
	// BuildResult summarizes a completed generation run.
	BuildResult = generator.BuildResult
)

// Site wires the content pipeline to the site generator for one configuration.
type Site struct {
	config    Config
	logger    interfaces.Logger
	builder   *content.Builder
	generator *generator.Service
}

// Option customizes Site construction.
type Option func(*siteOptions)

type siteOptions struct {
	provider interfaces.LoggerProvider
}

// WithLoggerProvider supplies an external logger provider instead of the
// config-driven go-logger default.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *siteOptions) {
		o.provider = provider
	}
}

// New validates the configuration and assembles a Site.
func New(cfg Config, opts ...Option) (*Site, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := siteOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	provider := options.provider
	if provider == nil {
		built, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		provider = built
	}

	renderer := markdown.NewGoldmarkRenderer(interfaces.RenderOptions{
		Extensions: []string{"strikethrough"},
	})

	providers := make([]content.ShareProvider, 0, len(cfg.ShareProviders))
	for _, p := range cfg.ShareProviders {
		providers = append(providers, content.ShareProvider{Name: p.Name, Template: p.Template})
	}

	parser := content.NewParser(renderer, providers)

	return &Site{
		config:    cfg,
		logger:    logging.ModuleLogger(provider, logging.RootModule()),
		builder:   content.NewBuilder(parser, logging.ModuleLogger(provider, logging.ContentModule())),
		generator: generator.New(logging.ModuleLogger(provider, logging.GeneratorModule())),
	}, nil
}

// Collect runs only the content pipeline: it discovers and parses every
// source file and returns the ordered collection plus the count of files
// skipped over per-file errors.
func (s *Site) Collect(ctx context.Context) ([]*Article, int, error) {
	return s.builder.Build(ctx, s.config.Sources)
}

// Build runs the full pipeline and writes every artifact into the configured
// output directory. Per-file parse failures are logged and skipped; failures
// writing the site are returned.
func (s *Site) Build(ctx context.Context) (*BuildResult, error) {
	start := time.Now()

	articles, skipped, err := s.Collect(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.generator.Generate(ctx, articles, generator.Options{
		OutputDir:    s.config.Output.Dir,
		TemplatePath: s.config.Output.Template,
		Settings:     s.config.settings(),
	})
	if err != nil {
		return nil, err
	}

	result.FilesSkipped = skipped
	result.Duration = time.Since(start)

	s.logger.Info("build complete",
		"build_id", result.BuildID,
		"articles", result.ArticlesParsed,
		"skipped", result.FilesSkipped,
		"duration", result.Duration.String(),
	)
	return result, nil
}
