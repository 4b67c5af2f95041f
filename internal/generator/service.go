package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-static/internal/content"
	"github.com/goliatone/go-static/internal/logging"
	"github.com/goliatone/go-static/pkg/interfaces"
)

// Options configure a single generation run.
type Options struct {
	// OutputDir receives every artifact. Created if missing.
	OutputDir string
	// TemplatePath points at a pongo2 template for the final page. Empty
	// selects the embedded default.
	TemplatePath string
	// Settings is the free-form site settings map exposed to the template
	// under "settings". The "title" entry also seeds the favicon set.
	Settings map[string]any
}

// BuildResult summarizes a completed generation run.
type BuildResult struct {
	BuildID        uuid.UUID
	OutputDir      string
	ArticlesParsed int
	FilesSkipped   int
	GeneratedAt    time.Time
	Duration       time.Duration
}

// Service writes the final site artifacts for an assembled collection:
// favicons, search index, rendered page and build manifest. Unlike per-file
// parse failures upstream, any failure here is structural and fatal.
type Service struct {
	logger   interfaces.Logger
	renderer interfaces.TemplateRenderer
}

// New constructs a generator service.
func New(logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{
		logger:   logger,
		renderer: newPageRenderer(),
	}
}

// Generate emits the full artifact set into opts.OutputDir.
func (s *Service) Generate(ctx context.Context, articles []*content.Article, opts Options) (*BuildResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &BuildResult{
		BuildID:        uuid.New(),
		OutputDir:      opts.OutputDir,
		ArticlesParsed: len(articles),
		GeneratedAt:    time.Now().UTC(),
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("generator: create output dir %s: %w", opts.OutputDir, err)
	}

	files := []string{PageFile, SearchIndexFile, ManifestFile}

	title, _ := opts.Settings["title"].(string)
	if title != "" {
		if err := writeFavicons(title, opts.OutputDir); err != nil {
			return nil, err
		}
		files = append(files, FaviconSVGFile, FaviconICOFile, AppleTouchFile)
		s.logger.Info("generated favicons", "title", title, "build_id", result.BuildID)
	} else {
		s.logger.Debug("no site title configured, skipping favicons")
	}

	if err := writeSearchIndex(opts.OutputDir, articles); err != nil {
		return nil, err
	}

	page, err := s.renderPage(articles, opts, result.GeneratedAt)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(opts.OutputDir, PageFile), []byte(page), 0o644); err != nil {
		return nil, fmt.Errorf("generator: write %s: %w", PageFile, err)
	}

	if err := writeManifest(opts.OutputDir, buildManifest{
		BuildID:     result.BuildID.String(),
		GeneratedAt: result.GeneratedAt,
		Articles:    len(articles),
		Files:       files,
	}); err != nil {
		return nil, err
	}

	s.logger.Info("site generated",
		"output_dir", opts.OutputDir,
		"articles", len(articles),
		"build_id", result.BuildID,
	)
	return result, nil
}

func (s *Service) renderPage(articles []*content.Article, opts Options, generatedAt time.Time) (string, error) {
	data := map[string]any{
		"settings":     opts.Settings,
		"articles":     articles,
		"generated_at": generatedAt,
	}

	if opts.TemplatePath != "" {
		return s.renderer.RenderFile(opts.TemplatePath, data)
	}
	return s.renderer.RenderString(defaultPageTemplate, data)
}
