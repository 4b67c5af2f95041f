package content

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/goliatone/go-static/pkg/interfaces"
)

// Builder discovers source files under the configured paths, parses each one
// to completion and produces the ordered article collection. A failure
// parsing one file is logged and isolated: it never affects the remaining
// files or aborts the run.
type Builder struct {
	parser *Parser
	logger interfaces.Logger
}

// NewBuilder constructs a collection builder.
func NewBuilder(parser *Parser, logger interfaces.Logger) *Builder {
	return &Builder{
		parser: parser,
		logger: logger,
	}
}

// Build walks every source path, parses the discovered .md/.txt files in
// discovery order and returns the collection sorted by created date
// descending (stable, so discovery order breaks ties). The second return is
// the number of files skipped due to per-file errors. An empty collection is
// not an error; only context cancellation aborts the walk.
func (b *Builder) Build(ctx context.Context, sources []string) ([]*Article, int, error) {
	var articles []*Article
	skipped := 0

	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return nil, skipped, err
		}

		walkErr := filepath.WalkDir(source, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				b.logger.Warn("skipping unreadable path", "path", path, "error", err)
				skipped++
				if entry != nil && entry.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if entry.IsDir() {
				return nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			ext := filepath.Ext(path)
			if ext != ".md" && ext != ".txt" {
				return nil
			}

			b.logger.Info("processing source file", "path", path)

			article, parseErr := b.parser.ParseFile(path)
			if parseErr != nil {
				b.logger.Warn("skipping source file", "path", path, "error", parseErr)
				skipped++
				return nil
			}

			articles = append(articles, article)
			return nil
		})
		if walkErr != nil {
			return nil, skipped, walkErr
		}
	}

	b.checkInvariants(articles)

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Created.After(articles[j].Created)
	})

	return articles, skipped, nil
}

// checkInvariants surfaces conditions the pipeline treats as defects without
// excluding the affected articles: a missing created date (the precedence
// chains always supply a fallback) and slug collisions across the collection
// (known gap, not enforced).
func (b *Builder) checkInvariants(articles []*Article) {
	slugs := make(map[string]struct{}, len(articles))
	for _, article := range articles {
		if article.Created.IsZero() {
			b.logger.Error("article missing created date", "slug", article.Slug)
		}
		if _, ok := slugs[article.Slug]; ok {
			b.logger.Warn("duplicate slug in collection", "slug", article.Slug)
		}
		slugs[article.Slug] = struct{}{}
	}
}
