package static

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-static/internal/logging"
	"github.com/goliatone/go-static/pkg/interfaces"
)

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger { return logging.NoOp() }

func writeTestSite(t *testing.T) (Config, string) {
	t.Helper()

	contentDir := t.TempDir()
	outputDir := t.TempDir()

	files := map[string]string{
		"2024-01-01-first.md": strings.Join([]string{
			"---",
			"title: First Post",
			"tags: [go]",
			"---",
			"Hello from the first post. #static",
		}, "\n"),
		"2024-03-01-third.md":   "The newest entry, see https://example.com/ref.",
		"2024-02-01-second.txt": "A plain note with #notes in it.",
		"broken.md":             "---\ntitle: [oops\n---\nbody",
		"ignored.rst":           "not content",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(contentDir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	cfg := DefaultConfig()
	cfg.Site.Title = "Field Notes"
	cfg.Site.Description = "an integration fixture"
	cfg.Sources = []string{contentDir}
	cfg.Output.Dir = outputDir
	return cfg, outputDir
}

func TestSiteBuildEndToEnd(t *testing.T) {
	cfg, outputDir := writeTestSite(t)

	site, err := New(cfg, WithLoggerProvider(noopProvider{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := site.Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if result.ArticlesParsed != 3 {
		t.Fatalf("expected 3 parsed articles, got %d", result.ArticlesParsed)
	}
	if result.FilesSkipped != 1 {
		t.Fatalf("expected the malformed file skipped, got %d", result.FilesSkipped)
	}

	for _, name := range []string{
		"index.html", "search_index.json", "manifest.json",
		"favicon.svg", "favicon.ico", "apple-touch-icon.png",
	} {
		if _, err := os.Stat(filepath.Join(outputDir, name)); err != nil {
			t.Fatalf("expected artifact %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "search_index.json"))
	if err != nil {
		t.Fatalf("read search index: %v", err)
	}
	var entries []SearchEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("decode search index: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 search entries, got %d", len(entries))
	}

	// Collection order: created date descending via the filename convention.
	wantSlugs := []string{"2024-03-01-third", "2024-02-01-second", "2024-01-01-first"}
	for i, want := range wantSlugs {
		if entries[i].Slug != want {
			t.Fatalf("position %d: expected slug %s, got %s", i, want, entries[i].Slug)
		}
	}

	page, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if !strings.Contains(string(page), "First Post") {
		t.Fatalf("expected the frontmatter title rendered, got %q", string(page))
	}
}

func TestSiteCollectOnly(t *testing.T) {
	cfg, outputDir := writeTestSite(t)

	site, err := New(cfg, WithLoggerProvider(noopProvider{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	articles, skipped, err := site.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(articles) != 3 || skipped != 1 {
		t.Fatalf("expected 3 articles and 1 skip, got %d and %d", len(articles), skipped)
	}

	// Collect must not touch the output directory.
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no artifacts from Collect, found %d", len(entries))
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Dir = ""

	if _, err := New(cfg); err == nil {
		t.Fatalf("expected construction to fail validation")
	}
}
