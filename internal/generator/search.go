package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-static/internal/content"
)

// SearchIndexFile is the name of the client-side search index artifact.
const SearchIndexFile = "search_index.json"

// SearchEntry is the per-article projection serialized into the client-side
// search index. Array order matches the collection order.
type SearchEntry struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	HTMLContent string   `json:"html_content"`
	Slug        string   `json:"slug"`
}

// buildSearchIndex projects the collection into its search entries.
func buildSearchIndex(articles []*content.Article) []SearchEntry {
	entries := make([]SearchEntry, 0, len(articles))
	for _, article := range articles {
		entries = append(entries, SearchEntry{
			Title:       article.Title,
			Description: article.Description,
			Tags:        article.Tags,
			HTMLContent: article.HTMLContent,
			Slug:        article.Slug,
		})
	}
	return entries
}

func writeSearchIndex(outputDir string, articles []*content.Article) error {
	data, err := json.Marshal(buildSearchIndex(articles))
	if err != nil {
		return fmt.Errorf("generator: marshal search index: %w", err)
	}
	path := filepath.Join(outputDir, SearchIndexFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("generator: write search index: %w", err)
	}
	return nil
}
