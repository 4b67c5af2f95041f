package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	static "github.com/goliatone/go-static"
)

// siteBuilder is indirected so tests can stub site construction.
var siteBuilder = static.New

func main() {
	if err := runBuild(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("static build: %v", err)
	}
}

func runBuild(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("static-build", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to a YAML site configuration file")
	sources := fs.String("sources", "", "Comma separated source paths (overrides config)")
	outputDir := fs.String("output", "", "Output directory (overrides config)")
	template := fs.String("template", "", "Page template path (overrides config)")
	logLevel := fs.String("log-level", "", "Logging level (overrides config)")
	dryRun := fs.Bool("dry-run", false, "Parse and list articles without writing the site")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := static.DefaultConfig()
	if *configPath != "" {
		loaded, err := static.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if *sources != "" {
		cfg.Sources = splitSources(*sources)
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}
	if *template != "" {
		cfg.Output.Template = *template
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	site, err := siteBuilder(cfg)
	if err != nil {
		return fmt.Errorf("configure site: %w", err)
	}

	if *dryRun {
		articles, skipped, err := site.Collect(ctx)
		if err != nil {
			return err
		}
		for _, article := range articles {
			fmt.Fprintf(out, "%s  %s  %s\n",
				article.Created.Format("2006-01-02"), article.Slug, article.Title)
		}
		fmt.Fprintf(out, "%d article(s), %d skipped\n", len(articles), skipped)
		return nil
	}

	result, err := site.Build(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "site generated in %s (%d article(s), %d skipped, build %s)\n",
		result.OutputDir, result.ArticlesParsed, result.FilesSkipped, result.BuildID)
	return nil
}

func splitSources(value string) []string {
	parts := strings.Split(value, ",")
	sources := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sources = append(sources, trimmed)
		}
	}
	return sources
}
