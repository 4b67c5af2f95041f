package static

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestValidate_MissingOutputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Dir = " "

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected a validation error")
	}
	if !strings.Contains(err.Error(), "output directory is required") {
		t.Fatalf("expected the output dir error, got %v", err)
	}
}

func TestValidate_MissingSources(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sources = nil

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "source path") {
		t.Fatalf("expected the sources error, got %v", err)
	}
}

func TestValidate_ProviderWithoutTemplate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShareProviders = append(cfg.ShareProviders, ShareProviderConfig{Name: "Broken"})

	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected a validation error for the template-less provider")
	}
}

func TestValidate_UnknownLoggingLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected a validation error for the unknown level")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	source := strings.Join([]string{
		"site:",
		"  title: My Blog",
		"  description: field notes",
		"  base_url: https://blog.example.com",
		"sources:",
		"  - notes",
		"output:",
		"  dir: dist",
		"share_providers:",
		"  - name: X",
		"    template: https://x.com/intent?text={TEXT}",
		"logging:",
		"  level: debug",
	}, "\n")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Site.Title != "My Blog" {
		t.Fatalf("title mismatch: %q", cfg.Site.Title)
	}
	if len(cfg.Sources) != 1 || cfg.Sources[0] != "notes" {
		t.Fatalf("expected sources overridden, got %v", cfg.Sources)
	}
	if cfg.Output.Dir != "dist" {
		t.Fatalf("output dir mismatch: %q", cfg.Output.Dir)
	}
	if len(cfg.ShareProviders) != 1 || cfg.ShareProviders[0].Name != "X" {
		t.Fatalf("expected providers replaced, got %v", cfg.ShareProviders)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected logging level overridden, got %q", cfg.Logging.Level)
	}
	// Untouched sections keep their defaults.
	if cfg.Logging.Format != "console" {
		t.Fatalf("expected default logging format retained, got %q", cfg.Logging.Format)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("sources: [unterminated"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected a decode error")
	}
}

func TestSettingsMergesMetadata(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Site.Title = "My Blog"
	cfg.Site.Metadata = map[string]any{
		"author": "me",
		"title":  "shadowed",
	}

	settings := cfg.settings()
	if settings["title"] != "My Blog" {
		t.Fatalf("reserved keys must win over metadata, got %v", settings["title"])
	}
	if settings["author"] != "me" {
		t.Fatalf("expected metadata merged, got %v", settings["author"])
	}
}
