package static

import (
	"errors"
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// ErrOutputDirRequired indicates a configuration without an output directory.
var ErrOutputDirRequired = errors.New("static config: output directory is required")

// ErrSourcesRequired indicates a configuration without any source paths.
var ErrSourcesRequired = errors.New("static config: at least one source path is required")

// Config aggregates everything a generation run needs. Fields intentionally
// use simple types so host applications can assemble one without the YAML
// loader.
type Config struct {
	Site           SiteConfig            `yaml:"site"`
	Sources        []string              `yaml:"sources"`
	Output         OutputConfig          `yaml:"output"`
	ShareProviders []ShareProviderConfig `yaml:"share_providers"`
	Logging        LoggingConfig         `yaml:"logging"`
}

// SiteConfig carries the site-wide settings handed to the page template.
type SiteConfig struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	BaseURL     string         `yaml:"base_url"`
	Metadata    map[string]any `yaml:"metadata"`
}

// OutputConfig controls where and how artifacts are written.
type OutputConfig struct {
	// Dir receives every generated artifact.
	Dir string `yaml:"dir"`
	// Template optionally points at a pongo2 template for the final page;
	// empty selects the embedded default.
	Template string `yaml:"template"`
}

// ShareProviderConfig pairs a provider name with its URL template. Templates
// may use the {URL}, {TITLE}, {TEXT} and {TAGS} placeholders.
type ShareProviderConfig struct {
	Name     string `yaml:"name"`
	Template string `yaml:"template"`
}

// LoggingConfig wires go-logger options through the module.
type LoggingConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	AddSource bool   `yaml:"add_source"`
}

// DefaultConfig returns the baseline configuration: markdown/text sources
// under ./content, output under ./public, console logging at info.
func DefaultConfig() Config {
	return Config{
		Sources: []string{"content"},
		Output: OutputConfig{
			Dir: "public",
		},
		ShareProviders: []ShareProviderConfig{
			{Name: "X", Template: "https://x.com/intent/post?text={TITLE}&url={URL}&hashtags={TAGS}"},
			{Name: "LinkedIn", Template: "https://www.linkedin.com/sharing/share-offsite/?url={URL}"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("static config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("static config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// Validate ensures the configuration can drive a run.
func (c Config) Validate() error {
	errs := validation.Errors{}

	if strings.TrimSpace(c.Output.Dir) == "" {
		errs["output.dir"] = ErrOutputDirRequired
	}

	if len(c.Sources) == 0 {
		errs["sources"] = ErrSourcesRequired
	}
	for _, source := range c.Sources {
		if strings.TrimSpace(source) == "" {
			errs["sources"] = validation.NewError("static.config.source_invalid",
				"sources must not contain empty paths")
			break
		}
	}

	for i, provider := range c.ShareProviders {
		if strings.TrimSpace(provider.Name) == "" {
			errs[fmt.Sprintf("share_providers[%d].name", i)] = validation.NewError(
				"static.config.provider_name_required", "share provider name is required")
		}
		if strings.TrimSpace(provider.Template) == "" {
			errs[fmt.Sprintf("share_providers[%d].template", i)] = validation.NewError(
				"static.config.provider_template_required", "share provider template is required")
		}
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		errs["logging.level"] = validation.NewError("static.config.logging_level_invalid",
			fmt.Sprintf("unknown logging level %q", c.Logging.Level))
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json", "pretty":
	default:
		errs["logging.format"] = validation.NewError("static.config.logging_format_invalid",
			fmt.Sprintf("unknown logging format %q", c.Logging.Format))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// settings flattens the site configuration into the free-form map exposed to
// the page template and the generator.
func (c Config) settings() map[string]any {
	settings := map[string]any{
		"title":       c.Site.Title,
		"description": c.Site.Description,
		"base_url":    c.Site.BaseURL,
	}
	for key, value := range c.Site.Metadata {
		if _, reserved := settings[key]; reserved {
			continue
		}
		settings[key] = value
	}
	return settings
}
