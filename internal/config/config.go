package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ryokome/sitemapgen/internal/walker"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SITEMAPGEN_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: SITEMAPGEN_SITE_URL -> site_url, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// Lists are replaced, not merged: decoding onto the populated default
	// slice would keep its tail.
	if k.Exists("main_pages") {
		cfg.MainPages = nil
	}
	if k.Exists("exclude") {
		cfg.Exclude = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if err := ValidateSiteURL(c.SiteURL); err != nil {
		return err
	}

	if c.MaxURLsPerSitemap < 1 || c.MaxURLsPerSitemap > ProtocolMaxURLs {
		return fmt.Errorf("max_urls_per_sitemap must be between 1 and %d, got %d", ProtocolMaxURLs, c.MaxURLsPerSitemap)
	}

	for _, p := range c.MainPages {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("main page %q must start with /", p)
		}
	}

	if c.BlogDir == "" {
		return fmt.Errorf("blog_dir is required")
	}
	if c.RoutesDir == "" {
		return fmt.Errorf("routes_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if err := walker.ValidatePatterns(c.Exclude); err != nil {
		return err
	}

	return nil
}

// ValidateSiteURL checks that s is an absolute http(s) origin that can be
// prefixed directly onto a URL path.
func ValidateSiteURL(s string) error {
	if s == "" {
		return fmt.Errorf("site_url is required")
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid site_url %q: %w", s, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid site_url %q: scheme must be http or https", s)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid site_url %q: missing host", s)
	}
	if strings.HasSuffix(s, "/") {
		return fmt.Errorf("invalid site_url %q: must not end with /", s)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("invalid site_url %q: query and fragment are not allowed", s)
	}
	return nil
}
