package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryokome/sitemapgen/internal/config"
	"github.com/ryokome/sitemapgen/internal/sitemap"
)

// addOverrideFlags registers flags that take precedence over the config file.
func addOverrideFlags(cmd *cobra.Command) {
	cmd.Flags().String("site-url", "", "site origin prefixed to every URL (overrides config)")
	cmd.Flags().Int("max-urls", 0, "max URLs per sitemap file (overrides config)")
	cmd.Flags().String("blog-dir", "", "blog content directory (overrides config)")
	cmd.Flags().String("routes-dir", "", "routes content directory (overrides config)")
	cmd.Flags().String("output", "", "output directory for sitemap files (overrides config)")
}

// loadConfig loads the config, applies flag overrides and validates the
// result, providing a user-friendly error.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `sitemapgen init` to create a config file", err)
	}

	flags := cmd.Flags()
	if v, _ := flags.GetString("site-url"); v != "" {
		cfg.SiteURL = v
	}
	if v, _ := flags.GetInt("max-urls"); v > 0 {
		cfg.MaxURLsPerSitemap = v
	}
	if v, _ := flags.GetString("blog-dir"); v != "" {
		cfg.BlogDir = v
	}
	if v, _ := flags.GetString("routes-dir"); v != "" {
		cfg.RoutesDir = v
	}
	if v, _ := flags.GetString("output"); v != "" {
		cfg.OutputDir = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// optionsFromConfig maps the loaded configuration onto builder options.
func optionsFromConfig(cfg *config.Config) sitemap.Options {
	return sitemap.Options{
		SiteURL:           cfg.SiteURL,
		MaxURLsPerSitemap: cfg.MaxURLsPerSitemap,
		MainPages:         cfg.MainPages,
		BlogDir:           cfg.BlogDir,
		RoutesDir:         cfg.RoutesDir,
		OutputDir:         cfg.OutputDir,
		Exclude:           cfg.Exclude,
	}
}
