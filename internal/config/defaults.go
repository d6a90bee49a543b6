package config

import "github.com/ryokome/sitemapgen/internal/sitemap"

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".sitemap.yml"

// EnvPrefix marks environment variables that override file settings.
const EnvPrefix = "SITEMAPGEN_"

const (
	DefaultSiteURL = "https://ryokome.com"

	// ProtocolMaxURLs is the sitemaps.org per-file URL limit.
	ProtocolMaxURLs = sitemap.ProtocolMaxURLs
)

// DefaultMainPages are the hand-maintained top-level pages of the site.
var DefaultMainPages = []string{
	"/",
	"/flights",
	"/cars",
	"/hotels",
	"/about",
	"/privacy-policy",
	"/terms-of-service",
	"/cookie-policy",
	"/affiliate-disclosure",
}

// DefaultConfig returns a Config that reproduces the site's stock layout.
func DefaultConfig() *Config {
	return &Config{
		SiteURL:           DefaultSiteURL,
		MaxURLsPerSitemap: ProtocolMaxURLs,
		MainPages:         append([]string(nil), DefaultMainPages...),
		BlogDir:           "blog",
		RoutesDir:         "routes",
		OutputDir:         ".",
	}
}
