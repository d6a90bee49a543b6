package config

// Config is the top-level sitemapgen configuration, corresponding to .sitemap.yml.
type Config struct {
	SiteURL           string   `yaml:"site_url" koanf:"site_url"`
	MaxURLsPerSitemap int      `yaml:"max_urls_per_sitemap" koanf:"max_urls_per_sitemap"`
	MainPages         []string `yaml:"main_pages" koanf:"main_pages"`
	BlogDir           string   `yaml:"blog_dir" koanf:"blog_dir"`
	RoutesDir         string   `yaml:"routes_dir" koanf:"routes_dir"`
	OutputDir         string   `yaml:"output_dir" koanf:"output_dir"`
	Exclude           []string `yaml:"exclude,omitempty" koanf:"exclude"`
}
