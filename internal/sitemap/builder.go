package sitemap

import (
	"fmt"
	"os"

	"github.com/ryokome/sitemapgen/internal/progress"
	"github.com/ryokome/sitemapgen/internal/walker"
)

// Options describes one generation run.
type Options struct {
	SiteURL           string   // Origin prefixed to every path, no trailing slash.
	MaxURLsPerSitemap int      // Cap on URLs in a single route sitemap.
	MainPages         []string // Fixed top-level pages, written as given.
	BlogDir           string   // Blog content root; may not exist.
	RoutesDir         string   // Routes content root; may not exist.
	OutputDir         string   // Where sitemap files are written.
	Exclude           []string // Glob patterns skipped in both content roots.
}

// Summary reports what a run produced.
type Summary struct {
	MainPages     int
	BlogPages     int
	RoutePages    int
	RouteSitemaps int
	Files         []string // Files written, in write order; the index is last.
}

// Builder generates the full set of sitemap files for a site.
type Builder struct {
	opts     Options
	writer   *Writer
	Reporter progress.Reporter
}

// NewBuilder returns a Builder for opts that reports no progress.
func NewBuilder(opts Options) *Builder {
	return &Builder{
		opts:     opts,
		writer:   &Writer{Dir: opts.OutputDir, Origin: opts.SiteURL},
		Reporter: progress.Nop{},
	}
}

// Run writes the main, blog and route sitemaps followed by the index, in
// that order. The first failure aborts the run; files written before it
// are left in place.
func (b *Builder) Run() (*Summary, error) {
	if err := os.MkdirAll(b.opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	summary := &Summary{MainPages: len(b.opts.MainPages)}

	// Main, blog and the index; route chunks are added once counted.
	b.Reporter.Start(3)
	defer b.Reporter.Finish()
	step := 0

	step++
	b.Reporter.Update(step, MainFile)
	if err := b.writer.WriteSitemap(MainFile, b.opts.MainPages); err != nil {
		return nil, err
	}
	summary.Files = append(summary.Files, MainFile)

	blogURLs, err := walker.CollectHTMLPaths(walker.WalkerConfig{
		RootDir: b.opts.BlogDir,
		Exclude: b.opts.Exclude,
	})
	if err != nil {
		return nil, fmt.Errorf("collecting blog pages: %w", err)
	}
	summary.BlogPages = len(blogURLs)

	step++
	b.Reporter.Update(step, BlogFile)
	if err := b.writer.WriteSitemap(BlogFile, blogURLs); err != nil {
		return nil, err
	}
	summary.Files = append(summary.Files, BlogFile)

	routeURLs, err := walker.CollectHTMLPaths(walker.WalkerConfig{
		RootDir: b.opts.RoutesDir,
		Exclude: b.opts.Exclude,
	})
	if err != nil {
		return nil, fmt.Errorf("collecting route pages: %w", err)
	}
	summary.RoutePages = len(routeURLs)

	chunks := Partition(routeURLs, b.opts.MaxURLsPerSitemap)
	b.Reporter.SetTotal(len(chunks) + 3)

	routeFiles := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		name := RouteFile(i + 1)
		step++
		b.Reporter.Update(step, name)
		if err := b.writer.WriteSitemap(name, chunk); err != nil {
			return nil, err
		}
		routeFiles = append(routeFiles, name)
	}
	summary.RouteSitemaps = len(routeFiles)
	summary.Files = append(summary.Files, routeFiles...)

	indexed := append([]string{MainFile, BlogFile}, routeFiles...)
	step++
	b.Reporter.Update(step, IndexFile)
	if err := b.writer.WriteIndex(IndexFile, indexed); err != nil {
		return nil, err
	}
	summary.Files = append(summary.Files, IndexFile)

	return summary, nil
}
