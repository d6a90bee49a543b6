package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ryokome/sitemapgen/internal/progress"
	"github.com/ryokome/sitemapgen/internal/sitemap"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the sitemap files and sitemap index",
	Long: `Writes sitemap-main.xml from the configured main pages, sitemap-blog.xml
from the blog directory, one sitemap-routes-N.xml per chunk of the routes
directory, and finally sitemap.xml referencing all of them. Existing files
are overwritten.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addOverrideFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	start := time.Now()
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Generating sitemaps for %s...\n", cfg.SiteURL)

	builder := sitemap.NewBuilder(optionsFromConfig(cfg))
	if !quiet {
		builder.Reporter = progress.NewReporter(cmd.ErrOrStderr())
	}

	summary, err := builder.Run()
	if err != nil {
		return fmt.Errorf("generating sitemaps: %w", err)
	}

	fmt.Fprintln(out, "Sitemaps generated successfully")
	fmt.Fprintf(out, "   Main pages: %d\n", summary.MainPages)
	fmt.Fprintf(out, "   Blog pages: %d\n", summary.BlogPages)
	fmt.Fprintf(out, "   Route pages: %d\n", summary.RoutePages)
	fmt.Fprintf(out, "   Route sitemaps: %d\n", summary.RouteSitemaps)

	if verbose {
		fmt.Fprintln(out)
		for _, name := range summary.Files {
			fmt.Fprintf(out, "  wrote %s\n", filepath.Join(cfg.OutputDir, name))
		}
		fmt.Fprintf(out, "Done in %s\n", time.Since(start).Round(time.Millisecond))
	}

	return nil
}
