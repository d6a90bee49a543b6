package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ryokome/sitemapgen/internal/config"
)

var (
	cfgFile string
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "sitemapgen",
	Short: "Generate sitemap files for the Ryokome static site",
	Long: `sitemapgen walks the site's blog and routes content directories, turns
every HTML file into a public URL, and writes sitemaps.org compliant
sitemap files plus a sitemap index. Route URLs are split across as many
files as needed to stay under the per-file URL cap.

Run without a subcommand to generate.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGenerate,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")
	addOverrideFlags(rootCmd)
}
