package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ryokome/sitemapgen/internal/sitemap"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check previously generated sitemap files",
	Long: `Reads sitemap.xml from the output directory and checks that every sitemap
it references exists, parses, stays within the URL cap, and only lists
URLs under the configured site origin.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	addOverrideFlags(verifyCmd)
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	report, err := sitemap.Verify(cfg.OutputDir, cfg.SiteURL, cfg.MaxURLsPerSitemap)
	if report != nil && verbose {
		for _, part := range report.Parts {
			fmt.Fprintf(out, "  ok %s (%d URLs)\n", part.Name, part.URLs)
		}
	}
	if err != nil {
		return fmt.Errorf("verifying %s: %w", filepath.Join(cfg.OutputDir, sitemap.IndexFile), err)
	}

	fmt.Fprintf(out, "%s OK: %d sitemaps, %d URLs\n", sitemap.IndexFile, len(report.Parts), report.Total)
	return nil
}
