package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ryokome/sitemapgen/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize sitemapgen configuration with an interactive wizard",
	Long:  `Runs an interactive wizard for the site URL, content directories and output location, and writes the answers to the config file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
