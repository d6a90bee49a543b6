package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Let's configure sitemap generation for your site.")
	fmt.Println()

	if _, err := os.Stat(path); err == nil {
		overwrite := promptui.Prompt{
			Label:     fmt.Sprintf("%s already exists. Overwrite", path),
			IsConfirm: true,
		}
		if _, err := overwrite.Run(); err != nil {
			if errors.Is(err, promptui.ErrAbort) {
				return nil, fmt.Errorf("keeping existing %s", path)
			}
			return nil, fmt.Errorf("overwrite confirmation: %w", err)
		}
	}

	defaults := DefaultConfig()

	// 1. Site origin.
	sitePrompt := promptui.Prompt{
		Label:    "Site URL (no trailing slash)",
		Default:  defaults.SiteURL,
		Validate: ValidateSiteURL,
	}
	siteURL, err := sitePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site url: %w", err)
	}

	// 2. Content roots.
	blogPrompt := promptui.Prompt{
		Label:    "Blog content directory",
		Default:  defaults.BlogDir,
		Validate: requireValue,
	}
	blogDir, err := blogPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("blog dir: %w", err)
	}

	routesPrompt := promptui.Prompt{
		Label:    "Routes content directory",
		Default:  defaults.RoutesDir,
		Validate: requireValue,
	}
	routesDir, err := routesPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("routes dir: %w", err)
	}

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:    "Output directory for sitemap files",
		Default:  defaults.OutputDir,
		Validate: requireValue,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. Chunk size.
	maxPrompt := promptui.Prompt{
		Label:    "Max URLs per sitemap file",
		Default:  strconv.Itoa(defaults.MaxURLsPerSitemap),
		Validate: validateMaxURLs,
	}
	maxStr, err := maxPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("max urls: %w", err)
	}
	maxURLs, _ := strconv.Atoi(strings.TrimSpace(maxStr))

	cfg := defaults
	cfg.SiteURL = strings.TrimSpace(siteURL)
	cfg.BlogDir = strings.TrimSpace(blogDir)
	cfg.RoutesDir = strings.TrimSpace(routesDir)
	cfg.OutputDir = strings.TrimSpace(outputDir)
	cfg.MaxURLsPerSitemap = maxURLs

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	fmt.Println("Edit main_pages there to change the fixed page list.")
	return cfg, nil
}

func requireValue(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("a value is required")
	}
	return nil
}

func validateMaxURLs(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("must be a whole number")
	}
	if n < 1 || n > ProtocolMaxURLs {
		return fmt.Errorf("must be between 1 and %d", ProtocolMaxURLs)
	}
	return nil
}
