package main

import (
	"os"

	"github.com/ryokome/sitemapgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
