package sitemap

import (
	"encoding/xml"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var (
	// ErrMissingPart means the index references a file that is not on disk.
	ErrMissingPart = errors.New("referenced sitemap not found")
	// ErrOverCap means a sitemap holds more URLs than allowed.
	ErrOverCap = errors.New("sitemap exceeds URL cap")
	// ErrForeignURL means a location does not belong to the site origin.
	ErrForeignURL = errors.New("location outside site origin")
)

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	URLs    []struct {
		Loc string `xml:"loc"`
	} `xml:"url"`
}

type sitemapIndex struct {
	XMLName  xml.Name `xml:"sitemapindex"`
	Sitemaps []struct {
		Loc string `xml:"loc"`
	} `xml:"sitemap"`
}

// PartReport describes one sitemap referenced from the index.
type PartReport struct {
	Name string
	URLs int
}

// Report is the result of verifying a generated sitemap set.
type Report struct {
	Parts []PartReport
	Total int
}

// ProtocolMaxURLs is the sitemaps.org per-file URL limit.
const ProtocolMaxURLs = 50000

// Verify reads the index in dir and checks every sitemap it references:
// the file must exist next to the index, parse as a urlset, and only list
// locations under origin. Route chunks may hold at most maxURLs entries;
// the single main and blog files are only held to ProtocolMaxURLs.
func Verify(dir, origin string, maxURLs int) (*Report, error) {
	var index sitemapIndex
	if err := decodeFile(filepath.Join(dir, IndexFile), &index); err != nil {
		return nil, err
	}

	report := &Report{}
	for _, entry := range index.Sitemaps {
		if !underOrigin(entry.Loc, origin) {
			return report, fmt.Errorf("%s: %q: %w", IndexFile, entry.Loc, ErrForeignURL)
		}
		name, err := fileName(entry.Loc)
		if err != nil {
			return report, fmt.Errorf("%s: %w", IndexFile, err)
		}

		var set urlSet
		if err := decodeFile(filepath.Join(dir, name), &set); err != nil {
			return report, err
		}
		limit := capFor(name, maxURLs)
		if len(set.URLs) > limit {
			return report, fmt.Errorf("%s: %d URLs, cap %d: %w", name, len(set.URLs), limit, ErrOverCap)
		}
		for _, u := range set.URLs {
			if !underOrigin(u.Loc, origin) {
				return report, fmt.Errorf("%s: %q: %w", name, u.Loc, ErrForeignURL)
			}
		}

		report.Parts = append(report.Parts, PartReport{Name: name, URLs: len(set.URLs)})
		report.Total += len(set.URLs)
	}
	return report, nil
}

// capFor returns the URL limit for a sitemap file. Only route sitemaps are
// chunked, so only they are held to the configured cap.
func capFor(name string, maxURLs int) int {
	if isRouteFile(name) && maxURLs > 0 && maxURLs < ProtocolMaxURLs {
		return maxURLs
	}
	return ProtocolMaxURLs
}

func isRouteFile(name string) bool {
	var n int
	_, err := fmt.Sscanf(name, routeFormat, &n)
	return err == nil && RouteFile(n) == name
}

func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", path, ErrMissingPart)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := xml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func underOrigin(loc, origin string) bool {
	return loc == origin || strings.HasPrefix(loc, origin+"/")
}

// fileName extracts the sitemap file name from its absolute location.
func fileName(loc string) (string, error) {
	u, err := url.Parse(loc)
	if err != nil {
		return "", fmt.Errorf("invalid location %q: %w", loc, err)
	}
	name := path.Base(u.Path)
	if name == "/" || name == "." || !strings.HasSuffix(name, ".xml") {
		return "", fmt.Errorf("location %q does not name a sitemap file", loc)
	}
	return name, nil
}
