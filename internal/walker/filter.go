package walker

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// HTMLSuffix is the file name suffix that marks a crawlable page.
const HTMLSuffix = ".html"

// indexFile maps to the URL of its containing directory.
const indexFile = "index.html"

// IsHTML reports whether a file name carries the page suffix.
func IsHTML(name string) bool {
	return strings.HasSuffix(name, HTMLSuffix)
}

// MatchesExclude returns true if the given relative path matches any of the
// exclude patterns. If patterns is empty, nothing is excluded.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny checks if relPath matches any of the given glob patterns.
// Patterns are tried against the full path and then the base name.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := filepath.Base(normalized)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.Match(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

// ValidatePatterns reports the first malformed glob in patterns.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return &PatternError{Pattern: p}
		}
	}
	return nil
}

// PatternError is returned for an exclude glob doublestar cannot parse.
type PatternError struct {
	Pattern string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("walker: invalid exclude pattern %q", e.Pattern)
}
