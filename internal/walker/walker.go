package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// WalkerConfig controls the behaviour of CollectHTMLPaths.
type WalkerConfig struct {
	RootDir string   // Content root to walk. May not exist.
	Exclude []string // Glob patterns; matching files are skipped.
}

// CollectHTMLPaths walks config.RootDir and returns the URL path of every
// HTML page below it, sorted lexicographically.
//
// A root that does not exist yields an empty result and no error, so a site
// without a blog or routes directory yet still builds. Any other filesystem
// error aborts the walk.
func CollectHTMLPaths(config WalkerConfig) ([]string, error) {
	root := config.RootDir

	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("walker: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("walker: %s is not a directory", root)
	}

	paths := []string{}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		name := d.Name()
		if !IsHTML(name) {
			return nil
		}

		regular, err := isRegularFile(path, d)
		if err != nil {
			return err
		}
		if !regular {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if MatchesExclude(relPath, config.Exclude) {
			return nil
		}

		paths = append(paths, URLPath(relPath))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}

	sort.Strings(paths)
	return paths, nil
}

// URLPath maps a path relative to a content root to its public URL path.
//
//	index.html        -> /
//	guides/index.html -> /guides/
//	guides/tokyo.html -> /guides/tokyo
func URLPath(relPath string) string {
	rel := strings.TrimPrefix(filepath.ToSlash(relPath), "./")

	dir, base := "", rel
	if i := strings.LastIndex(rel, "/"); i >= 0 {
		dir, base = rel[:i+1], rel[i+1:]
	}

	if base == indexFile {
		return "/" + dir
	}
	return "/" + dir + strings.TrimSuffix(base, HTMLSuffix)
}

// isRegularFile reports whether d is a regular file, following a symlink
// to see what it points at. Symlinked directories are not descended into.
func isRegularFile(path string, d fs.DirEntry) (bool, error) {
	if d.Type().IsRegular() {
		return true, nil
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
