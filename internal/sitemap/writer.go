package sitemap

import (
	"fmt"
	"os"
	"path/filepath"
)

// Output file names.
const (
	MainFile    = "sitemap-main.xml"
	BlogFile    = "sitemap-blog.xml"
	IndexFile   = "sitemap.xml"
	routeFormat = "sitemap-routes-%d.xml"
)

// RouteFile returns the file name of the n-th route sitemap, counting from 1.
func RouteFile(n int) string {
	return fmt.Sprintf(routeFormat, n)
}

// Writer writes sitemap documents into Dir, prefixing locations with Origin.
// Every write replaces the target file; nothing is merged with earlier runs.
type Writer struct {
	Dir    string
	Origin string
}

// WriteSitemap writes a urlset document for urls to fileName.
func (w *Writer) WriteSitemap(fileName string, urls []string) error {
	return w.write(fileName, RenderURLSet(w.Origin, urls))
}

// WriteIndex writes a sitemapindex document referencing sitemapFiles.
func (w *Writer) WriteIndex(fileName string, sitemapFiles []string) error {
	return w.write(fileName, RenderIndex(w.Origin, sitemapFiles))
}

func (w *Writer) write(fileName string, data []byte) error {
	path := filepath.Join(w.Dir, fileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
