package sitemap

import (
	"bytes"
	"encoding/xml"
)

const (
	xmlProlog = `<?xml version="1.0" encoding="UTF-8"?>`

	// Namespace is the sitemaps.org 0.9 schema namespace.
	Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
)

// RenderURLSet returns the urlset document for urls, each prefixed with
// origin. Entries appear in input order.
func RenderURLSet(origin string, urls []string) []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlProlog + "\n")
	buf.WriteString(`<urlset xmlns="` + Namespace + `">` + "\n")
	for i, u := range urls {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString("  <url><loc>")
		writeEscaped(&buf, origin+u)
		buf.WriteString("</loc></url>")
	}
	buf.WriteString("\n</urlset>")
	return buf.Bytes()
}

// RenderIndex returns the sitemapindex document listing origin/name for
// each sitemap file name, in input order.
func RenderIndex(origin string, files []string) []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlProlog + "\n")
	buf.WriteString(`<sitemapindex xmlns="` + Namespace + `">` + "\n")
	for _, name := range files {
		buf.WriteString("  <sitemap>\n")
		buf.WriteString("    <loc>")
		writeEscaped(&buf, origin+"/"+name)
		buf.WriteString("</loc>\n")
		buf.WriteString("  </sitemap>\n")
	}
	buf.WriteString("</sitemapindex>")
	return buf.Bytes()
}

// writeEscaped writes s as XML character data.
func writeEscaped(buf *bytes.Buffer, s string) {
	// EscapeText only fails if the writer does; bytes.Buffer never does.
	_ = xml.EscapeText(buf, []byte(s))
}
