// Package render turns a content tree into navigation output.
package render

import (
	"path"
	"strings"

	"github.com/itsmostafa/gonav/internal/content"
)

// GeneratedComment marks HTML output as machine-written.
const GeneratedComment = "<!-- Auto-generated from folder structure -->"

// HTML renders the whole tree under root as a single navigation fragment.
// Within every directory, pages and subdirectories are interleaved in
// ascending order of their raw names.
func HTML(root *content.Directory) string {
	var sb strings.Builder
	sb.WriteString(GeneratedComment)
	sb.WriteString("\n<h2>")
	sb.WriteString(root.Name())
	sb.WriteString("</h2><ul>")
	writeChildren(&sb, root)
	sb.WriteString("</ul>")
	return sb.String()
}

func writeDirectory(sb *strings.Builder, d *content.Directory) {
	sb.WriteString("<li><p>")
	sb.WriteString(d.Name())
	sb.WriteString("</p><ul>")
	writeChildren(sb, d)
	sb.WriteString("</ul></li>")
}

func writePage(sb *strings.Builder, p content.Page) {
	sb.WriteString(`<li><a href="`)
	sb.WriteString(stripExt(p.Path))
	sb.WriteString(`">`)
	sb.WriteString(p.Title)
	sb.WriteString("</a></li>")
}

// writeChildren merges the already sorted pages and subdirectories of d.
func writeChildren(sb *strings.Builder, d *content.Directory) {
	pages, dirs := d.Pages, d.Subdirectories
	for len(pages) > 0 || len(dirs) > 0 {
		if len(dirs) == 0 || (len(pages) > 0 && pages[0].Name() < dirs[0].BaseName()) {
			writePage(sb, pages[0])
			pages = pages[1:]
			continue
		}
		writeDirectory(sb, dirs[0])
		dirs = dirs[1:]
	}
}

func stripExt(p string) string {
	return strings.TrimSuffix(p, path.Ext(p))
}
