package render

import (
	"strings"

	"github.com/itsmostafa/gonav/internal/content"
)

const (
	pagesHeading   = "### Pages"
	foldersHeading = "### Folders"
)

// Markdown renders the navigation listing for a single directory level:
// its non-index pages followed by its subdirectories. Links are relative to
// the directory. Sections without entries are left out, so an empty
// directory renders as "".
func Markdown(d *content.Directory) string {
	var sections []string
	if s := pagesSection(d); s != "" {
		sections = append(sections, s)
	}
	if s := foldersSection(d); s != "" {
		sections = append(sections, s)
	}
	return strings.Join(sections, "\n")
}

func pagesSection(d *content.Directory) string {
	lines := []string{pagesHeading}
	for _, p := range d.Pages {
		if p.IsIndex() {
			continue
		}
		lines = append(lines, link(p.Title, p.Stem()))
	}
	if len(lines) == 1 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func foldersSection(d *content.Directory) string {
	if len(d.Subdirectories) == 0 {
		return ""
	}
	lines := []string{foldersHeading}
	for _, sub := range d.Subdirectories {
		lines = append(lines, link(sub.Name(), sub.BaseName()))
	}
	return strings.Join(lines, "\n") + "\n"
}

func link(text, target string) string {
	return "- [" + text + "](" + target + ")"
}
