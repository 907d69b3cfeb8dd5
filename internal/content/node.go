// Package content models a directory of markdown pages as an ordered tree.
package content

import (
	"path"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IndexStem is the base name, without extension, of a directory's index page.
const IndexStem = "index"

// Page is a markdown file with a valid header.
type Page struct {
	Path  string
	Title string
}

// Name returns the file name of the page.
func (p Page) Name() string {
	return path.Base(p.Path)
}

// Stem returns the file name without its extension.
func (p Page) Stem() string {
	name := p.Name()
	return strings.TrimSuffix(name, path.Ext(name))
}

// IsIndex reports whether the page is its directory's index page.
func (p Page) IsIndex() bool {
	return strings.EqualFold(p.Stem(), IndexStem)
}

// Directory is a folder of pages and subfolders. Pages and Subdirectories
// are sorted by raw name and must not be modified after construction.
type Directory struct {
	Path           string
	Pages          []Page
	Subdirectories []*Directory
}

// NewDirectory returns a directory node owning the given children. Nil
// slices are replaced by empty ones.
func NewDirectory(dirPath string, pages []Page, subdirs []*Directory) *Directory {
	if pages == nil {
		pages = []Page{}
	}
	if subdirs == nil {
		subdirs = []*Directory{}
	}
	return &Directory{Path: dirPath, Pages: pages, Subdirectories: subdirs}
}

// BaseName returns the last element of the directory path.
func (d *Directory) BaseName() string {
	return path.Base(d.Path)
}

// Index returns the directory's index page, if it has one.
func (d *Directory) Index() (Page, bool) {
	for _, p := range d.Pages {
		if p.IsIndex() {
			return p, true
		}
	}
	return Page{}, false
}

// Name is the display name: the index page's title when there is one,
// otherwise DisplayName of the directory's base name.
func (d *Directory) Name() string {
	if index, ok := d.Index(); ok {
		return index.Title
	}
	return DisplayName(d.BaseName())
}

// IsEmpty reports whether the directory holds no pages at any depth.
func (d *Directory) IsEmpty() bool {
	if len(d.Pages) > 0 {
		return false
	}
	for _, sub := range d.Subdirectories {
		if !sub.IsEmpty() {
			return false
		}
	}
	return true
}

// WithoutEmpty returns a copy of the tree with every empty subdirectory
// removed. The receiver is not modified.
func (d *Directory) WithoutEmpty() *Directory {
	var subdirs []*Directory
	for _, sub := range d.Subdirectories {
		if sub.IsEmpty() {
			continue
		}
		subdirs = append(subdirs, sub.WithoutEmpty())
	}
	return NewDirectory(d.Path, d.Pages, subdirs)
}

// Walk traverses the tree depth-first, parents before children, stopping at
// the first error returned by fn.
func (d *Directory) Walk(fn func(*Directory) error) error {
	if d == nil {
		return nil
	}
	if err := fn(d); err != nil {
		return err
	}
	for _, sub := range d.Subdirectories {
		if err := sub.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// DisplayName turns a folder name such as "getting-started" into
// "Getting started". Surrounding spaces are dropped; a name that would end up
// empty, such as "-", is returned unchanged.
func DisplayName(name string) string {
	words := strings.TrimSpace(strings.ReplaceAll(name, "-", " "))
	if words == "" {
		return name
	}
	return capitalize(words)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
