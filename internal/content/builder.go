package content

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"

	billy "github.com/go-git/go-billy/v5"

	"github.com/itsmostafa/gonav/internal/header"
)

// DefaultExtension is the extension of content pages.
const DefaultExtension = ".md"

var (
	// ErrNotDirectory is returned when the build root is not a directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrAmbiguousIndex is returned when a directory holds more than one
	// index page, e.g. both index.md and Index.md.
	ErrAmbiguousIndex = errors.New("more than one index page")
)

// Builder scans a filesystem and produces a Directory tree.
type Builder struct {
	fs             billy.Filesystem
	maxHeaderBytes int
	extension      string
	reservedName   string
	log            *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithMaxHeaderBytes sets how many leading bytes of each page are searched
// for a header.
func WithMaxHeaderBytes(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.maxHeaderBytes = n
		}
	}
}

// WithExtension sets the page extension, matched case-insensitively.
func WithExtension(ext string) Option {
	return func(b *Builder) {
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		b.extension = ext
	}
}

// WithReservedName excludes files with exactly this name from the pages of
// every directory. Used for generated navigation files.
func WithReservedName(name string) Option {
	return func(b *Builder) {
		b.reservedName = name
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// NewBuilder creates a Builder reading from fs.
func NewBuilder(fs billy.Filesystem, opts ...Option) *Builder {
	b := &Builder{
		fs:             fs,
		maxHeaderBytes: header.DefaultMaxBytes,
		extension:      DefaultExtension,
		log:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build scans root recursively. Any page with an invalid header aborts the
// build and no tree is returned.
func (b *Builder) Build(root string) (*Directory, error) {
	root = cleanPath(root)

	info, err := b.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}

	return b.build(root)
}

func (b *Builder) build(dir string) (*Directory, error) {
	entries, err := b.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var pages []Page
	var subdirs []*Directory
	for _, entry := range entries {
		entryPath := path.Join(dir, entry.Name())

		switch {
		case entry.IsDir():
			sub, err := b.build(entryPath)
			if err != nil {
				return nil, err
			}
			subdirs = append(subdirs, sub)
		case b.isPage(entry):
			page, err := b.readPage(entryPath)
			if err != nil {
				return nil, err
			}
			pages = append(pages, page)
		}
	}

	sort.Slice(pages, func(i, j int) bool {
		return pages[i].Name() < pages[j].Name()
	})
	sort.Slice(subdirs, func(i, j int) bool {
		return subdirs[i].BaseName() < subdirs[j].BaseName()
	})

	if err := checkSingleIndex(dir, pages); err != nil {
		return nil, err
	}

	b.log.Debug("scanned directory", "dir", dir, "pages", len(pages), "subdirs", len(subdirs))
	return NewDirectory(dir, pages, subdirs), nil
}

// isPage reports whether entry is a regular file with the page extension
// that is not reserved for generated output.
func (b *Builder) isPage(entry os.FileInfo) bool {
	if !entry.Mode().IsRegular() {
		return false
	}
	name := entry.Name()
	if b.reservedName != "" && name == b.reservedName {
		return false
	}
	return strings.EqualFold(path.Ext(name), b.extension)
}

func (b *Builder) readPage(pagePath string) (Page, error) {
	f, err := b.fs.Open(pagePath)
	if err != nil {
		return Page{}, fmt.Errorf("open %s: %w", pagePath, err)
	}
	defer f.Close()

	title, err := header.TitleFrom(pagePath, f, b.maxHeaderBytes)
	if err != nil {
		return Page{}, err
	}
	return Page{Path: pagePath, Title: title}, nil
}

func checkSingleIndex(dir string, pages []Page) error {
	var found []string
	for _, p := range pages {
		if p.IsIndex() {
			found = append(found, p.Name())
		}
	}
	if len(found) > 1 {
		return fmt.Errorf("%s: %w: %s", dir, ErrAmbiguousIndex, strings.Join(found, ", "))
	}
	return nil
}

func cleanPath(p string) string {
	p = path.Clean(strings.ReplaceAll(p, "\\", "/"))
	if p == "" {
		return "."
	}
	return p
}
