// Package reconcile keeps a content directory consistent with its
// navigation: every directory gets an index page, a generated navigation
// file, and an include directive in the index pointing at that file.
//
// Work happens in two steps. BuildPlan inspects the tree and the filesystem
// and returns the writes needed; Apply performs them. Planning again after
// Apply on an unchanged tree only yields navigation rewrites with identical
// content.
package reconcile

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/itsmostafa/gonav/internal/content"
	"github.com/itsmostafa/gonav/internal/header"
	"github.com/itsmostafa/gonav/internal/render"
)

const (
	// DefaultNavigationFile is the reserved name of generated navigation files.
	DefaultNavigationFile = "__navigation.md"
	// DefaultIndexFile is the name given to index pages created on demand.
	DefaultIndexFile = "index.md"
	// DefaultLayout is the layout written into created index pages.
	DefaultLayout = "standard"
)

// OpKind describes how an operation touches its file.
type OpKind string

const (
	// OpCreate writes a new file and fails if it already exists.
	OpCreate OpKind = "create"
	// OpReplace writes a file, replacing any previous content.
	OpReplace OpKind = "replace"
	// OpAppend adds content to the end of an existing file.
	OpAppend OpKind = "append"
)

// Op is a single write instruction.
type Op struct {
	Kind    OpKind
	Path    string
	Content string
}

// Plan is the ordered list of writes for a tree, parents before children.
type Plan []Op

// Count returns the number of operations of the given kind.
func (p Plan) Count(kind OpKind) int {
	n := 0
	for _, op := range p {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Options configures planning.
type Options struct {
	NavigationFile string
	IndexFile      string
	Layout         string
	// SkipEmpty leaves directories without pages at any depth untouched and
	// keeps them out of their parent's navigation.
	SkipEmpty bool
	Logger    *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.NavigationFile == "" {
		o.NavigationFile = DefaultNavigationFile
	}
	if o.IndexFile == "" {
		o.IndexFile = DefaultIndexFile
	}
	if o.Layout == "" {
		o.Layout = DefaultLayout
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// IncludeDirective returns the include line that pulls navFile into a page.
func IncludeDirective(navFile string) string {
	return "{% include_relative " + navFile + " %}"
}

// BuildPlan computes the writes that reconcile root. It reads existing index
// pages from fs but never writes.
func BuildPlan(fs billy.Filesystem, root *content.Directory, opts Options) (Plan, error) {
	opts = opts.withDefaults()
	directive := IncludeDirective(opts.NavigationFile)

	if opts.SkipEmpty {
		if root.IsEmpty() {
			opts.Logger.Debug("nothing to reconcile", "dir", root.Path)
			return Plan{}, nil
		}
		root = root.WithoutEmpty()
	}

	var plan Plan
	err := root.Walk(func(d *content.Directory) error {
		index, hasIndex := d.Index()
		if !hasIndex {
			plan = append(plan, Op{
				Kind:    OpCreate,
				Path:    path.Join(d.Path, opts.IndexFile),
				Content: newIndexContent(d, opts.Layout, directive),
			})
		}

		plan = append(plan, Op{
			Kind:    OpReplace,
			Path:    path.Join(d.Path, opts.NavigationFile),
			Content: render.Markdown(d),
		})

		if hasIndex {
			suffix, err := includeSuffix(fs, index.Path, directive)
			if err != nil {
				return err
			}
			if suffix != "" {
				plan = append(plan, Op{Kind: OpAppend, Path: index.Path, Content: suffix})
			}
		}

		opts.Logger.Debug("planned directory", "dir", d.Path, "index", hasIndex, "pages", len(d.Pages), "subdirs", len(d.Subdirectories))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// newIndexContent is the body of an index page created for d. Its title
// matches the display name d already has, so later runs render the same
// navigation.
func newIndexContent(d *content.Directory, layout, directive string) string {
	h := header.Render(header.Fields{
		Title:  content.DisplayName(d.BaseName()),
		Layout: layout,
	})
	return h + "\n" + directive + "\n"
}

// includeSuffix returns what must be appended to the page at p so that it
// ends with directive, or "" when a line already equals it.
func includeSuffix(fs billy.Filesystem, p, directive string) (string, error) {
	data, err := util.ReadFile(fs, p)
	if err != nil {
		return "", fmt.Errorf("read index %s: %w", p, err)
	}

	text := string(data)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == directive {
			return "", nil
		}
	}

	var sb strings.Builder
	if text != "" && !strings.HasSuffix(text, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(directive)
	sb.WriteString("\n")
	return sb.String(), nil
}

// Apply executes plan against fs in order. The first failure stops it;
// writes already done are kept.
func Apply(fs billy.Filesystem, plan Plan, log *slog.Logger) error {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	for _, op := range plan {
		if err := applyOp(fs, op); err != nil {
			return fmt.Errorf("%s %s: %w", op.Kind, op.Path, err)
		}
		log.Info("wrote file", "op", string(op.Kind), "path", op.Path, "bytes", len(op.Content))
	}
	return nil
}

var errUnknownOp = errors.New("unknown operation")

func applyOp(fs billy.Filesystem, op Op) error {
	var flag int
	switch op.Kind {
	case OpCreate:
		flag = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	case OpReplace:
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case OpAppend:
		flag = os.O_WRONLY | os.O_APPEND
	default:
		return fmt.Errorf("%w: %q", errUnknownOp, op.Kind)
	}

	f, err := fs.OpenFile(op.Path, flag, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(f, op.Content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
