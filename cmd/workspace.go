package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/itsmostafa/gonav/internal/config"
	"github.com/itsmostafa/gonav/internal/content"
	"github.com/itsmostafa/gonav/internal/version"
)

// openWorkspace returns the working directory as a filesystem together with
// the content root inside it. Paths rendered into navigation are relative
// to the working directory, so the content root must live below it.
func openWorkspace(c config.Config) (billy.Filesystem, string, error) {
	if err := c.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid configuration: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, "", err
	}

	root := c.ContentDir
	if filepath.IsAbs(root) {
		rel, err := filepath.Rel(wd, root)
		if err != nil {
			return nil, "", fmt.Errorf("content directory %s: %w", root, err)
		}
		root = rel
	}
	root = filepath.ToSlash(filepath.Clean(root))
	if root == ".." || strings.HasPrefix(root, "../") {
		return nil, "", fmt.Errorf("content directory %s must be inside %s", c.ContentDir, wd)
	}

	return osfs.New(wd), root, nil
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("generator", version.Generator())
}

// buildTree scans the content root. The navigation file name is reserved in
// both modes so output of an earlier markdown run is never read as a page.
func buildTree(fs billy.Filesystem, root string, c config.Config, log *slog.Logger) (*content.Directory, error) {
	return content.NewBuilder(fs,
		content.WithMaxHeaderBytes(c.MaxHeaderBytes),
		content.WithExtension(c.Extension),
		content.WithReservedName(c.NavigationFile),
		content.WithLogger(log),
	).Build(root)
}

// countPages returns the number of directories and pages under root.
func countPages(root *content.Directory) (dirs, pages int) {
	_ = root.Walk(func(d *content.Directory) error {
		dirs++
		pages += len(d.Pages)
		return nil
	})
	return dirs, pages
}
