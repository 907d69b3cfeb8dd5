package config

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/itsmostafa/gonav/internal/content"
	"github.com/itsmostafa/gonav/internal/header"
	"github.com/itsmostafa/gonav/internal/reconcile"
)

// Config holds the settings shared by every command.
type Config struct {
	// Root of the content tree, relative to the working directory
	ContentDir string

	// HTML mode output file
	HTMLOutput string

	// Markdown mode file names
	NavigationFile string
	IndexFile      string
	Layout         string

	// Page scanning
	Extension      string
	MaxHeaderBytes int
}

// Default returns the settings used when nothing is overridden.
func Default() Config {
	return Config{
		ContentDir:     "content",
		HTMLOutput:     "_includes/navigation.html",
		NavigationFile: reconcile.DefaultNavigationFile,
		IndexFile:      reconcile.DefaultIndexFile,
		Layout:         reconcile.DefaultLayout,
		Extension:      content.DefaultExtension,
		MaxHeaderBytes: header.DefaultMaxBytes,
	}
}

// Load returns Default with GONAV_* environment overrides applied.
func Load() Config {
	def := Default()
	cfg := Config{
		ContentDir:     envOr("GONAV_CONTENT_DIR", def.ContentDir),
		HTMLOutput:     envOr("GONAV_HTML_OUTPUT", def.HTMLOutput),
		NavigationFile: envOr("GONAV_NAVIGATION_FILE", def.NavigationFile),
		IndexFile:      envOr("GONAV_INDEX_FILE", def.IndexFile),
		Layout:         envOr("GONAV_LAYOUT", def.Layout),
		Extension:      envOr("GONAV_EXTENSION", def.Extension),
		MaxHeaderBytes: envInt("GONAV_MAX_HEADER_BYTES", def.MaxHeaderBytes),
	}

	if cfg.MaxHeaderBytes <= 0 {
		cfg.MaxHeaderBytes = def.MaxHeaderBytes
	}

	return cfg
}

// Validate reports the first setting that cannot work, such as an index
// file the builder would not recognize as an index page.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ContentDir) == "" {
		return fmt.Errorf("content directory is required")
	}
	if c.MaxHeaderBytes <= 0 {
		return fmt.Errorf("max header bytes must be positive, got %d", c.MaxHeaderBytes)
	}
	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
		return fmt.Errorf("extension must look like \".md\", got %q", c.Extension)
	}
	for name, v := range map[string]string{
		"navigation file": c.NavigationFile,
		"index file":      c.IndexFile,
	} {
		if v == "" || path.Base(v) != v {
			return fmt.Errorf("%s must be a plain file name, got %q", name, v)
		}
	}
	// Created index pages must be picked up as pages on the next run.
	if !(content.Page{Path: c.IndexFile}).IsIndex() || !strings.EqualFold(path.Ext(c.IndexFile), c.Extension) {
		return fmt.Errorf("index file must be %s%s, got %q", content.IndexStem, c.Extension, c.IndexFile)
	}
	if c.NavigationFile == c.IndexFile {
		return fmt.Errorf("navigation file and index file must differ")
	}
	if c.HTMLOutput == "" {
		return fmt.Errorf("html output path is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
