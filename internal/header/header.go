// Package header extracts metadata from the front matter block that opens
// every content page.
//
// A header is the text between the first two "---" delimiters of a file:
//
//	---
//	title: Getting started
//	layout: standard
//	---
//
// Only a bounded prefix of each file is inspected, so a title must appear
// within the first DefaultMaxBytes bytes unless a larger limit is configured.
package header

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Delimiter opens and closes a header block.
const Delimiter = "---"

// DefaultMaxBytes is the prefix size read when looking for a header.
const DefaultMaxBytes = 2048

const titleMarker = "title:"

var (
	// ErrMissingHeader means the prefix holds fewer than two delimiters.
	ErrMissingHeader = errors.New("must contain a valid header")
	// ErrNotAtStart means something other than whitespace precedes the header.
	ErrNotAtStart = errors.New("must begin with header")
	// ErrEmptyFile means nothing follows the closing delimiter.
	ErrEmptyFile = errors.New("empty file")
	// ErrNoTitle means the header has no usable title field.
	ErrNoTitle = errors.New("no title in header")
)

// Error reports a malformed header together with the offending file.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Path)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsStructural reports whether err means the header block itself is broken
// (missing, or not anchored at the start of the file).
func IsStructural(err error) bool {
	return errors.Is(err, ErrMissingHeader) || errors.Is(err, ErrNotAtStart)
}

// ReadPrefix reads at most limit bytes from r. A non-positive limit falls
// back to DefaultMaxBytes.
func ReadPrefix(r io.Reader, limit int) (string, error) {
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	b, err := io.ReadAll(io.LimitReader(r, int64(limit)))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Title returns the declared title of a page given the leading bytes of its
// content. path is only used to annotate errors.
func Title(path, prefix string) (string, error) {
	parts := strings.SplitN(prefix, Delimiter, 3)
	if len(parts) < 3 {
		return "", &Error{Path: path, Err: ErrMissingHeader}
	}

	before, block, after := parts[0], parts[1], parts[2]
	if strings.TrimSpace(before) != "" {
		return "", &Error{Path: path, Err: ErrNotAtStart}
	}
	if strings.TrimSpace(after) == "" {
		return "", &Error{Path: path, Err: ErrEmptyFile}
	}

	for _, line := range strings.Split(block, "\n") {
		rest, ok := strings.CutPrefix(strings.TrimLeft(line, " \t"), titleMarker)
		if !ok {
			continue
		}
		if title := strings.TrimSpace(unquote(strings.TrimSpace(rest))); title != "" {
			return title, nil
		}
		break
	}

	return "", &Error{Path: path, Err: ErrNoTitle}
}

// TitleFrom reads a bounded prefix from r and extracts its title.
func TitleFrom(path string, r io.Reader, limit int) (string, error) {
	prefix, err := ReadPrefix(r, limit)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return Title(path, prefix)
}
