package header

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// Fields holds the header keys the generator reads or writes.
type Fields struct {
	Title  string `yaml:"title"`
	Layout string `yaml:"layout"`
}

// Decode parses the complete front matter of r as structured data. Unlike
// Title it requires the header to be well-formed YAML, so it catches values
// the title scan accepts but the site generator would reject.
func Decode(r io.Reader) (Fields, error) {
	var fields Fields
	if _, err := frontmatter.MustParse(r, &fields); err != nil {
		return Fields{}, fmt.Errorf("parse front matter: %w", err)
	}
	return fields, nil
}

// Render produces a minimal header block for f, terminated by a newline.
// Empty fields are left out. Values YAML would not read back as the same
// plain string are quoted.
func Render(f Fields) string {
	lines := []string{Delimiter}
	if f.Title != "" {
		lines = append(lines, titleMarker+" "+scalar(f.Title))
	}
	if f.Layout != "" {
		lines = append(lines, "layout: "+scalar(f.Layout))
	}
	lines = append(lines, Delimiter, "")
	return strings.Join(lines, "\n")
}

// scalar formats s as a single-line YAML string that never contains the
// header delimiter.
func scalar(s string) string {
	b, err := yaml.Marshal(s)
	out := strings.TrimSuffix(string(b), "\n")
	if err == nil && !strings.Contains(out, "\n") && !strings.Contains(out, Delimiter) {
		return out
	}
	quoted := strconv.Quote(s)
	return strings.ReplaceAll(quoted, Delimiter, `-\x2d-`)
}

// unquote returns the string a quoted YAML scalar stands for. Plain values
// and values that do not parse are returned as they are.
func unquote(v string) string {
	if !strings.HasPrefix(v, `"`) && !strings.HasPrefix(v, "'") {
		return v
	}
	var s string
	if err := yaml.Unmarshal([]byte(v), &s); err != nil {
		return v
	}
	return s
}
