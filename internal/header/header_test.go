package header

import (
	"errors"
	"strings"
	"testing"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"simple", "---\ntitle: Setup\nlayout: standard\n---\nBody text.\n", "Setup"},
		{"leading blank lines", "\n\n  \n---\ntitle: Guides\n---\nBody\n", "Guides"},
		{"trailing blank lines in body", "---\ntitle: Guides\n---\n\n\nBody\n\n\n", "Guides"},
		{"trims outer whitespace", "---\ntitle:    Spaced Out   \n---\nBody\n", "Spaced Out"},
		{"keeps inner whitespace", "---\ntitle: Hello   World\n---\nBody\n", "Hello   World"},
		{"title not first field", "---\nlayout: standard\ntitle: Second\n---\nBody\n", "Second"},
		{"ignores longer keys", "---\nsubtitle: Nope\ntitle: Yes\n---\nBody\n", "Yes"},
		{"indented key", "---\n  title: Indented\n---\nBody\n", "Indented"},
		{"crlf line endings", "---\r\ntitle: Windows\r\n---\r\nBody\r\n", "Windows"},
		{"first title wins", "---\ntitle: One\ntitle: Two\n---\nBody\n", "One"},
		{"double quoted", "---\ntitle: \"Quoted: title\"\n---\nBody\n", "Quoted: title"},
		{"single quoted", "---\ntitle: 'It''s here'\n---\nBody\n", "It's here"},
		{"unbalanced quote kept", "---\ntitle: \"Open\n---\nBody\n", "\"Open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, err := Title("page.md", tt.content)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if title != tt.expected {
				t.Errorf("Title() = %q, want %q", title, tt.expected)
			}
		})
	}
}

func TestTitleErrors(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		expected   error
		structural bool
	}{
		{"no delimiters", "title: X", ErrMissingHeader, true},
		{"single delimiter", "---\ntitle: X\nBody\n", ErrMissingHeader, true},
		{"empty content", "", ErrMissingHeader, true},
		{"text before header", "Intro\n---\ntitle: X\n---\nBody\n", ErrNotAtStart, true},
		{"nothing after header", "---\ntitle: X\n---\n", ErrEmptyFile, false},
		{"whitespace after header", "---\ntitle: X\n---\n  \n\t\n", ErrEmptyFile, false},
		{"no title field", "---\nlayout: standard\n---\nBody\n", ErrNoTitle, false},
		{"blank title", "---\ntitle:   \nlayout: standard\n---\nBody\n", ErrNoTitle, false},
		{"empty quoted title", "---\ntitle: ''\n---\nBody\n", ErrNoTitle, false},
		{"title in body only", "---\nlayout: standard\n---\ntitle: Body\n", ErrNoTitle, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, err := Title("content/bad.md", tt.content)
			if err == nil {
				t.Fatalf("expected error, got title %q", title)
			}
			if title != "" {
				t.Errorf("expected empty title on error, got %q", title)
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
			if IsStructural(err) != tt.structural {
				t.Errorf("IsStructural() = %v, want %v", IsStructural(err), tt.structural)
			}
			if !strings.Contains(err.Error(), "content/bad.md") {
				t.Errorf("expected error to name the file, got %q", err.Error())
			}

			var herr *Error
			if !errors.As(err, &herr) || herr.Path != "content/bad.md" {
				t.Errorf("expected *Error with path, got %#v", err)
			}
		})
	}
}

func TestTitleFrom(t *testing.T) {
	t.Run("reads within limit", func(t *testing.T) {
		r := strings.NewReader("---\ntitle: Setup\n---\n" + strings.Repeat("x", 10000))
		title, err := TitleFrom("setup.md", r, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if title != "Setup" {
			t.Errorf("expected %q, got %q", "Setup", title)
		}
	})

	t.Run("header beyond limit", func(t *testing.T) {
		r := strings.NewReader("---\ntitle: Setup\n---\nBody\n")
		_, err := TitleFrom("setup.md", r, 10)
		if !errors.Is(err, ErrMissingHeader) {
			t.Errorf("expected ErrMissingHeader, got %v", err)
		}
	})

	t.Run("larger limit finds late header end", func(t *testing.T) {
		content := "---\ntitle: Setup\ndescription: " + strings.Repeat("y", 3000) + "\n---\nBody\n"
		if _, err := TitleFrom("setup.md", strings.NewReader(content), DefaultMaxBytes); !errors.Is(err, ErrMissingHeader) {
			t.Fatalf("expected default limit to truncate header, got %v", err)
		}
		title, err := TitleFrom("setup.md", strings.NewReader(content), 4096)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if title != "Setup" {
			t.Errorf("expected %q, got %q", "Setup", title)
		}
	})
}

func TestReadPrefix(t *testing.T) {
	prefix, err := ReadPrefix(strings.NewReader("abcdef"), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prefix != "abc" {
		t.Errorf("expected %q, got %q", "abc", prefix)
	}
}
