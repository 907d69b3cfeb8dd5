package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsmostafa/gonav/internal/config"
	"github.com/itsmostafa/gonav/internal/header"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func readDisk(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.FromSlash(name))
	require.NoError(t, err)
	return string(data)
}

func page(title string) string {
	return "---\ntitle: " + title + "\nlayout: standard\n---\nBody.\n"
}

func TestRunMarkdown(t *testing.T) {
	writeTree(t, map[string]string{
		"content/index.md":        page("Home"),
		"content/guides/index.md": page("Guides"),
		"content/guides/setup.md": page("Setup"),
	})

	var out bytes.Buffer
	require.NoError(t, runMarkdown(&out, config.Default(), markdownFlags{}))

	assert.Equal(t, "### Pages\n- [Setup](setup)\n", readDisk(t, "content/guides/__navigation.md"))
	assert.Equal(t, "### Folders\n- [Guides](guides)\n", readDisk(t, "content/__navigation.md"))
	assert.True(t, strings.HasSuffix(readDisk(t, "content/index.md"), "{% include_relative __navigation.md %}\n"))
	assert.Contains(t, out.String(), "Navigation Complete")

	before := readDisk(t, "content/guides/index.md")
	out.Reset()
	require.NoError(t, runMarkdown(&out, config.Default(), markdownFlags{}))
	assert.Equal(t, before, readDisk(t, "content/guides/index.md"))
}

func TestRunMarkdownDryRun(t *testing.T) {
	writeTree(t, map[string]string{"content/docs/a.md": page("A")})

	var out bytes.Buffer
	require.NoError(t, runMarkdown(&out, config.Default(), markdownFlags{dryRun: true}))

	assert.Contains(t, out.String(), "content/docs/index.md")
	assert.Contains(t, out.String(), "DRY RUN")
	_, err := os.Stat("content/docs/index.md")
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat("content/__navigation.md")
	assert.True(t, os.IsNotExist(err))
}

func TestRunMarkdownFailsOnBadPage(t *testing.T) {
	writeTree(t, map[string]string{
		"content/index.md": page("Home"),
		"content/bad.md":   "title: X",
	})

	err := runMarkdown(&bytes.Buffer{}, config.Default(), markdownFlags{})
	require.ErrorIs(t, err, header.ErrMissingHeader)
	assert.Contains(t, err.Error(), "content/bad.md")

	_, statErr := os.Stat("content/__navigation.md")
	assert.True(t, os.IsNotExist(statErr), "nothing is written when the tree is invalid")
}

func TestRunHTML(t *testing.T) {
	writeTree(t, map[string]string{
		"content/about.md":        page("About"),
		"content/guides/setup.md": page("Setup"),
		"content/__navigation.md": "### Pages\n",
	})

	var out bytes.Buffer
	require.NoError(t, runHTML(&out, config.Default(), false))

	got := readDisk(t, "_includes/navigation.html")
	want := "<!-- Auto-generated from folder structure -->\n" +
		"<h2>Content</h2><ul>" +
		`<li><a href="content/about">About</a></li>` +
		`<li><p>Guides</p><ul><li><a href="content/guides/setup">Setup</a></li></ul></li>` +
		"</ul>"
	assert.Equal(t, want, got)
	assert.Contains(t, out.String(), "_includes/navigation.html")
}

func TestRunHTMLStdout(t *testing.T) {
	writeTree(t, map[string]string{"content/a.md": page("A")})

	var out bytes.Buffer
	require.NoError(t, runHTML(&out, config.Default(), true))

	assert.Contains(t, out.String(), `<li><a href="content/a">A</a></li>`)
	_, err := os.Stat("_includes")
	assert.True(t, os.IsNotExist(err))
}

func TestRunCheck(t *testing.T) {
	writeTree(t, map[string]string{
		"content/good.md": page("Good"),
		"content/bad.md":  "---\ntitle: Broken\ntags: [unclosed\n---\nBody\n",
	})

	var out bytes.Buffer
	err := runCheck(&out, config.Default())
	require.Error(t, err)
	assert.Contains(t, out.String(), "content/bad.md")
	assert.NotContains(t, out.String(), "content/good.md")
}

func TestRunCheckPasses(t *testing.T) {
	writeTree(t, map[string]string{"content/good.md": page("Good")})

	var out bytes.Buffer
	require.NoError(t, runCheck(&out, config.Default()))
	assert.Contains(t, out.String(), "1 pages checked")
}

func TestOpenWorkspace(t *testing.T) {
	dir := writeTree(t, map[string]string{"content/a.md": page("A")})

	cfg := config.Default()
	cfg.ContentDir = filepath.Join(dir, "content")
	_, root, err := openWorkspace(cfg)
	require.NoError(t, err)
	assert.Equal(t, "content", root)

	cfg.ContentDir = filepath.Dir(dir)
	_, _, err = openWorkspace(cfg)
	assert.Error(t, err)

	cfg = config.Default()
	cfg.MaxHeaderBytes = 0
	_, _, err = openWorkspace(cfg)
	assert.Error(t, err)
}
