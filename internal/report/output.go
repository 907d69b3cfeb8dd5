package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsmostafa/gonav/internal/reconcile"
)

var (
	// titleStyle for bold red headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// errorStyle for error indicators
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// warnStyle for dry-run markers
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// boxStyle for summary box with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1)

	// headerBoxStyle for the header
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1)
)

// Header describes a run for FormatHeader.
type Header struct {
	Mode   string
	Root   string
	Output string
	DryRun bool
}

// Summary holds the counts shown after a run.
type Summary struct {
	Directories int
	Pages       int
	Plan        reconcile.Plan
	DryRun      bool
}

// Problem is a page that failed a check.
type Problem struct {
	Path string
	Err  error
}

// FormatHeader renders the run header with configuration info
func FormatHeader(w io.Writer, h Header) {
	content := fmt.Sprintf("%s %s  %s %s",
		dimStyle.Render("Mode:"), titleStyle.Render(h.Mode),
		dimStyle.Render("Content:"), h.Root,
	)
	if h.Output != "" {
		content += fmt.Sprintf("\n%s %s", dimStyle.Render("Output:"), h.Output)
	}
	if h.DryRun {
		content += "\n" + warnStyle.Render("dry run: nothing will be written")
	}
	fmt.Fprintln(w, headerBoxStyle.Render(content))
}

// FormatPlan writes one line per planned operation
func FormatPlan(w io.Writer, plan reconcile.Plan) {
	for _, op := range plan {
		fmt.Fprintf(w, "%s %s %s\n", opMarker(op.Kind), op.Path, dimStyle.Render(formatBytes(len(op.Content))))
	}
}

func opMarker(kind reconcile.OpKind) string {
	switch kind {
	case reconcile.OpCreate:
		return successStyle.Render("+ ")
	case reconcile.OpAppend:
		return warnStyle.Render(">>")
	default:
		return dimStyle.Render("~ ")
	}
}

// FormatSummary renders the summary box
func FormatSummary(w io.Writer, s Summary) {
	line1 := fmt.Sprintf("%s %s  %s %s",
		dimStyle.Render("Directories:"), formatNumber(s.Directories),
		dimStyle.Render("Pages:"), formatNumber(s.Pages),
	)
	line2 := fmt.Sprintf("%s %d  %s %d  %s %d",
		dimStyle.Render("Created:"), s.Plan.Count(reconcile.OpCreate),
		dimStyle.Render("Navigation:"), s.Plan.Count(reconcile.OpReplace),
		dimStyle.Render("Includes:"), s.Plan.Count(reconcile.OpAppend),
	)

	status := successStyle.Render("OK")
	if s.DryRun {
		status = warnStyle.Render("DRY RUN")
	}

	content := titleStyle.Render("Navigation Complete") + "  " + status + "\n" + line1 + "\n" + line2
	fmt.Fprintln(w, boxStyle.Render(content))
}

// FormatHTMLWritten reports the HTML fragment output
func FormatHTMLWritten(w io.Writer, path string, size int) {
	fmt.Fprintf(w, "%s %s %s\n", successStyle.Render("✓"), path, dimStyle.Render(formatBytes(size)))
}

// FormatProblems lists pages that failed a check, or a success line
func FormatProblems(w io.Writer, checked int, problems []Problem) {
	if len(problems) == 0 {
		fmt.Fprintf(w, "%s %s pages checked\n", successStyle.Render("✓"), formatNumber(checked))
		return
	}
	for _, p := range problems {
		fmt.Fprintf(w, "%s %s: %v\n", errorStyle.Render("✗"), p.Path, p.Err)
	}
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("%d of %d pages have problems", len(problems), checked)))
}

func formatBytes(n int) string {
	return fmt.Sprintf("(%s bytes)", formatNumber(n))
}

// formatNumber adds commas to large numbers for readability
func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%d,%03d", n/1000, n%1000)
	}
	return fmt.Sprintf("%d,%03d,%03d", n/1000000, (n/1000)%1000, n%1000)
}
