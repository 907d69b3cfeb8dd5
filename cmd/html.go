package cmd

import (
	"fmt"
	"io"
	"path"

	"github.com/go-git/go-billy/v5/util"
	"github.com/itsmostafa/gonav/internal/config"
	"github.com/itsmostafa/gonav/internal/render"
	"github.com/itsmostafa/gonav/internal/report"
	"github.com/spf13/cobra"
)

var htmlStdout bool

var htmlCmd = &cobra.Command{
	Use:   "html",
	Short: "Write the whole tree as one HTML navigation fragment",
	Long: `Render the content tree as nested <ul>/<li> lists under an <h2> heading and
write it to the include file (default _includes/navigation.html). No content
file is modified.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHTML(cmd.OutOrStdout(), cfg, htmlStdout)
	},
}

func init() {
	htmlCmd.Flags().StringVarP(&cfg.HTMLOutput, "output", "o", cfg.HTMLOutput, "File to write (env GONAV_HTML_OUTPUT)")
	htmlCmd.Flags().BoolVar(&htmlStdout, "stdout", false, "Print the fragment instead of writing it")
	rootCmd.AddCommand(htmlCmd)
}

func runHTML(w io.Writer, c config.Config, toStdout bool) error {
	log := newLogger()

	fs, root, err := openWorkspace(c)
	if err != nil {
		return err
	}

	tree, err := buildTree(fs, root, c, log)
	if err != nil {
		return err
	}
	out := render.HTML(tree)

	if toStdout {
		_, err := fmt.Fprintln(w, out)
		return err
	}

	report.FormatHeader(w, report.Header{Mode: "html", Root: root, Output: c.HTMLOutput})

	if dir := path.Dir(c.HTMLOutput); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := util.WriteFile(fs, c.HTMLOutput, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.HTMLOutput, err)
	}
	log.Info("wrote file", "path", c.HTMLOutput, "bytes", len(out))

	report.FormatHTMLWritten(w, c.HTMLOutput, len(out))
	return nil
}
