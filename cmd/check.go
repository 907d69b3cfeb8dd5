package cmd

import (
	"fmt"
	"io"

	"github.com/itsmostafa/gonav/internal/config"
	"github.com/itsmostafa/gonav/internal/content"
	"github.com/itsmostafa/gonav/internal/header"
	"github.com/itsmostafa/gonav/internal/report"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the headers of every page without writing anything",
	Long: `Scan the content tree like the other commands, then parse the full header of
every page as YAML front matter. Pages whose title is readable but whose header
the site generator would reject are listed, and the command exits non-zero.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(w io.Writer, c config.Config) error {
	log := newLogger()

	fs, root, err := openWorkspace(c)
	if err != nil {
		return err
	}

	report.FormatHeader(w, report.Header{Mode: "check", Root: root})

	tree, err := buildTree(fs, root, c, log)
	if err != nil {
		return err
	}

	var problems []report.Problem
	checked := 0
	err = tree.Walk(func(d *content.Directory) error {
		for _, p := range d.Pages {
			checked++
			f, err := fs.Open(p.Path)
			if err != nil {
				return err
			}
			_, decodeErr := header.Decode(f)
			f.Close()
			if decodeErr != nil {
				problems = append(problems, report.Problem{Path: p.Path, Err: decodeErr})
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	report.FormatProblems(w, checked, problems)
	if len(problems) > 0 {
		return fmt.Errorf("%d pages failed the check", len(problems))
	}
	return nil
}
