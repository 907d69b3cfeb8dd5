package cmd

import (
	"io"

	"github.com/itsmostafa/gonav/internal/config"
	"github.com/itsmostafa/gonav/internal/reconcile"
	"github.com/itsmostafa/gonav/internal/report"
	"github.com/spf13/cobra"
)

type markdownFlags struct {
	dryRun    bool
	skipEmpty bool
}

var mdFlags markdownFlags

var markdownCmd = &cobra.Command{
	Use:     "markdown",
	Aliases: []string{"md"},
	Short:   "Write per-directory navigation files and index pages",
	Long: `Write a navigation file into every directory of the content tree, create a
minimal index page where one is missing, and append an include directive for the
navigation file to each index page that does not have it yet.

Existing index pages are never overwritten. Running the command twice leaves
the tree unchanged.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMarkdown(cmd.OutOrStdout(), cfg, mdFlags)
	},
}

func init() {
	addMarkdownFlags(markdownCmd)
	markdownCmd.Flags().StringVar(&cfg.Layout, "layout", cfg.Layout, "Layout for created index pages (env GONAV_LAYOUT)")
	rootCmd.AddCommand(markdownCmd)
}

func addMarkdownFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&mdFlags.dryRun, "dry-run", false, "Print the planned writes without touching any file")
	cmd.Flags().BoolVar(&mdFlags.skipEmpty, "skip-empty", false, "Leave directories without pages alone")
}

func runMarkdown(w io.Writer, c config.Config, flags markdownFlags) error {
	log := newLogger()

	fs, root, err := openWorkspace(c)
	if err != nil {
		return err
	}

	report.FormatHeader(w, report.Header{Mode: "markdown", Root: root, DryRun: flags.dryRun})

	tree, err := buildTree(fs, root, c, log)
	if err != nil {
		return err
	}

	plan, err := reconcile.BuildPlan(fs, tree, reconcile.Options{
		NavigationFile: c.NavigationFile,
		IndexFile:      c.IndexFile,
		Layout:         c.Layout,
		SkipEmpty:      flags.skipEmpty,
		Logger:         log,
	})
	if err != nil {
		return err
	}

	report.FormatPlan(w, plan)
	if !flags.dryRun {
		if err := reconcile.Apply(fs, plan, log); err != nil {
			return err
		}
	}

	dirs, pages := countPages(tree)
	report.FormatSummary(w, report.Summary{
		Directories: dirs,
		Pages:       pages,
		Plan:        plan,
		DryRun:      flags.dryRun,
	})
	return nil
}
