package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/gonav/internal/config"
	"github.com/itsmostafa/gonav/internal/version"
	"github.com/spf13/cobra"
)

var cfg = config.Load()
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gonav",
	Short: "Generate navigation for a markdown content tree",
	Long: `gonav walks a directory of markdown pages and generates navigation for a
static site: per-directory __navigation.md files included from index pages, or a
single HTML fragment.

Running gonav without a subcommand is the same as "gonav markdown".`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMarkdown(cmd.OutOrStdout(), cfg, mdFlags)
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("gonav %s\n", version.String()))

	rootCmd.PersistentFlags().StringVarP(&cfg.ContentDir, "content", "c", cfg.ContentDir, "Content directory to scan (env GONAV_CONTENT_DIR)")
	rootCmd.PersistentFlags().IntVar(&cfg.MaxHeaderBytes, "max-header-bytes", cfg.MaxHeaderBytes, "Bytes read from each page when looking for its header")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every scanned directory and written file to stderr")

	addMarkdownFlags(rootCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
