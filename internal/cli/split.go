package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/newsplit/newsplit/internal/changelog"
	"github.com/newsplit/newsplit/internal/config"
	clierrors "github.com/newsplit/newsplit/internal/errors"
	"github.com/newsplit/newsplit/internal/news"
	"github.com/newsplit/newsplit/internal/output"
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split the changelog into news content files",
	Long: `Split the changelog into one news file per release.

Each release header opens a new file under <output>/news named
from-changelog-<date>-<date>-release-<version>.md, starting with generated
front-matter and followed by the release's body lines exactly as written in
the changelog. Lines before the first release header are discarded.

A line starting with '##' that is not a valid release header aborts the run
with exit code 1. Files finalized before the bad line remain on disk.

Examples:
  newsplit split                         # use configured paths
  newsplit split --changelog ../CHANGELOG.md --output site/content
  newsplit split --watch                 # re-run on every changelog change`,
	Args:         wrapArgs(cobra.NoArgs),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		watch, _ := cmd.Flags().GetBool("watch")
		return runSplit(cmd, watch)
	},
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().String("changelog", "", "Path to the changelog (overrides config)")
	splitCmd.Flags().String("output", "", "Site content directory (overrides config)")
	splitCmd.Flags().Bool("watch", false, "Re-run the split whenever the changelog changes")
}

// runSplit executes one split with the resolved configuration, then stays
// resident watching the changelog when watch is set. Also the behavior of the
// bare 'newsplit' invocation.
func runSplit(cmd *cobra.Command, watch bool) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}
	applySplitFlags(cmd, cfg)

	splitter := news.NewSplitter(cfg.OutputDir)

	summary, err := splitter.SplitFile(cfg.Changelog)
	if err != nil {
		return splitCLIError(err)
	}
	reportSplit(cmd.OutOrStdout(), summary)

	if !watch {
		return nil
	}
	return watchSplit(cmd, cfg, splitter)
}

// applySplitFlags overrides configured paths from command flags when set.
func applySplitFlags(cmd *cobra.Command, cfg *config.Configuration) {
	if cmd.Flags().Changed("changelog") {
		cfg.Changelog, _ = cmd.Flags().GetString("changelog")
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir, _ = cmd.Flags().GetString("output")
	}
}

// splitCLIError converts a split failure into a structured CLI error.
func splitCLIError(err error) *clierrors.CLIError {
	var formatErr *changelog.FormatError
	if errors.As(err, &formatErr) {
		return clierrors.Wrap(err, clierrors.Format,
			"Release headers must have the shape '## YYYY-MM-DD: Release N'",
			fmt.Sprintf("Fix line %d of the changelog and re-run", formatErr.Line))
	}
	return clierrors.Wrap(err, clierrors.Runtime)
}

// reportSplit prints the outcome of one split pass.
func reportSplit(out io.Writer, summary *news.Summary) {
	noun := "releases"
	if summary.Releases == 1 {
		noun = "release"
	}
	output.PrintSuccess(out, fmt.Sprintf("Split %d %s", summary.Releases, noun))
	for _, path := range summary.Files {
		output.PrintFileWritten(out, path)
	}
}

// watchSplit re-runs the split on changelog changes until interrupted.
// Failed runs (a half-saved edit, for example) are reported and watching
// continues.
func watchSplit(cmd *cobra.Command, cfg *config.Configuration, splitter *news.Splitter) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	output.PrintWatching(out, cfg.Changelog)

	watcher := news.NewWatcher(cfg.Changelog, splitter, cfg.WatchDebounce)
	watcher.OnRun = func(summary *news.Summary, err error) {
		output.PrintRunSeparator(out)
		if err != nil {
			clierrors.FprintError(errOut, splitCLIError(err))
			return
		}
		reportSplit(out, summary)
	}

	if err := watcher.Watch(ctx); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "watching changelog")
	}
	return nil
}
