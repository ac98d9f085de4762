package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/newsplit/newsplit/internal/changelog"
	clierrors "github.com/newsplit/newsplit/internal/errors"
)

var (
	listLastFlag   int
	listPlainFlag  bool
	listFormatFlag string
)

var listCmd = &cobra.Command{
	Use:   "list [version]",
	Short: "Show the release entries parsed from the changelog",
	Long: `Show the release entries parsed from the changelog, newest first, without
writing any file.

By default all entries are shown with colored terminal output. Use --last to
limit the count, --plain to disable styling, or --format yaml for
machine-readable output. With a version argument only that release is shown.

Examples:
  newsplit list              # all entries
  newsplit list 42           # the entry for release 42
  newsplit list --last 5     # 5 most recent entries
  newsplit list --format yaml`,
	Args:         wrapArgs(cobra.MaximumNArgs(1)),
	SilenceUsage: true,
	RunE:         runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVar(&listLastFlag, "last", 0, "Show only the N most recent entries (0 = all)")
	listCmd.Flags().BoolVar(&listPlainFlag, "plain", false, "Plain text output (no colors)")
	listCmd.Flags().StringVar(&listFormatFlag, "format", "text", "Output format: text | yaml")
	listCmd.Flags().String("changelog", "", "Path to the changelog (overrides config)")
}

// listEntry is the YAML view of one release for --format yaml. Version is the
// header text verbatim, so a zero-padded release number round-trips.
type listEntry struct {
	Date    string `yaml:"date"`
	Version string `yaml:"version"`
	Title   string `yaml:"title"`
	Weight  int    `yaml:"weight"`
	File    string `yaml:"file"`
}

func runList(cmd *cobra.Command, args []string) error {
	if listFormatFlag != "text" && listFormatFlag != "yaml" {
		return clierrors.NewArgumentError(
			fmt.Sprintf("invalid format %q", listFormatFlag),
			"Use --format text or --format yaml")
	}

	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("changelog") {
		cfg.Changelog, _ = cmd.Flags().GetString("changelog")
	}

	c, err := changelog.Load(cfg.Changelog)
	if err != nil {
		return splitCLIError(err)
	}

	if len(args) == 1 {
		return showRelease(cmd, c, args[0])
	}

	releases := c.Releases
	if listLastFlag > 0 {
		releases = c.LastN(listLastFlag)
	}

	if len(releases) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No release entries found.")
		return nil
	}

	if listFormatFlag == "yaml" {
		return listYAML(cmd, releases)
	}

	opts := changelog.FormatOptions{Plain: listPlainFlag}
	if err := changelog.FormatReleases(releases, cmd.OutOrStdout(), opts); err != nil {
		return fmt.Errorf("formatting entries: %w", err)
	}

	if total := len(c.Releases); total > len(releases) {
		fmt.Fprintf(cmd.OutOrStdout(), "\n(%d of %d entries shown. Use --last %d to see all)\n",
			len(releases), total, total)
	}
	return nil
}

// showRelease prints the single release named by the positional argument.
func showRelease(cmd *cobra.Command, c *changelog.Changelog, arg string) error {
	version, err := strconv.Atoi(arg)
	if err != nil {
		return clierrors.NewArgumentError(
			fmt.Sprintf("invalid release version %q", arg),
			"Pass the release number, e.g. 'newsplit list 42'")
	}

	rel, err := c.GetRelease(version)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Release %d not found.\n", version)
		if versions := c.Versions(); len(versions) > 0 {
			parts := make([]string, 0, len(versions))
			for _, v := range versions {
				parts = append(parts, strconv.Itoa(v))
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Available releases: %s\n", strings.Join(parts, ", "))
		}
		return NewExitError(ExitInvalidArguments)
	}

	if listFormatFlag == "yaml" {
		return listYAML(cmd, []changelog.Release{*rel})
	}

	opts := changelog.FormatOptions{Plain: listPlainFlag}
	if err := changelog.FormatReleases([]changelog.Release{*rel}, cmd.OutOrStdout(), opts); err != nil {
		return fmt.Errorf("formatting entry: %w", err)
	}
	return nil
}

func listYAML(cmd *cobra.Command, releases []changelog.Release) error {
	entries := make([]listEntry, 0, len(releases))
	for _, r := range releases {
		entries = append(entries, listEntry{
			Date:    r.Date,
			Version: r.Version,
			Title:   r.Title(),
			Weight:  r.Weight(),
			File:    r.Filename(),
		})
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()

	if err := enc.Encode(map[string][]listEntry{"releases": entries}); err != nil {
		return fmt.Errorf("encoding releases: %w", err)
	}
	return nil
}
