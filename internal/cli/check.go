package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/newsplit/newsplit/internal/changelog"
	"github.com/newsplit/newsplit/internal/output"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate changelog headers without writing files",
	Long: `Parse the changelog and validate every release header without writing any
output file.

Exit code 0 means all headers are well formed; exit code 1 reports the first
malformed header with its line number.

Examples:
  newsplit check
  newsplit check --changelog ../CHANGELOG.md`,
	Args:         wrapArgs(cobra.NoArgs),
	SilenceUsage: true,
	RunE:         runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("changelog", "", "Path to the changelog (overrides config)")
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	noun := "releases"
	if len(c.Releases) == 1 {
		noun = "release"
	}
	output.PrintSuccess(cmd.OutOrStdout(),
		fmt.Sprintf("%s: %d %s, all headers well formed", cfg.Changelog, len(c.Releases), noun))
	return nil
}
