// Package cli implements the newsplit command tree.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/newsplit/newsplit/internal/config"
	clierrors "github.com/newsplit/newsplit/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "newsplit",
	Short: "Generate news content files from a changelog",
	Long: `newsplit converts a changelog document into per-release news files for a
static site generator.

Each "## YYYY-MM-DD: Release N" section of the changelog becomes one markdown
file under <output>/news with generated TOML front-matter (title, ordering
weight, date) followed by the section's body text verbatim.

Running newsplit with no arguments splits the configured changelog
(CHANGELOG.md by default) into the configured content directory.`,
	Example: `  newsplit                 # split CHANGELOG.md into content/news
  newsplit check           # validate changelog headers without writing
  newsplit list            # show parsed releases
  newsplit split --watch   # re-split on every changelog change`,
	Args:          wrapArgs(cobra.NoArgs),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSplit(cmd, false)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "",
		"Path to project config file (default "+config.DefaultProjectConfigPath+")")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return clierrors.NewArgumentError(err.Error(),
			"Run '"+cmd.CommandPath()+" --help' for usage")
	})
}

// wrapArgs converts cobra positional-argument failures into argument-category
// errors so they map to the invalid-arguments exit code.
func wrapArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return clierrors.NewArgumentError(err.Error(),
				"Run '"+cmd.CommandPath()+" --help' for usage")
		}
		return nil
	}
}

// ExitError carries a specific process exit code through cobra's error return.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// NewExitError creates an ExitError for the given code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// Execute runs the root command. Structured errors are printed to stderr
// here; the caller maps the returned error to a process exit code with
// ExitCode.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		clierrors.PrintError(cliErr)
		return err
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case clierrors.Configuration:
			return ExitConfigError
		case clierrors.Argument:
			return ExitInvalidArguments
		}
	}

	return ExitFormatError
}

// loadRunConfig loads the resolved configuration, honoring the persistent
// --config flag.
func loadRunConfig(cmd *cobra.Command) (*config.Configuration, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, clierrors.WrapWithMessage(err, clierrors.Configuration, "loading configuration",
			"Check the config file syntax",
			"Run 'newsplit config init' to write a commented default config")
	}
	return cfg, nil
}
