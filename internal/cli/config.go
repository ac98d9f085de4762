package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/newsplit/newsplit/internal/config"
	clierrors "github.com/newsplit/newsplit/internal/errors"
	"github.com/newsplit/newsplit/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and initialize newsplit configuration",
	Long: `Commands for inspecting the resolved configuration and writing a default
project config file.`,
}

var configShowCmd = &cobra.Command{
	Use:          "show",
	Short:        "Print the resolved configuration as YAML",
	Args:         wrapArgs(cobra.NoArgs),
	SilenceUsage: true,
	RunE:         runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:          "init",
	Short:        "Write a commented default config to " + config.DefaultProjectConfigPath,
	Args:         wrapArgs(cobra.NoArgs),
	SilenceUsage: true,
	RunE:         runConfigInit,
}

var configInitForce bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
}

// configView is the YAML shape emitted by 'config show'.
type configView struct {
	Changelog     string `yaml:"changelog"`
	OutputDir     string `yaml:"output_dir"`
	WatchDebounce string `yaml:"watch_debounce"`
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	view := configView{
		Changelog:     cfg.Changelog,
		OutputDir:     cfg.OutputDir,
		WatchDebounce: cfg.WatchDebounce.String(),
	}

	data, err := yaml.Marshal(view)
	if err != nil {
		return fmt.Errorf("marshaling configuration: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultProjectConfigPath

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return clierrors.NewConfigError(
			fmt.Sprintf("config file %s already exists", path),
			"Use --force to overwrite it")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "creating config directory")
	}

	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "writing config file")
	}

	output.PrintSuccess(cmd.OutOrStdout(), "Wrote "+path)
	return nil
}
