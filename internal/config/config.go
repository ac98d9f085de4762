// Package config provides hierarchical configuration management for newsplit
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.newsplit/config.yml) > user config
// (~/.config/newsplit/config.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces environment variable overrides, e.g.
// NEWSPLIT_OUTPUT_DIR=public.
const envPrefix = "NEWSPLIT_"

// Configuration represents the newsplit CLI tool configuration.
type Configuration struct {
	// Changelog is the path of the changelog document to split.
	// Can be set via the NEWSPLIT_CHANGELOG env var.
	Changelog string `koanf:"changelog"`

	// OutputDir is the site content directory; generated files are placed
	// in its news/ subdirectory. Can be set via NEWSPLIT_OUTPUT_DIR.
	OutputDir string `koanf:"output_dir"`

	// WatchDebounce is how long 'split --watch' waits after a file change
	// before re-running, coalescing editor save bursts.
	// Can be set via NEWSPLIT_WATCH_DEBOUNCE (e.g. "500ms").
	WatchDebounce time.Duration `koanf:"watch_debounce"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path. When set
	// explicitly the file must exist; the default path may be absent.
	ProjectConfigPath string
}

// Load loads configuration from user, project, and environment sources.
// Priority: environment variables > project config > user config > defaults.
// An empty projectConfigPath uses the default .newsplit/config.yml.
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig merges the user-level config file if it exists.
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil {
		// No resolvable home directory; user config is simply absent.
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading user config %s: %w", path, err)
	}
	return nil
}

// loadProjectConfig merges the project-level config file. The default path
// may be missing; an explicitly given path must exist.
func loadProjectConfig(k *koanf.Koanf, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultProjectConfigPath
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return fmt.Errorf("project config %s: %w", path, err)
		}
		return nil
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading project config %s: %w", path, err)
	}
	return nil
}

// loadEnvironmentConfig merges NEWSPLIT_* environment variables.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	provider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration.
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the tool cannot run with.
func (c *Configuration) Validate() error {
	if c.Changelog == "" {
		return fmt.Errorf("changelog path must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce must not be negative")
	}
	return nil
}
