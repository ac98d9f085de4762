package config

// GetDefaults returns the default configuration values keyed by koanf path.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"changelog":      "CHANGELOG.md",
		"output_dir":     "content",
		"watch_debounce": "200ms",
	}
}

// GetDefaultConfigTemplate returns a fully commented config template that
// helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# Newsplit Configuration
# Values here are overridden by NEWSPLIT_* environment variables.

changelog: CHANGELOG.md     # Changelog document to split
output_dir: content         # Site content dir; files land in its news/ subdir
watch_debounce: 200ms       # Delay before re-splitting in 'split --watch'
`
}
