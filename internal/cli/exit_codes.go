package cli

// Exit codes for the newsplit CLI.
// These codes support scripting and CI integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFormatError indicates a malformed changelog header or another
	// fatal failure during the run
	ExitFormatError = 1

	// ExitConfigError indicates invalid or unloadable configuration
	ExitConfigError = 2

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3
)
