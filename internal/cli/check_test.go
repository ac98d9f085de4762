package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand_ValidChangelog(t *testing.T) {
	dir := setupWorkdir(t, "## 2023-01-05: Release 3\nbody\n## 2023-02-10: Release 4\nbody\n")

	out, err := runCommand(t, "check", "--changelog", "CHANGELOG.md")
	require.NoError(t, err)
	assert.Contains(t, out, "2 releases")
	assert.Contains(t, out, "all headers well formed")

	// check never writes output files
	_, err = os.Stat(filepath.Join(dir, "content"))
	assert.True(t, os.IsNotExist(err))
}

func TestCheckCommand_SingleRelease(t *testing.T) {
	setupWorkdir(t, "## 2023-01-05: Release 3\nbody\n")

	out, err := runCommand(t, "check", "--changelog", "CHANGELOG.md")
	require.NoError(t, err)
	assert.Contains(t, out, "1 release,")
}

func TestCheckCommand_MalformedHeader(t *testing.T) {
	setupWorkdir(t, "## 2023-01-05: Release 3\n## not a release header\n")

	_, err := runCommand(t, "check", "--changelog", "CHANGELOG.md")
	require.Error(t, err)
	assert.Equal(t, ExitFormatError, ExitCode(err))
	assert.Contains(t, err.Error(), "line 2")
}
