package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	clierrors "github.com/newsplit/newsplit/internal/errors"
)

const listFixture = `## 2023-03-15: Release 5
newest body
## 2023-02-10: Release 4
middle body
## 2023-01-05: Release 3
oldest body
`

func TestListCommand_Text(t *testing.T) {
	setupWorkdir(t, listFixture)

	out, err := runCommand(t, "list", "--changelog", "CHANGELOG.md", "--format", "text", "--plain", "--last", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "Release 5")
	assert.Contains(t, out, "Release 4")
	assert.Contains(t, out, "Release 3")
	assert.Contains(t, out, "weight=99995")
}

func TestListCommand_Last(t *testing.T) {
	setupWorkdir(t, listFixture)

	out, err := runCommand(t, "list", "--changelog", "CHANGELOG.md", "--format", "text", "--plain", "--last", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Release 5")
	assert.NotContains(t, out, "Release 3")
	assert.Contains(t, out, "(1 of 3 entries shown. Use --last 3 to see all)")
}

func TestListCommand_YAML(t *testing.T) {
	setupWorkdir(t, listFixture)

	out, err := runCommand(t, "list", "--changelog", "CHANGELOG.md", "--format", "yaml", "--last", "0")
	require.NoError(t, err)

	var decoded struct {
		Releases []struct {
			Date    string `yaml:"date"`
			Version string `yaml:"version"`
			Title   string `yaml:"title"`
			Weight  int    `yaml:"weight"`
			File    string `yaml:"file"`
		} `yaml:"releases"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Releases, 3)

	assert.Equal(t, "5", decoded.Releases[0].Version)
	assert.Equal(t, "Release 5", decoded.Releases[0].Title)
	assert.Equal(t, 99995, decoded.Releases[0].Weight)
	assert.Equal(t, "from-changelog-2023-03-15-2023-03-15-release-5.md", decoded.Releases[0].File)
}

func TestListCommand_EmptyChangelog(t *testing.T) {
	setupWorkdir(t, "just prose, no releases\n")

	out, err := runCommand(t, "list", "--changelog", "CHANGELOG.md", "--format", "text", "--last", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "No release entries found.")
}

func TestListCommand_SingleVersion(t *testing.T) {
	setupWorkdir(t, listFixture)

	out, err := runCommand(t, "list", "4", "--changelog", "CHANGELOG.md", "--format", "text", "--plain", "--last", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "Release 4")
	assert.NotContains(t, out, "Release 5")
	assert.NotContains(t, out, "Release 3")
}

func TestListCommand_SingleVersionYAML(t *testing.T) {
	setupWorkdir(t, listFixture)

	out, err := runCommand(t, "list", "3", "--changelog", "CHANGELOG.md", "--format", "yaml", "--last", "0")
	require.NoError(t, err)

	var decoded struct {
		Releases []struct {
			Version string `yaml:"version"`
			Weight  int    `yaml:"weight"`
		} `yaml:"releases"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Releases, 1)
	assert.Equal(t, "3", decoded.Releases[0].Version)
	assert.Equal(t, 99997, decoded.Releases[0].Weight)
}

func TestListCommand_VersionNotFound(t *testing.T) {
	setupWorkdir(t, listFixture)

	out, err := runCommand(t, "list", "99", "--changelog", "CHANGELOG.md", "--format", "text", "--plain", "--last", "0")
	require.Error(t, err)

	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
	assert.Contains(t, out, "Release 99 not found.")
	assert.Contains(t, out, "Available releases: 5, 4, 3")
}

func TestListCommand_NonNumericVersion(t *testing.T) {
	setupWorkdir(t, listFixture)

	_, err := runCommand(t, "list", "eleven", "--changelog", "CHANGELOG.md", "--format", "text", "--plain", "--last", "0")
	require.Error(t, err)

	cliErr := clierrors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, clierrors.Argument, cliErr.Category)
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
}

func TestListCommand_RejectsExtraArgs(t *testing.T) {
	setupWorkdir(t, listFixture)

	_, err := runCommand(t, "list", "1", "2", "--changelog", "CHANGELOG.md")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
}

func TestListCommand_InvalidFormat(t *testing.T) {
	setupWorkdir(t, listFixture)

	_, err := runCommand(t, "list", "--changelog", "CHANGELOG.md", "--format", "json")
	require.Error(t, err)

	cliErr := clierrors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, clierrors.Argument, cliErr.Category)
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
}
