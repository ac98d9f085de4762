package cli

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand_Plain(t *testing.T) {
	out, err := runCommand(t, "version", "--plain")
	require.NoError(t, err)

	assert.Contains(t, out, "newsplit "+Version)
	assert.Contains(t, out, "go: "+runtime.Version())
	assert.Contains(t, out, "platform: "+runtime.GOOS+"/"+runtime.GOARCH)
}

func TestTruncateCommit(t *testing.T) {
	assert.Equal(t, "abcd1234", truncateCommit("abcd1234ef567890"))
	assert.Equal(t, "short", truncateCommit("short"))
	assert.Equal(t, "unknown", truncateCommit("unknown"))
}
