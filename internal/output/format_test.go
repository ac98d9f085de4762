package output

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

// Force deterministic output; color auto-detection would otherwise depend on
// the environment the tests run in.
func plainColors(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestGetTerminalWidth(t *testing.T) {
	// Not a terminal under go test, so the fallback applies.
	assert.Positive(t, GetTerminalWidth())
}

func TestPrintSuccess(t *testing.T) {
	plainColors(t)

	var buf strings.Builder
	PrintSuccess(&buf, "Split 2 releases")

	assert.Equal(t, "✓ Split 2 releases\n", buf.String())
}

func TestPrintFileWritten(t *testing.T) {
	plainColors(t)

	var buf strings.Builder
	PrintFileWritten(&buf, "content/news/from-changelog-2023-01-05-2023-01-05-release-3.md")

	assert.Equal(t, "  content/news/from-changelog-2023-01-05-2023-01-05-release-3.md\n", buf.String())
}

func TestPrintWatching(t *testing.T) {
	plainColors(t)

	var buf strings.Builder
	PrintWatching(&buf, "CHANGELOG.md")

	out := buf.String()
	assert.Contains(t, out, "→ Watching:")
	assert.Contains(t, out, "CHANGELOG.md")
	assert.Contains(t, out, "(Ctrl+C to stop)")
}

func TestPrintRunSeparator(t *testing.T) {
	plainColors(t)

	var buf strings.Builder
	PrintRunSeparator(&buf)

	out := buf.String()
	assert.Contains(t, out, " newsplit ")
	assert.Contains(t, out, "───")
	assert.True(t, strings.HasPrefix(out, "\n"))
	assert.True(t, strings.HasSuffix(out, "\n"))

	// The separator is symmetric around the label.
	trimmed := strings.Trim(out, "\n")
	left, right, found := strings.Cut(trimmed, " newsplit ")
	assert.True(t, found)
	assert.Equal(t, left, right)
}
