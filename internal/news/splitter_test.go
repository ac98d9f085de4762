package news

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsplit/newsplit/internal/changelog"
)

const sampleChangelog = `noise line
## 2023-01-05: Release 3
body line 1
body line 2
## 2023-02-10: Release 4
body line 3
`

func TestSplit_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	s := NewSplitter(dir)

	summary, err := s.Split(strings.NewReader(sampleChangelog))
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Releases)
	require.Len(t, summary.Files, 2)

	got3, err := os.ReadFile(filepath.Join(dir, "news", "from-changelog-2023-01-05-2023-01-05-release-3.md"))
	require.NoError(t, err)
	want3 := `+++
title = "Release 3"
weight = 99997
date = "2023-01-05"
+++body line 1
body line 2
`
	assert.Equal(t, want3, string(got3))

	got4, err := os.ReadFile(filepath.Join(dir, "news", "from-changelog-2023-02-10-2023-02-10-release-4.md"))
	require.NoError(t, err)
	want4 := `+++
title = "Release 4"
weight = 99996
date = "2023-02-10"
+++body line 3
`
	assert.Equal(t, want4, string(got4))
}

func TestSplit_ZeroPaddedVersion(t *testing.T) {
	dir := t.TempDir()
	s := NewSplitter(dir)

	summary, err := s.Split(strings.NewReader("## 2023-01-05: Release 03\nbody\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Releases)

	// The header's version digits survive verbatim in the filename and title;
	// the weight still comes from the numeric value.
	got, err := os.ReadFile(filepath.Join(dir, "news", "from-changelog-2023-01-05-2023-01-05-release-03.md"))
	require.NoError(t, err)
	want := `+++
title = "Release 03"
weight = 99997
date = "2023-01-05"
+++body
`
	assert.Equal(t, want, string(got))
}

func TestSplit_PreludeProducesNoFile(t *testing.T) {
	dir := t.TempDir()
	s := NewSplitter(dir)

	summary, err := s.Split(strings.NewReader("intro only\nno headers here\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Releases)
	assert.Empty(t, summary.Files)

	entries, err := os.ReadDir(filepath.Join(dir, "news"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSplit_Idempotent(t *testing.T) {
	dir := t.TempDir()
	s := NewSplitter(dir)

	_, err := s.Split(strings.NewReader(sampleChangelog))
	require.NoError(t, err)

	first, err := os.ReadFile(filepath.Join(dir, "news", "from-changelog-2023-01-05-2023-01-05-release-3.md"))
	require.NoError(t, err)

	_, err = s.Split(strings.NewReader(sampleChangelog))
	require.NoError(t, err)

	second, err := os.ReadFile(filepath.Join(dir, "news", "from-changelog-2023-01-05-2023-01-05-release-3.md"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSplit_MalformedHeader(t *testing.T) {
	dir := t.TempDir()
	s := NewSplitter(dir)

	input := `## 2023-01-05: Release 3
body line 1
## 2023-02-10 Release 4
body line 3
`
	summary, err := s.Split(strings.NewReader(input))
	require.Error(t, err)
	assert.Nil(t, summary)

	var formatErr *changelog.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 3, formatErr.Line)

	// The file open at the moment of failure is left exactly as written.
	got, err := os.ReadFile(filepath.Join(dir, "news", "from-changelog-2023-01-05-2023-01-05-release-3.md"))
	require.NoError(t, err)
	want := `+++
title = "Release 3"
weight = 99997
date = "2023-01-05"
+++body line 1
`
	assert.Equal(t, want, string(got))

	// No file was created for the malformed header.
	entries, err := os.ReadDir(filepath.Join(dir, "news"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSplit_BodyWithHashNoise(t *testing.T) {
	dir := t.TempDir()
	s := NewSplitter(dir)

	// Single-# headers and indented ## are body text, not release headers.
	input := `## 2023-01-05: Release 3
# Notes
  ## indented marker
`
	summary, err := s.Split(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Releases)

	got, err := os.ReadFile(summary.Files[0])
	require.NoError(t, err)
	assert.Contains(t, string(got), "# Notes\n  ## indented marker\n")
}

func TestSplit_FinalLineWithoutTerminator(t *testing.T) {
	dir := t.TempDir()
	s := NewSplitter(dir)

	summary, err := s.Split(strings.NewReader("## 2023-01-05: Release 3\nlast line"))
	require.NoError(t, err)
	require.Len(t, summary.Files, 1)

	got, err := os.ReadFile(summary.Files[0])
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(got), "+++last line"))
}

func TestSplitFile_MissingChangelog(t *testing.T) {
	s := NewSplitter(t.TempDir())

	_, err := s.SplitFile(filepath.Join(t.TempDir(), "absent.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening changelog file")
}
