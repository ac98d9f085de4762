package news

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/newsplit/newsplit/internal/changelog"
)

func TestFrontMatter_Render(t *testing.T) {
	fm := ForRelease(changelog.Release{Date: "2023-01-05", Version: "3", Number: 3})

	want := `+++
title = "Release 3"
weight = 99997
date = "2023-01-05"
+++`
	assert.Equal(t, want, fm.Render())
}

func TestFrontMatter_NoTrailingNewline(t *testing.T) {
	fm := ForRelease(changelog.Release{Date: "2023-02-10", Version: "4", Number: 4})

	rendered := fm.Render()
	assert.True(t, strings.HasSuffix(rendered, "+++"))
	assert.False(t, strings.HasSuffix(rendered, "\n"))
}
