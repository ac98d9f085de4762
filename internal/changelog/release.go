package changelog

import "fmt"

// WeightBase is subtracted from the release number to compute the ordering
// weight, so that newer releases get lower weights and sort first in the
// site generator.
const WeightBase = 100000

// Release represents one dated, versioned section of the changelog.
// Version carries the header's digits exactly as written, so a leading zero
// is preserved in the generated title, slug, and filename; Number is the
// parsed value used for the ordering weight. Body holds the raw lines
// between this release's header and the next one, with their original line
// terminators preserved.
type Release struct {
	Date    string
	Version string
	Number  int
	Body    []string
}

// Changelog is the parsed form of a changelog document: the release entries
// in document order (newest first, by convention of the maintained file).
type Changelog struct {
	Releases []Release
}

// Slug returns the URL-friendly identifier for the release.
func (r Release) Slug() string {
	return fmt.Sprintf("%s-release-%s", r.Date, r.Version)
}

// Title returns the display title used in generated front-matter.
func (r Release) Title() string {
	return fmt.Sprintf("Release %s", r.Version)
}

// Weight returns the site-generator ordering weight. Lower values sort
// first, so higher version numbers rank ahead of older ones.
func (r Release) Weight() int {
	return WeightBase - r.Number
}

// Filename returns the name of the news content file generated for this
// release. The date appears twice: once as a filename prefix and once as
// part of the slug.
func (r Release) Filename() string {
	return fmt.Sprintf("from-changelog-%s-%s.md", r.Date, r.Slug())
}
