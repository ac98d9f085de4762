package news

import (
	"fmt"

	"github.com/newsplit/newsplit/internal/changelog"
)

// FrontMatter is the metadata block prefixed to a generated news file,
// consumed by the site generator.
type FrontMatter struct {
	Title  string
	Weight int
	Date   string
}

// ForRelease builds the front-matter for a release entry.
func ForRelease(r changelog.Release) FrontMatter {
	return FrontMatter{
		Title:  r.Title(),
		Weight: r.Weight(),
		Date:   r.Date,
	}
}

// Render returns the TOML front-matter block. There is no newline after the
// closing delimiter; the entry's first body line follows immediately, so a
// blank line in the changelog after the header becomes the separator.
func (f FrontMatter) Render() string {
	return fmt.Sprintf("+++\ntitle = %q\nweight = %d\ndate = %q\n+++", f.Title, f.Weight, f.Date)
}
