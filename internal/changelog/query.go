package changelog

import "fmt"

// ReleaseNotFoundError indicates that a requested release version does not
// exist in the changelog.
type ReleaseNotFoundError struct {
	Version int
}

func (e *ReleaseNotFoundError) Error() string {
	return fmt.Sprintf("release %d not found", e.Version)
}

// GetRelease returns the release entry with the given version number.
func (c *Changelog) GetRelease(version int) (*Release, error) {
	for i := range c.Releases {
		if c.Releases[i].Number == version {
			return &c.Releases[i], nil
		}
	}
	return nil, &ReleaseNotFoundError{Version: version}
}

// LastN returns up to n releases in document order. The maintained changelog
// keeps its newest entries first, so these are the most recent releases.
func (c *Changelog) LastN(n int) []Release {
	if n <= 0 || len(c.Releases) == 0 {
		return nil
	}
	if n > len(c.Releases) {
		n = len(c.Releases)
	}
	return c.Releases[:n]
}

// Versions returns the version numbers of all releases in document order.
func (c *Changelog) Versions() []int {
	versions := make([]int, 0, len(c.Releases))
	for _, r := range c.Releases {
		versions = append(versions, r.Number)
	}
	return versions
}
