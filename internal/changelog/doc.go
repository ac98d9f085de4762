// Package changelog parses dated release entries out of a hand-maintained
// CHANGELOG.md.
//
// This package implements:
//   - Release header recognition ("## YYYY-MM-DD: Release N")
//   - Full-document parsing into Release values for querying and display
//   - The FormatError reported when a header line has an unexpected shape
//
// The splitting of a changelog into news content files lives in the news
// package; this package only classifies and collects lines.
package changelog
