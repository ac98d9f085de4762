package changelog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// FormatError reports a line that starts with the header marker but does not
// match the expected release header shape. It is the only malformed-input
// condition the parser recognizes, and it is fatal: no recovery, no skipping.
type FormatError struct {
	Line int    // 1-based line number in the input
	Text string // the offending line, terminator stripped
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: changelog header with unexpected format: %q", e.Line, e.Text)
}

// IsFormatError returns true if the error is a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// Load reads and parses a changelog file from the given path.
func Load(path string) (*Changelog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening changelog file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a changelog document line by line and collects its release
// entries. Lines before the first release header are discarded. A line that
// starts with "##" but does not match the header pattern aborts the parse
// with a FormatError.
func Parse(r io.Reader) (*Changelog, error) {
	var (
		c       Changelog
		current *Release // nil until the first header
	)

	br := bufio.NewReader(r)
	lineNum := 0

	for {
		line, readErr := br.ReadString('\n')
		if len(line) > 0 {
			lineNum++

			switch {
			case IsHeaderLine(line):
				h, ok := MatchHeader(line)
				if !ok {
					return nil, &FormatError{Line: lineNum, Text: TrimLineEnding(line)}
				}
				c.Releases = append(c.Releases, Release{Date: h.Date, Version: h.Version, Number: h.Number})
				current = &c.Releases[len(c.Releases)-1]
			case current != nil:
				current.Body = append(current.Body, line)
			}
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("reading changelog: %w", readErr)
		}
	}

	return &c, nil
}
