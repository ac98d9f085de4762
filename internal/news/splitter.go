package news

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/newsplit/newsplit/internal/changelog"
)

// Subdir is the section directory under the output directory where generated
// files are placed.
const Subdir = "news"

// Splitter converts a changelog document into per-release news files under
// OutputDir/news. Runs are idempotent: the same input produces byte-identical
// files, overwriting any previous run's output.
type Splitter struct {
	OutputDir string
}

// Summary reports what a split produced.
type Summary struct {
	Releases int
	Files    []string
}

// NewSplitter creates a Splitter writing into the given site content
// directory.
func NewSplitter(outputDir string) *Splitter {
	return &Splitter{OutputDir: outputDir}
}

// SplitFile opens the changelog at path and splits it into news files.
func (s *Splitter) SplitFile(path string) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening changelog file: %w", err)
	}
	defer f.Close()

	return s.Split(f)
}

// Split performs a single linear pass over the input. On each release header
// it closes the previous output file and opens a new one with generated
// front-matter; every other line is appended verbatim to the current output.
// Lines before the first header have no output target and are discarded.
//
// A header-marker line that does not match the release header shape returns
// a *changelog.FormatError. The file open at that moment is left on disk
// exactly as written so far; files finalized earlier remain valid.
func (s *Splitter) Split(r io.Reader) (*Summary, error) {
	if err := os.MkdirAll(filepath.Join(s.OutputDir, Subdir), 0o755); err != nil {
		return nil, fmt.Errorf("creating news directory: %w", err)
	}

	var (
		summary Summary
		out     *os.File // nil until the first header
	)
	defer func() {
		if out != nil {
			out.Close()
		}
	}()

	br := bufio.NewReader(r)
	lineNum := 0

	for {
		line, readErr := br.ReadString('\n')
		if len(line) > 0 {
			lineNum++

			switch {
			case changelog.IsHeaderLine(line):
				h, ok := changelog.MatchHeader(line)
				if !ok {
					return nil, &changelog.FormatError{Line: lineNum, Text: changelog.TrimLineEnding(line)}
				}
				if out != nil {
					if err := out.Close(); err != nil {
						out = nil
						return nil, fmt.Errorf("finalizing news file: %w", err)
					}
					out = nil
				}
				f, path, err := s.openRelease(h)
				if err != nil {
					return nil, err
				}
				out = f
				summary.Releases++
				summary.Files = append(summary.Files, path)
			case out != nil:
				if _, err := out.WriteString(line); err != nil {
					return nil, fmt.Errorf("writing body line: %w", err)
				}
			}
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("reading changelog: %w", readErr)
		}
	}

	if out != nil {
		f := out
		out = nil
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("finalizing news file: %w", err)
		}
	}

	return &summary, nil
}

// openRelease creates the output file for a release and writes its
// front-matter block.
func (s *Splitter) openRelease(h changelog.Header) (*os.File, string, error) {
	rel := changelog.Release{Date: h.Date, Version: h.Version, Number: h.Number}
	path := filepath.Join(s.OutputDir, Subdir, rel.Filename())

	f, err := os.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("creating news file: %w", err)
	}

	if _, err := f.WriteString(ForRelease(rel).Render()); err != nil {
		f.Close()
		return nil, "", fmt.Errorf("writing front matter: %w", err)
	}

	return f, path, nil
}
