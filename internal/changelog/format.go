package changelog

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain bool // Disable colors
}

var (
	dateStyle   = color.New(color.Faint).SprintFunc()
	titleStyle  = color.New(color.FgCyan, color.Bold).SprintFunc()
	weightStyle = color.New(color.FgYellow).SprintFunc()
	fileStyle   = color.New(color.Faint).SprintFunc()
)

// FormatReleases writes release entries to the writer, one per line, with
// date, title, ordering weight, and the news file each entry maps to.
func FormatReleases(releases []Release, w io.Writer, opts FormatOptions) error {
	for _, r := range releases {
		if err := formatRelease(r, w, opts); err != nil {
			return fmt.Errorf("formatting release %s: %w", r.Version, err)
		}
	}
	return nil
}

func formatRelease(r Release, w io.Writer, opts FormatOptions) error {
	if opts.Plain {
		_, err := fmt.Fprintf(w, "%s  %s  weight=%d  %s\n",
			r.Date, r.Title(), r.Weight(), r.Filename())
		return err
	}

	_, err := fmt.Fprintf(w, "%s  %s  %s\n    %s\n",
		dateStyle(r.Date),
		titleStyle(r.Title()),
		weightStyle(fmt.Sprintf("weight=%d", r.Weight())),
		fileStyle(r.Filename()))
	return err
}
