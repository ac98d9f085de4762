package changelog

import (
	"regexp"
	"strconv"
	"strings"
)

// headerPattern is the fixed shape of a release header line. The line is
// matched with its terminator stripped, so $ anchors at the real end of text.
var headerPattern = regexp.MustCompile(`^##\s+(\d{4}-\d{2}-\d{2}):\s+Release (\d+)$`)

// Header holds the attributes carried by a release header line. Version is
// the captured digits exactly as written (a leading zero survives into the
// generated title and slug); Number is the parsed value used for weights.
type Header struct {
	Date    string
	Version string
	Number  int
}

// IsHeaderLine reports whether a raw input line starts with the markdown
// header marker that demarcates release entries. A line for which this
// returns true must also satisfy MatchHeader or the document is malformed.
func IsHeaderLine(line string) bool {
	return strings.HasPrefix(line, "##")
}

// MatchHeader matches a raw input line (terminator included or not) against
// the release header pattern. The second return value is false when the line
// does not have the expected shape.
func MatchHeader(line string) (Header, bool) {
	m := headerPattern.FindStringSubmatch(TrimLineEnding(line))
	if m == nil {
		return Header{}, false
	}

	number, err := strconv.Atoi(m[2])
	if err != nil {
		// \d+ matched but the number does not fit in an int.
		return Header{}, false
	}

	return Header{Date: m[1], Version: m[2], Number: number}, true
}

// TrimLineEnding strips a single trailing LF or CRLF from a line.
func TrimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
