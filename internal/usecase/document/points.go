package document

import (
	"regexp"
	"strings"
)

// Leading bullet glyphs or "<digits>." numbering carried over from the
// user's draft; one prefix is stripped per line.
var (
	bulletPrefix = regexp.MustCompile(`^[-•*]\s*`)
	numberPrefix = regexp.MustCompile(`^\d+\.\s*`)
)

// ParsePoints splits free-form discussion text into discrete points.
// Lines are trimmed, blanks dropped, and any existing bullet or numbering
// prefix removed so the renderers can apply their own numbering. Order is
// preserved.
func ParsePoints(text string) []string {
	if text == "" {
		return nil
	}

	var points []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = bulletPrefix.ReplaceAllString(line, "")
		line = numberPrefix.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		points = append(points, line)
	}
	return points
}
