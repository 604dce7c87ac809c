package strkit

import (
	"regexp"
	"strings"
)

var matchSpaces = regexp.MustCompile(`\s+`)

// preview collapses white space and shortens s to at most width runes,
// cutting at a word boundary when one is close enough to the limit.
func preview(s string, width int) string {
	s = strings.TrimSpace(matchSpaces.ReplaceAllString(s, " "))

	runes := []rune(s)
	if len(runes) <= width {
		return s
	}

	if width <= 3 {
		return string(runes[:max(width, 0)])
	}

	cut := string(runes[:width-3])
	idx := strings.LastIndex(cut, " ")
	if idx > 0 && len([]rune(cut[:idx])) > int(float64(width)*(2.0/3.0)) {
		return cut[:idx] + "..."
	}

	return cut + "..."
}
