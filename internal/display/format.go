package display

import (
	"fmt"
	"strings"
)

// FormatCount returns "<n> <noun>" with a plural "s" when n != 1
// (e.g. "1 path", "3 paths").
func FormatCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// FormatWords renders a word list for display, or "(none)" when empty.
func FormatWords(words []string) string {
	if len(words) == 0 {
		return "(none)"
	}
	return strings.Join(words, ", ")
}
