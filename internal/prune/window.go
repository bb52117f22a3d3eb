package prune

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCount is returned (wrapped) by [ParseCount] when the window
// count is not a whole number. It is a warning: the batch is left unchanged.
var ErrInvalidCount = errors.New("invalid window count")

// Count is a parsed, signed window count.
//
//	n > 0   rewrite the first n named folders
//	n < 0   protect the last |n| folders before the file name
//	n == 0  rewrite nothing unless a structural marker is present
type Count int

// ParseCount parses the free-form window count. Surrounding whitespace is
// ignored. Integers beyond the int range saturate to the nearest bound.
func ParseCount(raw string) (Count, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		// Empty means "marker only", not an invalid count.
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		return Count(n), nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w %q (use a whole number such as 2 or -1)", ErrInvalidCount, raw)
	}
	return Count(n), nil
}

// Describe returns a short human-readable meaning of the count.
func (n Count) Describe() string {
	switch {
	case n == 0:
		return "only folders before a // marker"
	case n == 1:
		return "the first folder"
	case n > 0:
		return fmt.Sprintf("the first %d folders", int(n))
	case n == -1:
		return "all folders except the last one"
	default:
		return fmt.Sprintf("all folders except the last %d", uint(-int(n)))
	}
}

// Window is the range [0, Limit) of component indexes eligible for value
// selection. The leaf component is excluded regardless of Limit. Marker is
// the index of the empty component left by a structural marker in the path
// (dropped on reassembly), or -1.
type Window struct {
	Limit  int
	Marker int
}

// Contains reports whether component i of p may be rewritten.
func (w Window) Contains(p Path, i int) bool {
	return i >= 0 && i < w.Limit && !p.IsLeaf(i)
}

// Empty reports whether the window covers nothing and no marker needs
// collapsing, in which case the path is returned as is.
func (w Window) Empty() bool { return w.Limit <= 0 && w.Marker < 0 }

// TemplateMarker returns the component position of the first structural
// marker in an unsubstituted rename template, or -1.
func TemplateMarker(template string) int {
	if !strings.Contains(template, Marker) {
		return -1
	}
	return ParsePath(template).MarkerIndex()
}

// ResolveWindow computes the eligible window for p. A marker in the path
// itself wins, then a marker position taken from the template
// (templateMarker, -1 for none), then the signed count.
func ResolveWindow(p Path, n Count, templateMarker int) Window {
	if m := p.MarkerIndex(); m >= 0 {
		return Window{Limit: m, Marker: m}
	}
	if templateMarker >= 0 {
		return Window{Limit: templateMarker, Marker: -1}
	}

	dirs := p.Len() - 1 // leaf excluded
	if dirs < 0 {
		dirs = 0
	}
	limit := 0
	switch {
	case n > 0:
		limit = int(n)
		if limit >= dirs {
			limit = dirs
		} else if p.Absolute() {
			// The root counts as a component but not as a folder.
			limit++
		}
	case n < 0:
		limit = max(dirs+int(n), 0)
	}
	return Window{Limit: limit, Marker: -1}
}
