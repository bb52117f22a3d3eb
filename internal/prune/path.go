package prune

import "strings"

const (
	// Separator delimits path components.
	Separator = "/"
	// Marker is the structural double separator that fences a protected
	// suffix off from rewriting.
	Marker = Separator + Separator
	// candidateSep delimits alternative values within one component.
	candidateSep = ","
)

// Path is a slash-delimited path split into components. An absolute path
// has an empty first component standing for the root separator.
type Path struct {
	Components []string
}

// ParsePath splits s on [Separator]. The empty string yields a Path with no
// components.
func ParsePath(s string) Path {
	if s == "" {
		return Path{}
	}
	return Path{Components: strings.Split(s, Separator)}
}

// Absolute reports whether the path starts at the root.
func (p Path) Absolute() bool {
	return len(p.Components) > 1 && p.Components[0] == ""
}

// Len returns the number of components, the leaf included.
func (p Path) Len() int { return len(p.Components) }

// IsLeaf reports whether i is the index of the final (file name) component.
func (p Path) IsLeaf(i int) bool { return i == len(p.Components)-1 }

// MarkerIndex returns the index of the empty component produced by the first
// [Marker], or -1 when the path has none. The root component of an
// absolute path and a trailing empty leaf are not markers.
func (p Path) MarkerIndex() int {
	for i := 1; i < len(p.Components)-1; i++ {
		if p.Components[i] == "" {
			return i
		}
	}
	return -1
}

// String joins the components back with [Separator].
func (p Path) String() string {
	return strings.Join(p.Components, Separator)
}

// Component is one path segment together with its comma-separated
// candidates. Raw is kept so a simple component round-trips byte for byte.
type Component struct {
	Raw        string
	Candidates []string
}

// ParseComponent splits raw on commas and trims each candidate.
func ParseComponent(raw string) Component {
	parts := strings.Split(raw, candidateSep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return Component{Raw: raw, Candidates: parts}
}

// Simple reports whether the component holds a single value and is
// therefore never rewritten.
func (c Component) Simple() bool { return len(c.Candidates) <= 1 }
