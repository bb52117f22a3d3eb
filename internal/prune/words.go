package prune

import "strings"

// PreferenceList is an ordered list of lowercase words. Earlier words win
// when several of them match candidates in the same component.
type PreferenceList []string

// AvoidanceList is a set of lowercase words a candidate should not be.
type AvoidanceList map[string]struct{}

// ParsePreferences parses a comma-separated configuration value. Words are
// trimmed and lowercased, blanks dropped, and repeats collapse onto their
// first position.
func ParsePreferences(s string) PreferenceList {
	var out PreferenceList
	seen := make(map[string]bool)
	for _, w := range splitWords(s) {
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

// ParseAvoidance parses a comma-separated configuration value into a set.
func ParseAvoidance(s string) AvoidanceList {
	out := make(AvoidanceList)
	for _, w := range splitWords(s) {
		out[w] = struct{}{}
	}
	return out
}

// Contains reports whether word (already lowercase) is avoided.
func (a AvoidanceList) Contains(word string) bool {
	_, ok := a[word]
	return ok
}

func splitWords(s string) []string {
	var out []string
	for _, w := range strings.Split(s, ",") {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
