package prune

import "strings"

// Chooser picks the value that replaces a multi-valued component. Hosts
// that want a different policy supply their own implementation to
// [NewRewriter] through [Settings.Chooser].
type Chooser interface {
	Choose(c Component) string
}

// Selector is the default [Chooser]: preferred words first, then the first
// candidate that is not avoided, then the first candidate.
type Selector struct {
	Prefer PreferenceList
	Avoid  AvoidanceList
}

// Choose implements [Chooser]. Simple components come back as their raw
// text.
func (s Selector) Choose(c Component) string {
	if c.Simple() {
		return c.Raw
	}

	// Preference order, not candidate order, decides ties.
	for _, word := range s.Prefer {
		for _, v := range c.Candidates {
			if word == strings.ToLower(v) {
				return v
			}
		}
	}

	for _, v := range c.Candidates {
		if !s.Avoid.Contains(strings.ToLower(v)) {
			return v
		}
	}

	// Avoidance is soft: a fully avoided component still yields a value.
	return c.Candidates[0]
}

// SelectValue is a convenience wrapper around [Selector.Choose] for a single
// raw component.
func SelectValue(raw string, prefer PreferenceList, avoid AvoidanceList) string {
	return Selector{Prefer: prefer, Avoid: avoid}.Choose(ParseComponent(raw))
}
