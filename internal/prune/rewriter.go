package prune

// Settings are the raw configuration values a [Rewriter] is built from.
// Word lists are comma-separated; MaxFolders is free text and may fail to
// parse.
type Settings struct {
	MaxFolders    string
	PriorityWords string
	AvoidWords    string
	// Template is the unsubstituted rename pattern, used only to locate a
	// structural marker. Optional.
	Template string
	// Chooser overrides the default [Selector] built from the word lists.
	Chooser Chooser
}

// Rewriter prunes multi-valued components out of generated paths. It holds
// no mutable state and is safe for concurrent use.
type Rewriter struct {
	chooser        Chooser
	count          Count
	countErr       error
	templateMarker int
}

// NewRewriter parses s. An invalid MaxFolders does not fail construction:
// the Rewriter becomes a no-op and [Rewriter.Err] reports why.
func NewRewriter(s Settings) *Rewriter {
	r := &Rewriter{
		chooser:        s.Chooser,
		templateMarker: TemplateMarker(s.Template),
	}
	if r.chooser == nil {
		r.chooser = Selector{
			Prefer: ParsePreferences(s.PriorityWords),
			Avoid:  ParseAvoidance(s.AvoidWords),
		}
	}
	r.count, r.countErr = ParseCount(s.MaxFolders)
	return r
}

// Err returns the non-fatal configuration problem that disabled rewriting,
// wrapping [ErrInvalidCount], or nil.
func (r *Rewriter) Err() error { return r.countErr }

// Count returns the parsed window count (0 when invalid).
func (r *Rewriter) Count() Count { return r.count }

// TemplateMarker returns the template marker position, or -1.
func (r *Rewriter) TemplateMarker() int { return r.templateMarker }

// Window returns the eligible window for p.
func (r *Rewriter) Window(p Path) Window {
	if r.countErr != nil {
		return Window{Marker: -1}
	}
	return ResolveWindow(p, r.count, r.templateMarker)
}

// RewritePath returns a new Path with every eligible multi-valued component
// collapsed. p is not modified.
func (r *Rewriter) RewritePath(p Path) Path {
	w := r.Window(p)
	if w.Empty() {
		return Path{Components: append([]string(nil), p.Components...)}
	}

	out := make([]string, 0, p.Len())
	for i, c := range p.Components {
		switch {
		case i == w.Marker:
			// The marker's empty component is dropped so the output holds a
			// single separator at the boundary.
			continue
		case w.Contains(p, i):
			out = append(out, r.chooser.Choose(ParseComponent(c)))
		default:
			out = append(out, c)
		}
	}
	return Path{Components: out}
}

// RewriteString is [Rewriter.RewritePath] over a path string.
func (r *Rewriter) RewriteString(s string) string {
	if s == "" {
		return s
	}
	return r.RewritePath(ParsePath(s)).String()
}

// Rewrite rewrites every path independently and returns a new slice of the
// same length and order. The returned error is the non-fatal
// [Rewriter.Err]; when it is set the output equals the input.
func (r *Rewriter) Rewrite(paths []string) ([]string, error) {
	out := make([]string, len(paths))
	for i, s := range paths {
		out[i] = r.RewriteString(s)
	}
	return out, r.countErr
}
