// Package prune collapses multi-valued path components to a single value.
//
// A rename template such as <genre>/<grouping>//<artist>/<album> may produce
// destination paths whose folders hold comma-joined tag values
// ("Rock, Pop/Live/Artist/Album"). Pruning picks one value per folder
// inside a window of leading components and leaves the rest of the path
// exactly as generated.
//
// Layout:
//   - path.go: Path and Component (split text kept next to the raw text).
//   - words.go: preference and avoidance word lists.
//   - selector.go: Chooser interface and the default Selector.
//   - window.go: Count parsing and window resolution.
//   - rewriter.go: Rewriter, which ties the pieces together per path.
//
// Everything in this package is pure: no I/O, no shared state. A Rewriter
// may be used from many goroutines at once.
package prune
