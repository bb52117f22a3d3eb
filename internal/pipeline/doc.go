// Package pipeline runs a pruning batch end to end: read candidate paths,
// rewrite them (optionally in parallel), detect collisions introduced by
// pruning, report, and write the result in the requested format.
//
// Layout:
//   - input.go: path list sources (args, file, stdin).
//   - rewrite.go: parallel fan-out over a prune.Rewriter.
//   - collision.go: distinct inputs collapsing onto the same output.
//   - report.go: plain, diff, json, and tree output.
//   - runner.go: Run, the batch entry point.
//   - watch.go: re-run on config file changes.
package pipeline
