package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/backmassage/pathprune/internal/config"
	"github.com/backmassage/pathprune/internal/display"
	"github.com/backmassage/pathprune/internal/logging"
	"github.com/backmassage/pathprune/internal/prune"
	"github.com/backmassage/pathprune/internal/term"
)

// Result is the outcome of one batch.
type Result struct {
	Entries    []Entry
	Collisions []Collision
	Stats      RunStats
	// Warnings aggregates non-fatal diagnostics (invalid window count,
	// collisions). Use multierr.Errors to list them.
	Warnings error
}

// Run is the top-level batch entry point. It loads the input paths, rewrites
// them, writes the report to stdout, and logs a summary. Returned errors
// are fatal (unreadable input, failed write, cancellation); configuration
// problems in the pruning rules only show up in Result.Warnings.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, stdin io.Reader, stdout io.Writer) (Result, error) {
	paths, err := LoadInput(cfg, stdin)
	if err != nil {
		return Result{}, err
	}

	res, err := Process(ctx, cfg, log, paths)
	if err != nil {
		return res, err
	}

	if err := WriteReport(stdout, cfg.Format, res.Entries, paletteFor(cfg, stdout)); err != nil {
		return res, fmt.Errorf("write output: %w", err)
	}
	logSummary(log, &res.Stats)
	return res, nil
}

// Process rewrites paths under cfg's rules and collects diagnostics. It does
// not write any output besides logs.
func Process(ctx context.Context, cfg *config.Config, log *logging.Logger, paths []string) (Result, error) {
	rw := prune.NewRewriter(cfg.Settings())
	logBatchHeader(cfg, log, rw, len(paths))

	entries, err := Rewrite(ctx, rw, paths, cfg.Jobs)
	if err != nil {
		return Result{}, err
	}

	res := Result{Entries: entries}
	if err := rw.Err(); err != nil {
		res.Warnings = multierr.Append(res.Warnings, fmt.Errorf("%w; paths left unchanged", err))
	}
	res.Collisions = FindCollisions(entries)
	for _, c := range res.Collisions {
		res.Warnings = multierr.Append(res.Warnings, c.Err())
		for _, in := range c.Inputs {
			log.Debug("  collides: %s", in)
		}
	}
	for _, w := range multierr.Errors(res.Warnings) {
		log.Warn("%v", w)
	}

	for _, e := range entries {
		if e.Changed {
			log.Debug("%s -> %s", e.From, e.To)
		}
	}

	res.Stats = Tally(entries, len(res.Collisions))
	return res, nil
}

func logBatchHeader(cfg *config.Config, log *logging.Logger, rw *prune.Rewriter, n int) {
	log.Debug("Batch: %s", display.FormatCount(n, "path"))
	if rw.Err() != nil {
		return
	}
	if m := rw.TemplateMarker(); m >= 0 {
		log.Debug("Window: folders before the template // marker (%d)", m)
	} else {
		log.Debug("Window: %s", rw.Count().Describe())
	}
	log.Debug("Prefer: %q  Avoid: %q  Jobs: %d", cfg.PriorityWords, cfg.AvoidWords, cfg.Jobs)
}

func logSummary(log *logging.Logger, s *RunStats) {
	log.Info("Pruned %s of %s (%d unchanged)",
		display.FormatCount(s.Changed, "path"), display.FormatCount(s.Total, "path"), s.Unchanged)
	if s.Collisions > 0 {
		log.Warn("%s after pruning", display.FormatCount(s.Collisions, "collision"))
	}
}

// paletteFor resolves colors for the report stream.
func paletteFor(cfg *config.Config, w io.Writer) term.Palette {
	f, _ := w.(*os.File)
	return term.NewPalette(cfg.ColorMode, f)
}
