package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/backmassage/pathprune/internal/prune"
)

// minChunk is the smallest slice of a batch handed to one worker.
const minChunk = 256

// Entry pairs an input path with its rewritten form.
type Entry struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Changed bool   `json:"changed"`
}

// Rewrite applies rw to every path with up to jobs workers. Each worker
// owns a contiguous range of the output, so the result has the same order
// as paths. The only error is ctx's.
func Rewrite(ctx context.Context, rw *prune.Rewriter, paths []string, jobs int) ([]Entry, error) {
	entries := make([]Entry, len(paths))
	if jobs < 1 {
		jobs = 1
	}

	chunk := (len(paths) + jobs - 1) / jobs
	if chunk < minChunk {
		chunk = minChunk
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for start := 0; start < len(paths); start += chunk {
		end := min(start+chunk, len(paths))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				to := rw.RewriteString(paths[i])
				entries[i] = Entry{From: paths[i], To: to, Changed: to != paths[i]}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}
