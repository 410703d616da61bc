package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sirkon/globalclass/internal/report"
)

// CheckAll checks declarations concurrently with at most jobs workers; non-positive
// jobs means GOMAXPROCS. It returns the collected diagnostics ordered by position.
// Nothing is returned once ctx is cancelled.
func (c *Checker) CheckAll(ctx context.Context, decls []Declaration, jobs int) ([]report.Diagnostic, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	var collector report.Collector
	for _, decl := range decls {
		if err := gctx.Err(); err != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			collector.Add(c.Check(decl)...)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return collector.Diagnostics(), nil
}
