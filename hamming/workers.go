package hamming

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// dispatch calls fn for every index in [0, n) on at most Workers goroutines.
// Results are written by fn at their own index, so output order never depends on
// scheduling. The first error cancels the remaining work and is returned.
func (self *Codec) dispatch(ctx context.Context, n int, fn func(index int) error) error {
	workers := self.config.Workers
	if workers < 1 {
		workers = 1
	}
	self.logger.WithField("jobs", n).WithField("workers", workers).Trace("dispatching blocks")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for index := 0; index < n; index++ {
		if gctx.Err() != nil {
			break
		}
		index := index
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(index)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
