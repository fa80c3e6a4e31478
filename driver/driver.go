// Package driver runs a connection set's partitions concurrently, one
// goroutine per partition, the way a distributed simulation built on
// this algebra would: each process calls PartitionMask/PartitionCSet
// with the same partitions, seed, and a distinct selected index, then
// iterates only its own slice. Package driver supplies the concurrent
// harness around that pattern; it does not change how any individual
// mask or connection set iterates.
package driver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/csa-go/csa/log"
)

// Run calls fn once per partition index in [0, n), each in its own
// goroutine, bounded to limit concurrent goroutines (0 means
// unbounded). It returns the first error any call to fn returns,
// cancelling ctx so the remaining goroutines can stop early; every
// call to fn still runs to completion or error before Run returns.
func Run(ctx context.Context, n, limit int, fn func(ctx context.Context, selected int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for selected := 0; selected < n; selected++ {
		selected := selected
		g.Go(func() error {
			csalog.Debug.Printf("starting partition %d of %d", selected, n)
			if err := fn(gctx, selected); err != nil {
				csalog.Error.Printf("partition %d: %v", selected, err)
				return err
			}
			return nil
		})
	}
	return g.Wait()
}
