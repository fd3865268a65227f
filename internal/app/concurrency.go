package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PartialResult holds a result or an error for partial success patterns.
type PartialResult[T any] struct {
	Value T
	Err   error
}

// ParallelPartial executes functions concurrently and collects all
// results, even on partial failure. Errors are captured per slot rather
// than cancelling the group, so every function runs to completion with
// the original context.
func ParallelPartial[T any](
	ctx context.Context,
	fns ...func(context.Context) (T, error),
) []PartialResult[T] {
	results := make([]PartialResult[T], len(fns))

	var g errgroup.Group

	for i, fn := range fns {
		g.Go(func() error {
			value, err := fn(ctx)
			results[i] = PartialResult[T]{Value: value, Err: err}

			return nil
		})
	}

	_ = g.Wait()

	return results
}
