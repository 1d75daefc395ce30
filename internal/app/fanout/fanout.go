// Package fanout runs one call per item with bounded concurrency. todoctl
// uses it to apply a command such as done or rm to several todo ids at once.
package fanout

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one item: Value on success, Err on failure.
type Result[T, R any] struct {
	Item  T
	Value R
	Err   error
}

// Run calls fn for each item with at most maxWorkers calls in flight and
// returns the results in input order. Items not yet started when ctx is
// canceled record ctx.Err() without calling fn. One item failing does not
// stop the others. A maxWorkers below 1 means one worker.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[T, R] {
	results := make([]Result[T, R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(1, maxWorkers))

	for i, item := range items {
		results[i].Item = item
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Value, results[i].Err = fn(ctx, item)
			return nil
		})
	}

	// Workers never return an error; failures live in results.
	_ = g.Wait()
	return results
}

// Join combines the failures in results into one error, each prefixed with
// its item. It returns nil when every item succeeded.
func Join[T, R any](results []Result[T, R]) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%v: %w", r.Item, r.Err))
		}
	}
	return errors.Join(errs...)
}
