// Package enrich joins backend records against live price lookups,
// tolerating individual lookup failures.
package enrich

import (
	"context"
	"sync"
)

// Outcome holds one element's result from a settle-all join: either a
// value or the error that produced its fallback.
type Outcome[R any] struct {
	Value R
	Err   error
}

// Ok reports whether the element resolved with a value.
func (o Outcome[R]) Ok() bool {
	return o.Err == nil
}

// SettleAll runs fn over every item in parallel and waits for all of
// them. An individual failure stays local to its Outcome; the aggregate
// never fails, and results keep the input order.
func SettleAll[T, R any](ctx context.Context, items []T, fn func(context.Context, T) (R, error)) []Outcome[R] {
	results := make([]Outcome[R], len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item T) {
			defer wg.Done()
			v, err := fn(ctx, item)
			results[i] = Outcome[R]{Value: v, Err: err}
		}(i, item)
	}
	wg.Wait()

	return results
}
