// Package views provides the per-page view models: each one orchestrates
// its fetches, applies caching and enrichment, and exposes pure
// projections over the loaded data.
package views

import "sync"

// State is the lifecycle state of a view. A view moves from loading to
// ready or error; Retry is simply calling Load again.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// allRequired runs the fns in parallel and waits for every one of them.
// The first error observed fails the group; this is the
// parallel-and-all-required join used when every resource is necessary
// to render a page.
func allRequired(fns ...func() error) error {
	errs := make([]error, len(fns))

	var wg sync.WaitGroup
	for i, fn := range fns {
		wg.Add(1)
		go func(i int, fn func() error) {
			defer wg.Done()
			errs[i] = fn()
		}(i, fn)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
