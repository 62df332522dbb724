// Package workerpool runs bounded concurrent work over a slice of items.
package workerpool

import (
	"context"
	"sync"
)

// Process calls process for every item using at most workerCount goroutines.
// The first error cancels the remaining work and is returned; onCancel, when set,
// runs once per failing worker.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(items) && len(items) > 0 {
		workerCount = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
		})
		if onCancel != nil {
			onCancel()
		}
		cancel()
	}

	tasks := make(chan T)
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				if ctx.Err() != nil {
					continue
				}
				if err := process(ctx, item); err != nil {
					fail(err)
				}
			}
		}()
	}

feed:
	for _, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- item:
		}
	}
	close(tasks)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

// Map applies fn to every item with at most workerCount goroutines and returns
// the results in input order.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, error) {
	indexes := make([]int, len(items))
	for i := range indexes {
		indexes[i] = i
	}

	results := make([]R, len(items))
	err := Process(ctx, workerCount, indexes, func(ctx context.Context, i int) error {
		r, err := fn(ctx, items[i])
		if err != nil {
			return err
		}
		results[i] = r
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return results, nil
}
