package workers

import (
	"context"
	"errors"
	"sync"
)

type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add appends w to the set run by [Workers.Run].
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Run starts every worker in its own goroutine and waits for all of them.
// The returned error joins the errors of failed workers in registration
// order.
func (w *Workers) Run(ctx context.Context) error {
	errs := make([]error, len(w.workers))

	var wg sync.WaitGroup
	for i, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = worker.Run(ctx)
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}
