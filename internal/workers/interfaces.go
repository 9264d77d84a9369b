// Package workers runs independent units of work concurrently and collects
// their errors.
package workers

import "context"

// Worker is a unit of work run by [Workers].
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
