// Package workers runs independent startup jobs side by side.
// It defines the Worker interface and a Workers aggregate that runs
// every worker concurrently and waits for all of them.
package workers

import "context"

// Worker is a unit of startup work.
//
// Implementations block until their work is done or ctx is cancelled.
// They report failures through their own state, Run has no error.
//
// Example implementation:
//
//	type PolicyWorker struct{ Policy models.InstancePolicy }
//
//	func (w *PolicyWorker) Run(ctx context.Context) {
//	    w.Policy = resolver.Resolve(ctx)
//	}
type Worker interface {
	Run(ctx context.Context)
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context)

func (f WorkerFunc) Run(ctx context.Context) {
	f(ctx)
}
