package syncqueue

import "context"

// Job is a unit of work executed by an Executor.
type Job interface {
	Run(ctx context.Context) error
}

// JobFunc adapts a plain closure to a Job.
type JobFunc func(ctx context.Context) error

// Run implements Job for JobFunc.
func (f JobFunc) Run(ctx context.Context) error { return f(ctx) }
