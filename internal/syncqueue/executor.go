// Package syncqueue provides a lightweight sharded work queue that guarantees
// FIFO order per key while allowing parallelism across shards. Resource
// stores use it to serialize their write operations: all mutations for one
// store share a key, so a delete can never overtake the create it follows.
//
// Contract: callers must not invoke Submit concurrently for the same key.
// FIFO ordering relies on that external serialisation.
package syncqueue

import (
	"context"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	errsx "github.com/opsdesk/console/internal/errors"
)

type queuedJob struct {
	ctx context.Context
	job Job
}

// Executor runs Jobs on worker goroutines partitioned by a stable hash of
// the key (the store name). FIFO ordering is preserved within a shard; jobs
// with different keys may run in parallel.
type Executor struct {
	cfg    Config
	queues []chan queuedJob // len == cfg.Shards

	done   chan struct{} // closed in Stop()
	closed uint32        // 0 running, 1 closed

	wg sync.WaitGroup
}

// NewExecutor constructs the executor and starts its shard workers.
func NewExecutor(cfg Config) *Executor {
	if cfg.Shards <= 0 {
		cfg.Shards = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 128
	}
	if cfg.EnqueueTimeout <= 0 {
		cfg.EnqueueTimeout = 100 * time.Millisecond
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = 100 * time.Millisecond
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = 20 * time.Second
	}

	e := &Executor{
		cfg:    cfg,
		queues: make([]chan queuedJob, cfg.Shards),
		done:   make(chan struct{}),
	}
	for i := 0; i < cfg.Shards; i++ {
		ch := make(chan queuedJob, cfg.QueueSize)
		e.queues[i] = ch
		e.wg.Add(1)
		go e.runWorker(i, ch)
	}
	return e
}

// Submit enqueues job for the shard derived from key.
//
//   - Returns nil on success.
//   - Returns ErrExecutorClosed if the executor is stopped.
//   - Returns a *QueueFullError if the shard is still full after
//     EnqueueTimeout elapses.
//   - Returns ctx.Err() if the caller-provided context is cancelled first.
func (e *Executor) Submit(ctx context.Context, key string, job Job) error {
	if atomic.LoadUint32(&e.closed) == 1 {
		return ErrExecutorClosed
	}

	// Stop may have closed e.done before we observed the flag.
	select {
	case <-e.done:
		return ErrExecutorClosed
	default:
	}

	qj := queuedJob{ctx: ctx, job: job}
	shard := e.shardFor(key)
	ch := e.queues[shard]

	timer := time.NewTimer(e.cfg.EnqueueTimeout)
	defer timer.Stop()

	select {
	case ch <- qj:
		submissionsTotal.WithLabelValues(labelFor(shard)).Inc()
		return nil

	case <-e.done: // Stop may be called while waiting for space
		return ErrExecutorClosed

	case <-ctx.Done():
		return ctx.Err()

	case <-timer.C:
		queueFullTotal.WithLabelValues(labelFor(shard)).Inc()
		return &QueueFullError{
			Shard:    shard,
			Length:   len(ch),
			Capacity: cap(ch),
		}
	}
}

// Barrier enqueues a no-op job on the shard for key and waits until it runs,
// ensuring all previously submitted jobs for that key have completed.
func (e *Executor) Barrier(ctx context.Context, key string) error {
	done := make(chan struct{})
	j := JobFunc(func(context.Context) error {
		close(done)
		return nil
	})
	if err := e.Submit(ctx, key, j); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// Stop signals every worker to finish draining its current queue, waits for
// them to terminate, and then returns. Idempotent and safe for concurrent
// use.
func (e *Executor) Stop() {
	if !atomic.CompareAndSwapUint32(&e.closed, 0, 1) {
		return
	}

	log.Debug().Int("shards", e.cfg.Shards).Msg("syncqueue: stopping executor")

	close(e.done)
	e.wg.Wait()

	log.Debug().Msg("syncqueue: executor stopped, all queues drained")
}

// Close lets Executor satisfy io.Closer.
func (e *Executor) Close() error {
	e.Stop()
	return nil
}

// ------------------------- internals -------------------------

func (e *Executor) runWorker(idx int, ch <-chan queuedJob) {
	defer e.wg.Done()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Int("shard", idx).Interface("panic", r).Msg("syncqueue: worker panic")
		}
	}()

	label := labelFor(idx)

	for {
		select {
		case qj := <-ch:
			if qj.job == nil {
				continue
			}

			// Honour caller context so a cancelled job doesn't stall the shard.
			select {
			case <-qj.ctx.Done():
				e.safeHandleError(qj.ctx.Err())
			default:
				e.runJob(label, qj)
			}

			queueDepth.WithLabelValues(label).Set(float64(len(ch)))

		case <-e.done:
			// Drain remaining jobs, preserving FIFO, then exit.
			drained := 0
			for {
				select {
				case qj := <-ch:
					if qj.job != nil {
						_ = qj.job.Run(qj.ctx)
						drained++
					}
				default:
					if drained > 0 {
						log.Debug().Int("shard", idx).Int("jobs", drained).Msg("syncqueue: drained on shutdown")
					}
					queueDepth.WithLabelValues(label).Set(0)
					return
				}
			}
		}
	}
}

func (e *Executor) runJob(label string, qj queuedJob) {
	attempts := 0
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = e.cfg.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = e.cfg.MaxInterval
	exp.Reset()

	for {
		start := time.Now()
		err := qj.job.Run(qj.ctx)
		runDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())

		if err == nil {
			return
		}

		// 4xx-class failures are final no matter the retry budget.
		if errsx.IsIrrecoverable(err) {
			e.safeHandleError(err)
			return
		}

		if attempts >= e.cfg.MaxAttempts-1 {
			e.safeHandleError(err)
			return
		}

		attempts++
		wait := exp.NextBackOff()
		select {
		case <-time.After(wait):
		case <-e.done:
			return
		case <-qj.ctx.Done():
			e.safeHandleError(qj.ctx.Err())
			return
		}
	}
}

func (e *Executor) safeHandleError(err error) {
	if err == nil || e.cfg.ErrorHandler == nil {
		return
	}
	func() {
		// Guard against panics in the user-supplied handler.
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Msg("syncqueue: error handler panic")
			}
		}()
		e.cfg.ErrorHandler(err)
	}()
}

func (e *Executor) shardFor(key string) int {
	h := fnv.New32a() // fast and sufficient at our scale
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % e.cfg.Shards
}
