// Package store implements the client-side resource stores: one per backend
// entity, each owning its in-memory collection and the request lifecycle
// around it. Reads replace the collection wholesale and are tagged with a
// per-collection generation so a slow response can never overwrite a newer
// one; writes are serialized per store through the sync queue and propagate
// failures to the caller.
package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/opsdesk/console/internal/syncqueue"
)

// Status is the request-lifecycle flag of one collection.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusError   Status = "error"
)

// Executor abstracts the write queue so stores can be tested with a direct
// in-line executor.
type Executor interface {
	Submit(ctx context.Context, key string, job syncqueue.Job) error
}

// collection is the shared state machine behind every store: the entity
// slice in server order, the status flag, the last transport error, and the
// fetch generation counter.
type collection[T any] struct {
	mu        sync.Mutex
	name      string
	items     []T
	status    Status
	lastError string
	issued    uint64
	idOf      func(T) int64
}

func newCollection[T any](name string, idOf func(T) int64) collection[T] {
	return collection[T]{name: name, status: StatusIdle, idOf: idOf}
}

// beginFetch transitions to loading and returns the generation of this
// fetch. Only a completeFetch carrying the newest issued generation may
// apply its outcome.
func (c *collection[T]) beginFetch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = StatusLoading
	c.issued++
	fetchesTotal.WithLabelValues(c.name).Inc()
	return c.issued
}

// completeFetch applies the outcome of the fetch tagged gen. A response
// whose generation is no longer the newest issued is discarded outright,
// which also covers late responses arriving after the owning view is gone.
// On failure the existing collection is kept; stale-but-present data beats a
// cleared view. Reports whether the outcome was applied.
func (c *collection[T]) completeFetch(gen uint64, items []T, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.issued {
		staleFetchesTotal.WithLabelValues(c.name).Inc()
		log.Debug().Str("store", c.name).Uint64("generation", gen).Uint64("latest", c.issued).Msg("store: discarding stale fetch response")
		return false
	}
	if err != nil {
		c.status = StatusError
		c.lastError = err.Error()
		fetchFailuresTotal.WithLabelValues(c.name).Inc()
		log.Warn().Str("store", c.name).Err(err).Msg("store: fetch failed")
		return true
	}
	c.items = items
	c.status = StatusIdle
	c.lastError = ""
	return true
}

// insertHead puts a freshly created entity first, most-recent-first being a
// UX choice rather than a server-order contract. The write advances the
// generation so a read issued before it cannot apply afterwards and undo it.
func (c *collection[T]) insertHead(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
	c.issued++
}

// replace swaps the entity with the same id in place. A missing id means the
// local collection went stale; the update is dropped without inserting,
// logged so the lost write is at least visible.
func (c *collection[T]) replace(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.idOf(item)
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items[i] = item
			c.issued++
			return true
		}
	}
	staleTargetsTotal.WithLabelValues(c.name).Inc()
	log.Warn().Str("store", c.name).Int64("id", id).Msg("store: update target not in local collection, dropping")
	return false
}

// append adds an entity at the tail, preserving server order for nested
// append-only collections (comment threads).
func (c *collection[T]) append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	c.issued++
}

// reset clears the collection without touching the generation counter, used
// when a nested collection's owner changes.
func (c *collection[T]) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.status = StatusIdle
	c.lastError = ""
}

// remove deletes the entity with the given id; a no-op when absent.
func (c *collection[T]) remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.issued++
			return true
		}
	}
	log.Debug().Str("store", c.name).Int64("id", id).Msg("store: delete target not in local collection")
	return false
}

// Items returns a copy of the collection in server order.
func (c *collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *collection[T]) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *collection[T]) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastError
}

// runWrite executes fn on the store's queue shard and waits for it. The
// queue provides per-store FIFO ordering; the job always reports success to
// the queue because the waiting caller owns the failure, not a background
// retry.
func runWrite(ctx context.Context, exec Executor, key string, fn func(context.Context) error) error {
	errc := make(chan error, 1)
	job := syncqueue.JobFunc(func(jc context.Context) error {
		errc <- fn(jc)
		return nil
	})
	if err := exec.Submit(ctx, key, job); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errc:
		if err != nil {
			writeFailuresTotal.WithLabelValues(key).Inc()
		}
		return err
	}
}
