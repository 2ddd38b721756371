package syncqueue

import (
	"errors"
	"fmt"
)

// ErrExecutorClosed is returned by Submit after Stop has been called.
var ErrExecutorClosed = errors.New("syncqueue: executor closed")

// ErrQueueFull is the sentinel wrapped by QueueFullError.
var ErrQueueFull = errors.New("syncqueue: queue full")

// QueueFullError reports back-pressure on one shard.
type QueueFullError struct {
	Shard    int
	Length   int
	Capacity int
}

func (e *QueueFullError) Error() string {
	return fmt.Sprintf("syncqueue: shard %d full (%d/%d)", e.Shard, e.Length, e.Capacity)
}

// Unwrap lets errors.Is(err, ErrQueueFull) succeed.
func (e *QueueFullError) Unwrap() error { return ErrQueueFull }
