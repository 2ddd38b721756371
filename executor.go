package console

import (
	"context"

	"github.com/opsdesk/console/internal/syncqueue"
)

// executor abstracts the internal write queue so tests can substitute a
// direct in-line runner.
type executor interface {
	Submit(ctx context.Context, key string, job syncqueue.Job) error
	Stop()
}
