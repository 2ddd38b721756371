package syncqueue

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config tunes the executor. Zero values fall back to defaults in
// NewExecutor.
type Config struct {
	// Shards is the number of worker goroutines. Jobs with the same key
	// always land on the same shard.
	Shards int `envconfig:"SHARDS" default:"4"`

	// QueueSize is the per-shard channel capacity.
	QueueSize int `envconfig:"QUEUE_SIZE" default:"128"`

	// EnqueueTimeout bounds how long Submit waits for shard capacity before
	// reporting back-pressure.
	EnqueueTimeout time.Duration `envconfig:"ENQUEUE_TIMEOUT" default:"100ms"`

	// MaxAttempts bounds retries of a failed job. The default of 1 means no
	// automatic retry: a failed write surfaces immediately to the caller.
	// Raise it (with BaseBackoff/MaxInterval) to enable bounded retry for
	// transient backend failures.
	MaxAttempts int `envconfig:"MAX_ATTEMPTS" default:"1"`

	// BaseBackoff is the initial retry interval when MaxAttempts > 1.
	BaseBackoff time.Duration `envconfig:"BASE_BACKOFF" default:"100ms"`

	// MaxInterval caps the exponential backoff growth.
	MaxInterval time.Duration `envconfig:"MAX_INTERVAL" default:"20s"`

	// ErrorHandler observes terminal job failures. Optional.
	ErrorHandler func(error) `ignored:"true"`
}

// LoadConfig reads Config from OPSDESK_QUEUE_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("OPSDESK_QUEUE", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
