package executor

import (
	"context"
	"time"
)

// Config holds environment-driven executor settings.
type Config struct {
	BufferSize      int           `env:"EXECUTOR_BUFFER_SIZE" envDefault:"64"`
	PoolLimit       int           `env:"EXECUTOR_POOL_LIMIT" envDefault:"8"`
	ShutdownTimeout time.Duration `env:"EXECUTOR_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Options converts the configuration into executor options.
func (c Config) Options() []Option {
	return []Option{
		WithBufferSize(c.BufferSize),
		WithLimit(c.PoolLimit),
	}
}

// ShutdownContext derives a context bounded by ShutdownTimeout for Close.
// A non-positive timeout only inherits parent's deadline.
//
//	ctx, cancel := cfg.ShutdownContext(context.Background())
//	defer cancel()
//	err := serial.Close(ctx)
func (c Config) ShutdownContext(parent context.Context) (context.Context, context.CancelFunc) {
	if c.ShutdownTimeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, c.ShutdownTimeout)
}
