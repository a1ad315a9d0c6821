package journal

import (
	"context"
	"time"
)

// Journal persists the materialized event log of a stream so the stream can
// be replayed later. Records are kept per stream in sequence order.
type Journal interface {
	Append(ctx context.Context, streamID string, records []Record, options ...AppendOption) error
	Load(ctx context.Context, streamID string) ([]Record, error)
	Delete(ctx context.Context, streamID string) error
}

type appendOptions struct {
	Expiry *time.Duration
}

type AppendOption func(*appendOptions)

// WithExpiry gives the appended stream a lifetime, after which the backing
// store may discard it.
func WithExpiry(expiry time.Duration) AppendOption {
	return func(o *appendOptions) {
		o.Expiry = &expiry
	}
}

func applyOptions(defaults appendOptions, options []AppendOption) appendOptions {
	for _, opt := range options {
		opt(&defaults)
	}
	return defaults
}
