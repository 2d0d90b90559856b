// Package asyncload provides a context-cancellable, channel-based wrapper
// around splat.Load for callers that want to kick off an SPZ read without
// blocking the calling goroutine.
package asyncload

import (
	"context"

	"github.com/arloliu/spz/coord"
	"github.com/arloliu/spz/splat"
)

// Result carries the outcome of an asynchronous load: exactly one of
// Splat or Err is set.
type Result struct {
	Splat *splat.Splat
	Err   error
}

// Load starts loading the SPZ file at path on a new goroutine and
// returns a channel that receives exactly one Result. If ctx is canceled
// before the load finishes, the Result carries ctx.Err() instead of
// waiting for the file I/O to complete.
func Load(ctx context.Context, path string, target coord.System) <-chan Result {
	out := make(chan Result, 1)

	go func() {
		s, err := splat.Load(path, target)
		out <- Result{Splat: s, Err: err}
	}()

	result := make(chan Result, 1)
	go func() {
		select {
		case r := <-out:
			result <- r
		case <-ctx.Done():
			result <- Result{Err: ctx.Err()}
		}
	}()

	return result
}

// FromBytes is Load for an in-memory payload already held by the caller.
func FromBytes(ctx context.Context, data []byte, target coord.System) <-chan Result {
	out := make(chan Result, 1)

	go func() {
		s, err := splat.FromBytes(data, target)
		out <- Result{Splat: s, Err: err}
	}()

	result := make(chan Result, 1)
	go func() {
		select {
		case r := <-out:
			result <- r
		case <-ctx.Done():
			result <- Result{Err: ctx.Err()}
		}
	}()

	return result
}
