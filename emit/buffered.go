package emit

import (
	"context"
	"sync"
)

// BufferedEmitter accumulates events in memory and forwards them to an
// underlying Emitter in batches, either when the buffer reaches cap or
// when Flush is called. Used by cmd/regexctl's bench subcommand so
// per-event I/O doesn't dominate a concurrent batch run.
type BufferedEmitter struct {
	mu       sync.Mutex
	under    Emitter
	buf      []Event
	capacity int
}

// NewBufferedEmitter wraps under, flushing automatically once the
// pending buffer reaches capacity. A non-positive capacity disables the
// automatic flush; events then accumulate until Flush is called.
func NewBufferedEmitter(under Emitter, capacity int) *BufferedEmitter {
	return &BufferedEmitter{under: under, capacity: capacity}
}

func (b *BufferedEmitter) Emit(event Event) {
	b.mu.Lock()
	b.buf = append(b.buf, event)
	full := b.capacity > 0 && len(b.buf) >= b.capacity
	b.mu.Unlock()

	if full {
		_ = b.Flush(context.Background())
	}
}

func (b *BufferedEmitter) EmitBatch(ctx context.Context, events []Event) error {
	b.mu.Lock()
	b.buf = append(b.buf, events...)
	full := b.capacity > 0 && len(b.buf) >= b.capacity
	b.mu.Unlock()

	if full {
		return b.Flush(ctx)
	}
	return nil
}

// Flush forwards all buffered events to the underlying Emitter as one
// batch and clears the buffer, regardless of whether the forward
// succeeds — a backend outage should not make the buffer grow unbounded.
func (b *BufferedEmitter) Flush(ctx context.Context) error {
	b.mu.Lock()
	pending := b.buf
	b.buf = nil
	b.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}
	if err := b.under.EmitBatch(ctx, pending); err != nil {
		return err
	}
	return b.under.Flush(ctx)
}
