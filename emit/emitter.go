package emit

import "context"

// Emitter receives observability events from a running simulation.
// Emit is called synchronously from the simulator's dispatch loop, so a
// slow Emit slows the run; BufferedEmitter batches events to amortize
// the cost of the emitter it wraps.
type Emitter interface {
	// Emit sends a single event. Must not panic.
	Emit(event Event)

	// EmitBatch sends events in order, for backends that benefit from
	// amortizing I/O across a batch.
	EmitBatch(ctx context.Context, events []Event) error

	// Flush blocks until all buffered events have been sent, or ctx
	// expires. Safe to call more than once.
	Flush(ctx context.Context) error
}
