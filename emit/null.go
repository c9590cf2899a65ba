package emit

import "context"

// NullEmitter discards every event. A Graph built without an emitter has
// a nil one, which Execute skips; NullEmitter is for callers that need a
// non-nil Emitter that does nothing.
type NullEmitter struct{}

func (NullEmitter) Emit(Event) {}

func (NullEmitter) EmitBatch(context.Context, []Event) error {
	return nil
}

func (NullEmitter) Flush(context.Context) error {
	return nil
}
