// Package emit provides pluggable observability sinks for simulation runs:
// logging, buffering, and metrics hooks that a sim.Graph can be wired to
// without the simulator itself knowing what backend is listening.
package emit

// Event is one observability record emitted during a run: a node fired,
// an event was dispatched, a run started or finished.
type Event struct {
	RunID  string
	Step   int
	NodeID string
	Msg    string
	Meta   map[string]any
}
