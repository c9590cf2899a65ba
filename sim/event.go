package sim

// Event is an immutable scheduled delivery: val arrives on var at clock,
// addressed to node (nil when the destination is the graph's own output
// port). seq is the insertion order used to break clock ties — it is not
// part of the event's observable identity, only its scheduling.
type Event struct {
	Clock int
	Node  *Node
	Var   string
	Val   any
	seq   uint64
}

// SourceEvent is an event a node (or a caller seeding a run) wishes to
// emit, carrying a latency relative to the moment it was produced rather
// than an absolute clock. The simulator converts these into Events via
// translate (see engine.go).
type SourceEvent struct {
	Var     string
	Val     any
	Latency int
}
