package sim

// StateSnapshot is the cumulative state record as it stood immediately
// after one event was applied, paired with the clock value at that point.
type StateSnapshot struct {
	Clock int
	State map[string]any
}

// History is the full trace of one Execute run: every event dispatched,
// in dispatch order, and the cumulative state record after each one. The
// NFA layer inspects History to recover the matched prefix and its
// length without Execute having to know anything about regexes.
type History struct {
	States []StateSnapshot
	Events []Event
	record map[string]any
}

func newHistory() *History {
	return &History{}
}

func (h *History) appendState(clock int, state map[string]any) {
	h.States = append(h.States, StateSnapshot{Clock: clock, State: state})
}

func (h *History) appendEvent(ev Event) {
	h.Events = append(h.Events, ev)
}

func (h *History) len() int {
	return len(h.Events)
}

// Record returns the cumulative state record as it stood when the run
// ended: every port that ever received a value, mapped to its last value.
func (h *History) Record() map[string]any {
	return h.record
}
