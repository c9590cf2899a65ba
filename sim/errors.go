// Package sim implements the discrete-event simulator that drives the
// regex engine's NFA graphs: timestamped events flow through named ports
// into node transition functions until the graph's output port is reached
// or a run limit is hit.
package sim

import "errors"

// ErrArgType is returned when a public constructor is handed a value of
// the wrong shape (empty port name, nil function, negative latency).
var ErrArgType = errors.New("sim: argument has the wrong type or shape")

// ErrDuplicatePort is returned by Node.Input/Node.Output when a port name
// is registered twice on the same node. Uniqueness is enforced only within
// a node's own input or output set, per the port-naming invariant.
var ErrDuplicatePort = errors.New("sim: duplicate port name on node")
