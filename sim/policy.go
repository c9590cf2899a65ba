package sim

import "time"

// Policy configures one Execute run: how many events it may dispatch, how
// long it may run, and whether it should stop the instant the graph's
// output port is bound to the empty string.
//
// Unlike the teacher's NodePolicy/RetryPolicy pair, Policy carries no
// retry configuration: node transition functions here are pure and
// deterministic (character-class and null-node predicates over a string),
// so there is no transient failure to retry — "retry" has no meaning for
// this domain, only "ran out of budget" does.
type Policy struct {
	// MaxEvents bounds the number of events the loop may dispatch before
	// giving up. Zero means DefaultMaxEvents.
	MaxEvents int

	// Timeout bounds wall-clock execution time. Zero means no timeout
	// beyond whatever the caller's context.Context already carries.
	Timeout time.Duration

	// EarlyExitOnEmptyOutput stops the run the instant the cumulative
	// state record binds the graph's output port to "", matching the
	// source's early-exit rule. Defaults to true via DefaultPolicy.
	EarlyExitOnEmptyOutput bool
}

// DefaultMaxEvents is the limit used when Policy.MaxEvents is zero,
// matching the source's execute(..., limit=10000) default.
const DefaultMaxEvents = 10000

// DefaultPolicy returns the Policy equivalent to the source's defaults.
func DefaultPolicy() Policy {
	return Policy{
		MaxEvents:              DefaultMaxEvents,
		EarlyExitOnEmptyOutput: true,
	}
}

func (p Policy) maxEvents() int {
	if p.MaxEvents > 0 {
		return p.MaxEvents
	}
	return DefaultMaxEvents
}

// Outcome classifies how a run ended. It is reported as data, not as an
// error — per spec, simulation exhaustion is a diagnostic, not a failure.
type Outcome string

const (
	// OutcomeCompleted means the pending set drained (or early-exit fired)
	// before any budget was exhausted.
	OutcomeCompleted Outcome = "completed"
	// OutcomeLimitReached means MaxEvents was exhausted.
	OutcomeLimitReached Outcome = "limit-reached"
	// OutcomeTimedOut means Policy.Timeout elapsed.
	OutcomeTimedOut Outcome = "timed-out"
	// OutcomeCancelled means the caller's context.Context was cancelled.
	OutcomeCancelled Outcome = "cancelled"
)
