package sim

import "github.com/dshills/eventrex/emit"

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithMetrics attaches a Metrics collector; every Execute run on this
// Graph will report to it.
func WithMetrics(m *Metrics) Option {
	return func(g *Graph) { g.metrics = m }
}

// WithEmitter attaches an Emitter; every Execute run on this Graph will
// emit its dispatch trace to it.
func WithEmitter(e emit.Emitter) Option {
	return func(g *Graph) { g.emitter = e }
}

// SetMetrics attaches m after construction. Useful for a Graph built up
// by a pipeline of intermediate NewGraph calls (the regex compiler), where
// no single call site is the "right" place to pass WithMetrics.
func (g *Graph) SetMetrics(m *Metrics) { g.metrics = m }

// SetEmitter attaches e after construction, for the same reason as
// SetMetrics.
func (g *Graph) SetEmitter(e emit.Emitter) { g.emitter = e }
