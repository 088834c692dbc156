package mux

import (
	"github.com/AEW2015/litedram/core/signal"
	"github.com/AEW2015/litedram/sim"
)

// Builder can build multiplexer models.
type Builder struct {
	engine sim.Engine
	cmd    *signal.Command

	grantLatency int
}

// MakeBuilder creates a builder with a zero-latency grant policy.
func MakeBuilder() Builder {
	return Builder{}
}

// WithEngine sets the engine that drives the multiplexer.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithCommand sets the shared command record to arbitrate.
func (b Builder) WithCommand(cmd *signal.Command) Builder {
	b.cmd = cmd
	return b
}

// WithGrantLatency sets the number of cycles between observing a request
// and granting the channel. Zero means the channel is granted on the cycle
// it is requested.
func (b Builder) WithGrantLatency(cycles int) Builder {
	b.grantLatency = cycles
	return b
}

// Build builds a multiplexer model.
func (b Builder) Build(name string) *Comp {
	if b.cmd == nil {
		panic("mux requires a command record")
	}

	c := &Comp{
		cmd:          b.cmd,
		grantLatency: b.grantLatency,
	}
	c.TickingComponent = sim.NewSecondaryTickingComponent(name, b.engine, c)
	c.AddMiddleware(&middleware{Comp: c})

	return c
}
