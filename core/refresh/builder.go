package refresh

import (
	"fmt"

	"github.com/AEW2015/litedram/core/signal"
	"github.com/AEW2015/litedram/sim"
)

// Builder can build refresh orchestrators.
type Builder struct {
	engine sim.Engine
	hooks  []sim.Hook

	tREFI    int
	tRP      int
	tRFC     int
	disabled bool
}

// MakeBuilder creates a builder with default DDR3 timing.
func MakeBuilder() Builder {
	return Builder{
		tREFI: 6240,
		tRP:   11,
		tRFC:  208,
	}
}

// WithEngine sets the engine that drives the refresher.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithTREFI sets the refresh interval in cycles.
func (b Builder) WithTREFI(cycle int) Builder {
	b.tREFI = cycle
	return b
}

// WithTRP sets the row precharge latency in cycles.
func (b Builder) WithTRP(cycle int) Builder {
	b.tRP = cycle
	return b
}

// WithTRFC sets the refresh cycle time in cycles.
func (b Builder) WithTRFC(cycle int) Builder {
	b.tRFC = cycle
	return b
}

// WithRefreshDisabled builds the refresher with the enable gate deasserted.
// The gate can be flipped later with SetEnabled.
func (b Builder) WithRefreshDisabled() Builder {
	b.disabled = true
	return b
}

// WithAdditionalHooks adds a hook to the refresher.
func (b Builder) WithAdditionalHooks(h sim.Hook) Builder {
	b.hooks = append(b.hooks, h)
	return b
}

// Build builds a refresh orchestrator.
func (b Builder) Build(name string) *Comp {
	b.timingMustBePositive()

	c := &Comp{
		cmd:     &signal.Command{},
		enabled: !b.disabled,
	}
	c.timer = NewTimer(b.tREFI)
	c.sequencer = NewSequencer(c.cmd, b.tRP, b.tRFC)
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, c)

	for _, h := range b.hooks {
		c.AcceptHook(h)
	}

	c.AddMiddleware(&middleware{Comp: c})

	return c
}

func (b Builder) timingMustBePositive() {
	if b.tREFI <= 0 || b.tRP <= 0 || b.tRFC <= 0 {
		panic(fmt.Sprintf(
			"refresh timing must be positive, tREFI %d, tRP %d, tRFC %d",
			b.tREFI, b.tRP, b.tRFC))
	}
}
