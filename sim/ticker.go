package sim

import "sync"

// TickEvent is a generic event that a component uses to update its state
// cycle by cycle.
type TickEvent struct {
	*EventBase
}

// MakeTickEvent creates a new TickEvent.
func MakeTickEvent(handler Handler, cycle VTimeInCycle) TickEvent {
	return TickEvent{EventBase: NewEventBase(cycle, handler)}
}

// MakeSecondaryTickEvent creates a TickEvent that is handled after all
// primary events of the same cycle.
func MakeSecondaryTickEvent(handler Handler, cycle VTimeInCycle) TickEvent {
	evt := MakeTickEvent(handler, cycle)
	evt.secondary = true

	return evt
}

// A Ticker updates its state when the clock ticks. It returns true if any
// progress is made during the tick.
type Ticker interface {
	Tick() bool
}

// TickScheduler schedules tick events on behalf of a handler.
type TickScheduler struct {
	lock      sync.Mutex
	handler   Handler
	Engine    Engine
	secondary bool

	hasNextTick  bool
	nextTickTime VTimeInCycle
}

// NewTickScheduler creates a scheduler for tick events.
func NewTickScheduler(handler Handler, engine Engine) *TickScheduler {
	return &TickScheduler{
		handler: handler,
		Engine:  engine,
	}
}

// NewSecondaryTickScheduler creates a scheduler whose ticks are handled
// after all the primary ticks of the same cycle.
func NewSecondaryTickScheduler(handler Handler, engine Engine) *TickScheduler {
	return &TickScheduler{
		handler:   handler,
		Engine:    engine,
		secondary: true,
	}
}

// TickNow schedules a tick event at the current cycle.
func (t *TickScheduler) TickNow() {
	t.scheduleTick(t.Engine.CurrentTime())
}

// TickLater schedules a tick event at the cycle after the current one.
func (t *TickScheduler) TickLater() {
	t.scheduleTick(t.Engine.CurrentTime() + 1)
}

func (t *TickScheduler) scheduleTick(cycle VTimeInCycle) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.hasNextTick && t.nextTickTime >= cycle {
		return
	}

	t.hasNextTick = true
	t.nextTickTime = cycle

	tick := MakeTickEvent(t.handler, cycle)
	tick.secondary = t.secondary

	t.Engine.Schedule(tick)
}

// CurrentTime returns the current cycle of the underlying engine.
func (t *TickScheduler) CurrentTime() VTimeInCycle {
	return t.Engine.CurrentTime()
}
