package sim

// VTimeInCycle is simulated time, counted in controller clock cycles.
type VTimeInCycle uint64

// An Event is something that happens at a cycle in the simulated future.
type Event interface {
	// Time returns the cycle at which the event should be handled.
	Time() VTimeInCycle

	// Handler returns the handler that should handle the event.
	Handler() Handler

	// IsSecondary marks events that must be handled after all primary
	// events scheduled for the same cycle.
	IsSecondary() bool
}

// A Handler is a domain that events are dispatched to.
type Handler interface {
	Handle(e Event) error
}

// EventBase provides the common fields and getters for events.
type EventBase struct {
	ID        string
	time      VTimeInCycle
	handler   Handler
	secondary bool
}

// NewEventBase creates a new EventBase.
func NewEventBase(t VTimeInCycle, handler Handler) *EventBase {
	e := new(EventBase)
	e.ID = GetIDGenerator().Generate()
	e.time = t
	e.handler = handler

	return e
}

// Time returns the cycle at which the event happens.
func (e EventBase) Time() VTimeInCycle {
	return e.time
}

// Handler returns the handler that handles the event.
func (e EventBase) Handler() Handler {
	return e.handler
}

// IsSecondary returns true if the event is a secondary event.
func (e EventBase) IsSecondary() bool {
	return e.secondary
}
