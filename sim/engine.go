package sim

// TimeTeller can be used to get the current cycle.
type TimeTeller interface {
	CurrentTime() VTimeInCycle
}

// EventScheduler can be used to schedule future events.
type EventScheduler interface {
	TimeTeller

	Schedule(e Event)
}

// An Engine drives the discrete event simulation.
type Engine interface {
	Hookable
	EventScheduler

	// Run processes events until no event is left in the queues.
	Run() error

	// RunUntil processes events up to and including the given cycle,
	// leaving later events queued. It exists because perpetual control
	// components never let the event queues drain.
	RunUntil(cycle VTimeInCycle) error
}
