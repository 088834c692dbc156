package sim

import (
	"log"
	"sync"
)

// HookPosBeforeEvent triggers before the engine handles an event.
var HookPosBeforeEvent = &HookPos{Name: "BeforeEvent"}

// HookPosAfterEvent triggers after the engine handles an event.
var HookPosAfterEvent = &HookPos{Name: "AfterEvent"}

// A SerialEngine runs events one after another in time order.
type SerialEngine struct {
	HookableBase

	timeLock sync.RWMutex
	now      VTimeInCycle

	queue          EventQueue
	secondaryQueue EventQueue

	runLock sync.Mutex
}

// NewSerialEngine creates a SerialEngine.
func NewSerialEngine() *SerialEngine {
	e := new(SerialEngine)
	e.queue = NewEventQueue()
	e.secondaryQueue = NewEventQueue()

	return e
}

// Schedule registers an event to happen in the future.
func (e *SerialEngine) Schedule(evt Event) {
	now := e.readNow()
	if evt.Time() < now {
		log.Panicf(
			"cannot schedule event in the past, evt @ %d, now %d",
			evt.Time(), now)
	}

	if evt.IsSecondary() {
		e.secondaryQueue.Push(evt)
		return
	}

	e.queue.Push(evt)
}

func (e *SerialEngine) readNow() VTimeInCycle {
	e.timeLock.RLock()
	t := e.now
	e.timeLock.RUnlock()

	return t
}

func (e *SerialEngine) writeNow(t VTimeInCycle) {
	e.timeLock.Lock()
	e.now = t
	e.timeLock.Unlock()
}

// Run processes all the events scheduled in the engine.
func (e *SerialEngine) Run() error {
	e.runLock.Lock()
	defer e.runLock.Unlock()

	for e.hasEvent() {
		e.runNextEvent()
	}

	return nil
}

// RunUntil processes events up to and including the given cycle. Events
// scheduled later stay in the queues.
func (e *SerialEngine) RunUntil(cycle VTimeInCycle) error {
	e.runLock.Lock()
	defer e.runLock.Unlock()

	for e.hasEvent() && e.nextEventTime() <= cycle {
		e.runNextEvent()
	}

	return nil
}

func (e *SerialEngine) hasEvent() bool {
	return e.queue.Len() > 0 || e.secondaryQueue.Len() > 0
}

func (e *SerialEngine) nextEventTime() VTimeInCycle {
	if e.queue.Len() == 0 {
		return e.secondaryQueue.Peek().Time()
	}

	if e.secondaryQueue.Len() == 0 {
		return e.queue.Peek().Time()
	}

	primary := e.queue.Peek().Time()
	secondary := e.secondaryQueue.Peek().Time()

	if primary <= secondary {
		return primary
	}

	return secondary
}

func (e *SerialEngine) runNextEvent() {
	evt := e.popNextEvent()
	now := e.readNow()

	if evt.Time() < now {
		log.Panicf(
			"cannot run event in the past, evt @ %d, now %d",
			evt.Time(), now)
	}

	e.writeNow(evt.Time())

	hookCtx := HookCtx{
		Domain: e,
		Pos:    HookPosBeforeEvent,
		Item:   evt,
	}
	e.InvokeHook(hookCtx)

	handler := evt.Handler()
	err := handler.Handle(evt)
	if err != nil {
		log.Panic(err)
	}

	hookCtx.Pos = HookPosAfterEvent
	e.InvokeHook(hookCtx)
}

// popNextEvent returns the next event to handle. Primary events win ties
// against secondary events at the same cycle.
func (e *SerialEngine) popNextEvent() Event {
	if e.queue.Len() == 0 {
		return e.secondaryQueue.Pop()
	}

	if e.secondaryQueue.Len() == 0 {
		return e.queue.Pop()
	}

	if e.queue.Peek().Time() <= e.secondaryQueue.Peek().Time() {
		return e.queue.Pop()
	}

	return e.secondaryQueue.Pop()
}

// CurrentTime returns the cycle of the most recently handled event.
func (e *SerialEngine) CurrentTime() VTimeInCycle {
	return e.readNow()
}
