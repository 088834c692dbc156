// Package refresh implements the DRAM refresh subsystem of the controller.
//
// The DRAM must be refreshed once every tREFI cycles or it silently loses
// data. A Timer marks when a refresh is due, the orchestrating Comp then
// requests the command channel from the multiplexer, and once granted a
// Sequencer drives the timed Precharge All / Auto Refresh sequence before
// the channel is released.
package refresh

import (
	"github.com/AEW2015/litedram/core/signal"
	"github.com/AEW2015/litedram/sim"
)

// State is the state of the refresh orchestrator.
type State int

// The states of the refresh orchestrator.
const (
	StateIdle State = iota
	StateAwaitingGrant
	StateRunningSequence
)

func (s State) String() string {
	switch s {
	case StateAwaitingGrant:
		return "AwaitingGrant"
	case StateRunningSequence:
		return "RunningSequence"
	default:
		return "Idle"
	}
}

// HookPosRefreshDue triggers on the cycle the timer pulses.
var HookPosRefreshDue = &sim.HookPos{Name: "RefreshDue"}

// HookPosChannelGranted triggers on the cycle the multiplexer grants the
// command channel.
var HookPosChannelGranted = &sim.HookPos{Name: "ChannelGranted"}

// HookPosCommandIssue triggers on every cycle a non-Nop command is driven.
var HookPosCommandIssue = &sim.HookPos{Name: "CommandIssue"}

// HookPosSequenceDone triggers on the cycle the refresh sequence completes
// and the channel is released.
var HookPosSequenceDone = &sim.HookPos{Name: "SequenceDone"}

// CommandIssue is the hook item attached to HookPosCommandIssue.
type CommandIssue struct {
	Cycle   sim.VTimeInCycle
	Kind    signal.CommandKind
	Address uint64
	Bank    int
}

// Comp is the refresh orchestrator. It owns the Timer and the Sequencer and
// arbitrates between them and the command multiplexer through the shared
// Command record.
//
// Comp ticks forever once kicked with TickLater; drive the simulation with
// Engine.RunUntil.
type Comp struct {
	*sim.TickingComponent
	sim.MiddlewareHolder

	cmd       *signal.Command
	timer     *Timer
	sequencer *Sequencer

	state   State
	enabled bool
}

// Tick updates the refresher state by one cycle.
func (c *Comp) Tick() bool {
	return c.MiddlewareHolder.Tick()
}

// Command returns the shared command record. The multiplexer reads the
// payload and handshake from it and drives the Ready field.
func (c *Comp) Command() *signal.Command {
	return c.cmd
}

// State returns the current orchestrator state.
func (c *Comp) State() State {
	return c.state
}

// Enabled returns whether refreshes are currently generated.
func (c *Comp) Enabled() bool {
	return c.enabled
}

// SetEnabled gates refresh generation. While disabled the timer is held at
// its reload value and no refresh is ever requested.
func (c *Comp) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// ShortenWait offers the timer a smaller remaining count, moving the next
// refresh earlier. Offers that would lengthen the wait are ignored. No
// policy in this package drives it; it is exposed for external schedulers.
func (c *Comp) ShortenWait(cycles int) {
	c.timer.Load(cycles)
}

type middleware struct {
	*Comp
}

func (m *middleware) Tick() bool {
	cmd := m.cmd
	due := m.timer.Done()

	cmd.Valid = false
	cmd.Last = false

	if m.state == StateIdle && due {
		m.state = StateAwaitingGrant
		m.invoke(HookPosRefreshDue, m.CurrentTime())
	}

	if m.state == StateAwaitingGrant {
		cmd.Valid = true
		if cmd.Ready {
			m.sequencer.Start()
			m.state = StateRunningSequence
			m.invoke(HookPosChannelGranted, m.CurrentTime())
		}
	}

	seqDone := m.sequencer.Tick()

	if m.state == StateRunningSequence {
		if seqDone {
			cmd.Valid = false
			cmd.Last = true
			m.state = StateIdle
			m.invoke(HookPosSequenceDone, m.CurrentTime())
		} else {
			cmd.Valid = true
		}
	}

	if kind := cmd.Kind(); kind != signal.CmdKindNop {
		m.invoke(HookPosCommandIssue, CommandIssue{
			Cycle:   m.CurrentTime(),
			Kind:    kind,
			Address: cmd.Address,
			Bank:    cmd.Bank,
		})
	}

	// The timer counts through the refresh sequence. Deasserting wait on
	// the pulse cycle reloads it, and holding wait low implements the
	// disable gate.
	m.timer.Tick(m.enabled && !due)

	return true
}

func (m *middleware) invoke(pos *sim.HookPos, item interface{}) {
	m.InvokeHook(sim.HookCtx{
		Domain: m.Comp,
		Pos:    pos,
		Item:   item,
	})
}
