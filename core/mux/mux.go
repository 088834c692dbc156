// Package mux models the command-channel multiplexer arm that serves the
// refresh subsystem. It watches the shared command record, grants the
// channel after a configurable latency, and releases it when the refresher
// marks its last cycle.
//
// The real multiplexer also arbitrates read/write traffic; this model only
// implements the refresh arm and guarantees that no other traffic is issued
// while the refresher owns the channel.
package mux

import (
	"github.com/AEW2015/litedram/core/signal"
	"github.com/AEW2015/litedram/sim"
)

// Comp is the multiplexer model. It ticks as a secondary component so that
// it always observes the refresher's outputs for the same cycle.
type Comp struct {
	*sim.TickingComponent
	sim.MiddlewareHolder

	cmd *signal.Command

	grantLatency int
	countdown    int
	pending      bool
	owned        bool

	prechargeAllCount int
	autoRefreshCount  int
	grantCount        int
	releaseCount      int
}

// Tick updates the multiplexer state by one cycle.
func (c *Comp) Tick() bool {
	return c.MiddlewareHolder.Tick()
}

// PrechargeAllCount returns the number of Precharge All commands observed.
func (c *Comp) PrechargeAllCount() int {
	return c.prechargeAllCount
}

// AutoRefreshCount returns the number of Auto Refresh commands observed.
func (c *Comp) AutoRefreshCount() int {
	return c.autoRefreshCount
}

// GrantCount returns the number of times the channel was granted.
func (c *Comp) GrantCount() int {
	return c.grantCount
}

// ReleaseCount returns the number of completed ownership windows.
func (c *Comp) ReleaseCount() int {
	return c.releaseCount
}

type middleware struct {
	*Comp
}

func (m *middleware) Tick() bool {
	m.countCommands()
	m.driveReady()

	return true
}

func (m *middleware) countCommands() {
	switch m.cmd.Kind() {
	case signal.CmdKindPrechargeAll:
		m.prechargeAllCount++
	case signal.CmdKindAutoRefresh:
		m.autoRefreshCount++
	}
}

func (m *middleware) driveReady() {
	cmd := m.cmd

	if m.owned {
		if cmd.Last {
			m.owned = false
			m.releaseCount++
			cmd.Ready = m.grantLatency == 0
		}
		return
	}

	// Zero latency models a channel that is granted on the cycle it is
	// requested, so Ready is held high whenever the channel is free.
	if m.grantLatency == 0 {
		cmd.Ready = true
		if cmd.Valid {
			m.owned = true
			m.grantCount++
		}
		return
	}

	cmd.Ready = false

	if !m.pending && cmd.Valid {
		m.pending = true
		m.countdown = m.grantLatency
	}

	if m.pending {
		m.countdown--
		if m.countdown <= 0 {
			m.pending = false
			m.owned = true
			m.grantCount++
			cmd.Ready = true
		}
	}
}
