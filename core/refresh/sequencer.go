package refresh

import "github.com/AEW2015/litedram/core/signal"

// A Sequencer executes the refresh sequence on the command channel:
//   - drive a Precharge All command,
//   - wait tRP cycles,
//   - drive an Auto Refresh command,
//   - wait tRFC cycles.
//
// The address and bank payload is driven continuously. The strobes are a
// pure function of the cycles elapsed since Start, asserted for one cycle
// each at their scheduled offset.
type Sequencer struct {
	cmd *signal.Command

	tRP  int
	tRFC int

	running bool
	elapsed int
}

// NewSequencer creates a Sequencer that drives the given command record.
func NewSequencer(cmd *signal.Command, tRP, tRFC int) *Sequencer {
	return &Sequencer{
		cmd:  cmd,
		tRP:  tRP,
		tRFC: tRFC,
	}
}

// Start arms the sequence. The Precharge All strobes are driven on the same
// cycle when Tick runs after Start.
func (s *Sequencer) Start() {
	s.running = true
	s.elapsed = 0
}

// Running returns true while a started sequence has not completed.
func (s *Sequencer) Running() bool {
	return s.running
}

// Tick drives the command payload for the current cycle and returns true on
// the single cycle the sequence completes, tRP+tRFC cycles after Start.
func (s *Sequencer) Tick() (done bool) {
	s.cmd.Address = signal.AllBanksRow
	s.cmd.Bank = 0
	s.cmd.CAS = false
	s.cmd.RAS = false
	s.cmd.WE = false

	if !s.running {
		return false
	}

	switch s.elapsed {
	case 0:
		// Precharge All
		s.cmd.RAS = true
		s.cmd.WE = true
	case s.tRP:
		// Auto Refresh
		s.cmd.CAS = true
		s.cmd.RAS = true
	}

	done = s.elapsed == s.tRP+s.tRFC
	s.elapsed++

	if done {
		s.running = false
		s.elapsed = 0
	}

	return done
}
