// Package signal defines the command-channel record that the refresh
// subsystem shares with the command multiplexer.
package signal

// AllBanksRow is the row-address pattern driven during refresh. Bit 10 is
// the auto-precharge/all-banks bit, so a Precharge command carrying it
// closes every open row in the rank.
const AllBanksRow uint64 = 1 << 10

// CommandKind classifies the command currently driven on the channel.
type CommandKind int

// The command kinds that the refresh subsystem can drive.
const (
	CmdKindNop CommandKind = iota
	CmdKindPrechargeAll
	CmdKindAutoRefresh
)

func (k CommandKind) String() string {
	switch k {
	case CmdKindPrechargeAll:
		return "PrechargeAll"
	case CmdKindAutoRefresh:
		return "AutoRefresh"
	default:
		return "Nop"
	}
}

// A Command is the request record exchanged with the command multiplexer.
// The payload fields mirror the address and control lines of the command
// bus. The handshake fields transfer channel ownership: the requester holds
// Valid until it observes Ready, and Last marks the cycle after which the
// requester relinquishes the channel.
type Command struct {
	Address uint64
	Bank    int

	// Control strobes. Active for a single cycle each.
	CAS bool
	RAS bool
	WE  bool

	// Handshake. Ready is driven by the multiplexer, the rest by the
	// requester.
	Valid bool
	Ready bool
	Last  bool
}

// Kind decodes the strobe lines into a command kind.
func (c *Command) Kind() CommandKind {
	switch {
	case c.RAS && c.WE && !c.CAS:
		return CmdKindPrechargeAll
	case c.CAS && c.RAS && !c.WE:
		return CmdKindAutoRefresh
	default:
		return CmdKindNop
	}
}
