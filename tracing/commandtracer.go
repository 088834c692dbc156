package tracing

import (
	"github.com/AEW2015/litedram/core/refresh"
	"github.com/AEW2015/litedram/datarecording"
	"github.com/AEW2015/litedram/sim"
)

const commandTable = "refresh_commands"

// CommandEntry is one recorded command-bus command.
type CommandEntry struct {
	Cycle   uint64
	Kind    string
	Address uint64
	Bank    int
}

// CommandTracer is a hook that records every command the refresher issues
// into a DataRecorder table.
type CommandTracer struct {
	recorder datarecording.DataRecorder
}

// NewCommandTracer creates a CommandTracer writing to the given recorder.
func NewCommandTracer(recorder datarecording.DataRecorder) *CommandTracer {
	recorder.CreateTable(commandTable, CommandEntry{})

	return &CommandTracer{recorder: recorder}
}

// Func records command-issue hooks.
func (t *CommandTracer) Func(ctx sim.HookCtx) {
	if ctx.Pos != refresh.HookPosCommandIssue {
		return
	}

	item := ctx.Item.(refresh.CommandIssue)

	t.recorder.InsertData(commandTable, CommandEntry{
		Cycle:   uint64(item.Cycle),
		Kind:    item.Kind.String(),
		Address: item.Address,
		Bank:    item.Bank,
	})
}
