// Package tracing provides hooks that observe the refresh subsystem.
package tracing

import (
	"log"

	"github.com/AEW2015/litedram/core/refresh"
	"github.com/AEW2015/litedram/sim"
)

// Logger is a hook that logs the refresh lifecycle.
type Logger struct {
	*log.Logger
}

// NewLogger creates a Logger that writes with the given log.Logger.
func NewLogger(logger *log.Logger) *Logger {
	return &Logger{Logger: logger}
}

// Func writes a log line for each refresh lifecycle hook.
func (l *Logger) Func(ctx sim.HookCtx) {
	name := ""
	if named, ok := ctx.Domain.(sim.Named); ok {
		name = named.Name()
	}

	switch ctx.Pos {
	case refresh.HookPosRefreshDue:
		l.Printf("%d, %s, refresh due", ctx.Item, name)
	case refresh.HookPosChannelGranted:
		l.Printf("%d, %s, channel granted", ctx.Item, name)
	case refresh.HookPosCommandIssue:
		item := ctx.Item.(refresh.CommandIssue)
		l.Printf("%d, %s, cmd %s, addr 0x%x, bank %d",
			item.Cycle, name, item.Kind, item.Address, item.Bank)
	case refresh.HookPosSequenceDone:
		l.Printf("%d, %s, sequence done", ctx.Item, name)
	}
}
