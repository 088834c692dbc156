package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/AEW2015/litedram/core/mux"
	"github.com/AEW2015/litedram/core/refresh"
	"github.com/AEW2015/litedram/datarecording"
	"github.com/AEW2015/litedram/sim"
	"github.com/AEW2015/litedram/tracing"
)

var runFlags struct {
	cycles       uint64
	tREFI        int
	tRP          int
	tRFC         int
	grantLatency int
	trace        string
	noRefresh    bool
	verbose      bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a refresh subsystem simulation for a number of cycles.",
	RunE:  runSimulation,
}

func init() {
	runCmd.Flags().Uint64Var(&runFlags.cycles, "cycles", 100000,
		"number of cycles to simulate")
	runCmd.Flags().IntVar(&runFlags.tREFI, "trefi", 6240,
		"refresh interval in cycles")
	runCmd.Flags().IntVar(&runFlags.tRP, "trp", 11,
		"row precharge latency in cycles")
	runCmd.Flags().IntVar(&runFlags.tRFC, "trfc", 208,
		"refresh cycle time in cycles")
	runCmd.Flags().IntVar(&runFlags.grantLatency, "grant-latency", 0,
		"cycles between a channel request and its grant")
	runCmd.Flags().StringVar(&runFlags.trace, "trace",
		os.Getenv("LITEDRAM_TRACE"),
		"record issued commands into this SQLite database")
	runCmd.Flags().BoolVar(&runFlags.noRefresh, "no-refresh", false,
		"build the refresher with the enable gate deasserted")
	runCmd.Flags().BoolVarP(&runFlags.verbose, "verbose", "v", false,
		"log every refresh lifecycle event")

	rootCmd.AddCommand(runCmd)
}

func runSimulation(_ *cobra.Command, _ []string) error {
	engine := sim.NewSerialEngine()

	builder := refresh.MakeBuilder().
		WithEngine(engine).
		WithTREFI(runFlags.tREFI).
		WithTRP(runFlags.tRP).
		WithTRFC(runFlags.tRFC)

	if runFlags.noRefresh {
		builder = builder.WithRefreshDisabled()
	}

	if runFlags.verbose {
		logger := tracing.NewLogger(
			log.New(os.Stdout, "", 0))
		builder = builder.WithAdditionalHooks(logger)
	}

	var recorder datarecording.DataRecorder
	if runFlags.trace != "" {
		recorder = datarecording.New(runFlags.trace)
		builder = builder.WithAdditionalHooks(
			tracing.NewCommandTracer(recorder))
	}

	refresher := builder.Build("Refresher")

	muxComp := mux.MakeBuilder().
		WithEngine(engine).
		WithCommand(refresher.Command()).
		WithGrantLatency(runFlags.grantLatency).
		Build("Mux")

	refresher.TickLater()
	muxComp.TickLater()

	err := engine.RunUntil(sim.VTimeInCycle(runFlags.cycles))
	if err != nil {
		return err
	}

	if recorder != nil {
		recorder.Flush()
	}

	fmt.Printf("cycles:         %d\n", runFlags.cycles)
	fmt.Printf("precharge all:  %d\n", muxComp.PrechargeAllCount())
	fmt.Printf("auto refresh:   %d\n", muxComp.AutoRefreshCount())
	fmt.Printf("grants:         %d\n", muxComp.GrantCount())
	fmt.Printf("releases:       %d\n", muxComp.ReleaseCount())

	return nil
}
