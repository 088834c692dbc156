package refresh_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/AEW2015/litedram/core/refresh"
	"github.com/AEW2015/litedram/core/signal"
	"github.com/AEW2015/litedram/sim"
)

var _ = Describe("Refresher", func() {
	var (
		engine    *sim.SerialEngine
		refresher *refresh.Comp
		cmd       *signal.Command
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		refresher = refresh.MakeBuilder().
			WithEngine(engine).
			WithTREFI(100).
			WithTRP(5).
			WithTRFC(10).
			Build("Refresher")
		cmd = refresher.Command()
	})

	It("should never request the channel while idle", func() {
		cmd.Ready = true

		for cycle := 1; cycle <= 99; cycle++ {
			refresher.Tick()

			Expect(refresher.State()).To(Equal(refresh.StateIdle))
			Expect(cmd.Valid).To(BeFalse())
			Expect(cmd.Last).To(BeFalse())
		}
	})

	It("should follow the granted refresh cycle exactly", func() {
		cmd.Ready = true

		type observation struct {
			kind  signal.CommandKind
			valid bool
			last  bool
			state refresh.State
		}
		observed := map[int]observation{}

		for cycle := 1; cycle <= 300; cycle++ {
			refresher.Tick()
			observed[cycle] = observation{
				kind:  cmd.Kind(),
				valid: cmd.Valid,
				last:  cmd.Last,
				state: refresher.State(),
			}
		}

		Expect(observed[100].kind).To(
			Equal(signal.CmdKindPrechargeAll))
		Expect(observed[100].valid).To(BeTrue())
		Expect(observed[100].state).To(
			Equal(refresh.StateRunningSequence))

		Expect(observed[105].kind).To(
			Equal(signal.CmdKindAutoRefresh))
		Expect(observed[105].valid).To(BeTrue())

		Expect(observed[115].last).To(BeTrue())
		Expect(observed[115].valid).To(BeFalse())
		Expect(observed[115].state).To(Equal(refresh.StateIdle))

		Expect(observed[116].state).To(Equal(refresh.StateIdle))
		Expect(observed[116].last).To(BeFalse())

		// The timer keeps counting through the sequence, so the next
		// refresh starts exactly one interval after the previous one.
		Expect(observed[200].kind).To(
			Equal(signal.CmdKindPrechargeAll))
		Expect(observed[215].last).To(BeTrue())

		for cycle, o := range observed {
			switch cycle {
			case 100, 105, 200, 205, 300:
			default:
				Expect(o.kind).To(Equal(signal.CmdKindNop),
					"unexpected command at cycle %d", cycle)
			}
			if o.state == refresh.StateIdle {
				Expect(o.valid).To(BeFalse(),
					"valid asserted while idle at cycle %d",
					cycle)
			}
		}
	})

	It("should hold the request until the channel is granted", func() {
		cmd.Ready = false

		for cycle := 1; cycle <= 140; cycle++ {
			refresher.Tick()
		}

		Expect(refresher.State()).To(Equal(refresh.StateAwaitingGrant))
		Expect(cmd.Valid).To(BeTrue())
		Expect(cmd.Kind()).To(Equal(signal.CmdKindNop))

		cmd.Ready = true
		refresher.Tick()

		Expect(refresher.State()).To(
			Equal(refresh.StateRunningSequence))
		Expect(cmd.Kind()).To(Equal(signal.CmdKindPrechargeAll))
	})

	It("should not refresh while disabled", func() {
		disabled := refresh.MakeBuilder().
			WithEngine(engine).
			WithTREFI(10).
			WithTRP(2).
			WithTRFC(3).
			WithRefreshDisabled().
			Build("Refresher")
		disabled.Command().Ready = true

		for cycle := 1; cycle <= 200; cycle++ {
			disabled.Tick()

			Expect(disabled.State()).To(Equal(refresh.StateIdle))
			Expect(disabled.Command().Valid).To(BeFalse())
		}

		// Re-enabling restarts a full interval.
		disabled.SetEnabled(true)
		pulse := 0
		for cycle := 1; cycle <= 10; cycle++ {
			disabled.Tick()
			if disabled.Command().Kind() != signal.CmdKindNop {
				pulse = cycle
				break
			}
		}
		Expect(pulse).To(Equal(10))
	})

	It("should move the next refresh earlier on a shortened wait", func() {
		cmd.Ready = true

		for cycle := 1; cycle <= 10; cycle++ {
			refresher.Tick()
		}

		// The offer is adopted on cycle 11, so the count reaches zero
		// four cycles later and the refresh issues on cycle 16.
		refresher.ShortenWait(4)

		issued := 0
		for cycle := 11; cycle <= 16; cycle++ {
			refresher.Tick()
			if cmd.Kind() == signal.CmdKindPrechargeAll {
				issued = cycle
			}
		}

		Expect(issued).To(Equal(16))
	})

	It("should invoke lifecycle hooks", func() {
		mockCtrl := gomock.NewController(GinkgoT())
		defer mockCtrl.Finish()

		hook := NewMockHook(mockCtrl)
		hooked := refresh.MakeBuilder().
			WithEngine(engine).
			WithTREFI(4).
			WithTRP(1).
			WithTRFC(2).
			WithAdditionalHooks(hook).
			Build("Refresher")
		hooked.Command().Ready = true

		positions := []*sim.HookPos{}
		hook.EXPECT().
			Func(gomock.Any()).
			Do(func(ctx sim.HookCtx) {
				positions = append(positions, ctx.Pos)
			}).
			AnyTimes()

		for cycle := 1; cycle <= 7; cycle++ {
			hooked.Tick()
		}

		Expect(positions).To(Equal([]*sim.HookPos{
			refresh.HookPosRefreshDue,
			refresh.HookPosChannelGranted,
			refresh.HookPosCommandIssue,
			refresh.HookPosCommandIssue,
			refresh.HookPosSequenceDone,
		}))
	})
})
