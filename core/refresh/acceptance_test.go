package refresh_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/AEW2015/litedram/core/mux"
	"github.com/AEW2015/litedram/core/refresh"
	"github.com/AEW2015/litedram/sim"
)

var _ = Describe("Refresher and Mux", func() {
	var (
		engine    *sim.SerialEngine
		refresher *refresh.Comp
	)

	buildMux := func(grantLatency int) *mux.Comp {
		return mux.MakeBuilder().
			WithEngine(engine).
			WithCommand(refresher.Command()).
			WithGrantLatency(grantLatency).
			Build("Mux")
	}

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		refresher = refresh.MakeBuilder().
			WithEngine(engine).
			WithTREFI(100).
			WithTRP(5).
			WithTRFC(10).
			Build("Refresher")
	})

	It("should refresh once per interval with an immediate grant", func() {
		muxComp := buildMux(0)

		refresher.TickLater()
		muxComp.TickLater()

		err := engine.RunUntil(1000)

		Expect(err).To(BeNil())
		Expect(muxComp.GrantCount()).To(Equal(10))
		Expect(muxComp.PrechargeAllCount()).To(Equal(10))
		Expect(muxComp.AutoRefreshCount()).To(Equal(9))
		Expect(muxComp.ReleaseCount()).To(Equal(9))
	})

	It("should delay the sequence by the grant latency", func() {
		muxComp := buildMux(3)

		refresher.TickLater()
		muxComp.TickLater()

		err := engine.RunUntil(250)

		Expect(err).To(BeNil())

		// Requests at 100 and 200 are granted at 103 and 203, so both
		// sequences complete at 118 and 218. The timer is unaffected
		// by the grant delay.
		Expect(muxComp.GrantCount()).To(Equal(2))
		Expect(muxComp.PrechargeAllCount()).To(Equal(2))
		Expect(muxComp.AutoRefreshCount()).To(Equal(2))
		Expect(muxComp.ReleaseCount()).To(Equal(2))
	})
})
