package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/AEW2015/litedram/sim"
)

type recordingHandler struct {
	handled []sim.VTimeInCycle
}

func (h *recordingHandler) Handle(e sim.Event) error {
	h.handled = append(h.handled, e.Time())
	return nil
}

type orderedHandler struct {
	label string
	order *[]string
}

func (h *orderedHandler) Handle(e sim.Event) error {
	*h.order = append(*h.order, h.label)
	return nil
}

var _ = Describe("SerialEngine", func() {
	var (
		engine  *sim.SerialEngine
		handler *recordingHandler
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		handler = &recordingHandler{}
	})

	It("should handle events in time order", func() {
		engine.Schedule(sim.MakeTickEvent(handler, 3))
		engine.Schedule(sim.MakeTickEvent(handler, 1))
		engine.Schedule(sim.MakeTickEvent(handler, 2))

		err := engine.Run()

		Expect(err).To(BeNil())
		Expect(handler.handled).To(Equal(
			[]sim.VTimeInCycle{1, 2, 3}))
		Expect(engine.CurrentTime()).To(Equal(sim.VTimeInCycle(3)))
	})

	It("should stop at the RunUntil horizon", func() {
		for c := sim.VTimeInCycle(1); c <= 10; c++ {
			engine.Schedule(sim.MakeTickEvent(handler, c))
		}

		err := engine.RunUntil(4)

		Expect(err).To(BeNil())
		Expect(handler.handled).To(HaveLen(4))
		Expect(engine.CurrentTime()).To(Equal(sim.VTimeInCycle(4)))

		err = engine.RunUntil(10)

		Expect(err).To(BeNil())
		Expect(handler.handled).To(HaveLen(10))
	})

	It("should handle secondary events after same-cycle primary events", func() {
		order := []string{}
		primary := &orderedHandler{label: "primary", order: &order}
		secondary := &orderedHandler{label: "secondary", order: &order}

		engine.Schedule(sim.MakeSecondaryTickEvent(secondary, 1))
		engine.Schedule(sim.MakeTickEvent(primary, 1))

		err := engine.Run()

		Expect(err).To(BeNil())
		Expect(order).To(Equal([]string{"primary", "secondary"}))
	})
})
