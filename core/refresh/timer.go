package refresh

// A Timer generates the periodic pulse that marks a refresh as due. It
// counts down from tREFI-1 and reports Done on the cycle the count reaches
// zero. The owner deasserts wait for that one cycle, which reloads the
// counter, so Done pulses for exactly one cycle out of every tREFI.
type Timer struct {
	interval int
	count    int

	loadPending bool
	loadCount   int
}

// NewTimer creates a Timer that pulses every tREFI cycles.
func NewTimer(tREFI int) *Timer {
	return &Timer{
		interval: tREFI,
		count:    tREFI - 1,
	}
}

// Done returns true while the countdown sits at zero.
func (t *Timer) Done() bool {
	return t.count == 0
}

// Count returns the remaining cycles before the next pulse.
func (t *Timer) Count() int {
	return t.count
}

// Load offers a smaller remaining count to adopt on the next cycle. The
// offer is dropped if it would not shorten the current wait.
func (t *Timer) Load(count int) {
	t.loadPending = true
	t.loadCount = count
}

// Tick advances the timer by one cycle. While wait is deasserted the
// counter is pinned at its reload value, which both implements the external
// disable gate and reloads the counter on the cycle after a pulse.
func (t *Timer) Tick(wait bool) {
	if !wait {
		t.count = t.interval - 1
		return
	}

	if t.count == 0 {
		return
	}

	if t.loadPending {
		adopt := t.loadCount < t.count
		t.loadPending = false

		if adopt {
			t.count = t.loadCount
			return
		}
	}

	t.count--
}
