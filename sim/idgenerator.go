package sim

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"
)

// IDGenerator generates unique IDs for events and components.
type IDGenerator interface {
	Generate() string
}

var (
	idGeneratorMu sync.Mutex
	idGenerator   IDGenerator
)

// GetIDGenerator returns the ID generator used in the current simulation.
// The default generator is sequential and deterministic.
func GetIDGenerator() IDGenerator {
	idGeneratorMu.Lock()
	defer idGeneratorMu.Unlock()

	if idGenerator == nil {
		idGenerator = &sequentialIDGenerator{}
	}

	return idGenerator
}

// UseParallelIDGenerator switches to a generator that is safe to use from
// parallel engines. The generated IDs are no longer deterministic.
func UseParallelIDGenerator() {
	idGeneratorMu.Lock()
	idGenerator = parallelIDGenerator{}
	idGeneratorMu.Unlock()
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	n := atomic.AddUint64(&g.nextID, 1)
	return strconv.FormatUint(n, 10)
}

type parallelIDGenerator struct{}

func (g parallelIDGenerator) Generate() string {
	return xid.New().String()
}
