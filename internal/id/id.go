// Package id issues ULIDs stamped with simulated time.
package id

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator hands out ULIDs whose timestamp is the simulated date and
// whose entropy comes from a seeded stream, so a replay of the same seed
// produces the same identifiers.
type Generator struct {
	mu      sync.Mutex
	entropy io.Reader
	now     func() time.Time
}

func NewGenerator(seed int64, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	// Monotonic keeps IDs minted in the same simulated month ordered.
	return &Generator{
		entropy: ulid.Monotonic(rand.New(rand.NewSource(seed)), 0),
		now:     now,
	}
}

// New returns the next ULID string.
func (g *Generator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(g.now().UTC()), g.entropy)
	if err != nil {
		// Only reachable if more than 2^80 IDs share one millisecond.
		panic(err)
	}
	return id.String()
}
