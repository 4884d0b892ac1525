package godice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// Source is the randomness provider for dice rolls.
//
// Implementations must be safe for concurrent use.
type Source interface {
	// Intn returns a random int in [0, n). n > 0.
	Intn(n int) int
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a Source seeded with seed. Two sources with the same
// seed produce the same draws.
func NewSource(seed int64) Source {
	return &lockedSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
