package treap

import (
	"math/rand"
	"sync"
	"time"
)

// Source supplies node priorities. Its only job is to decorrelate tree shape
// from the order of edits.
type Source interface {
	Priority() uint64
}

// LockedSource is a seeded Source that is safe to share between goroutines.
type LockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a LockedSource seeded with seed.
func NewSource(seed int64) *LockedSource {
	return &LockedSource{rng: rand.New(rand.NewSource(seed))}
}

// Priority returns the next priority.
func (s *LockedSource) Priority() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Uint64()
}

var defaultSource = NewSource(time.Now().UnixNano())

// DefaultSource returns the process-wide source, seeded from the clock.
func DefaultSource() Source {
	return defaultSource
}
