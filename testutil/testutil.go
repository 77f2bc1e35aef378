package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bytes returns n pseudo-random bytes covering the full 0x00-0xff range,
// so NUL bytes and newlines appear regularly.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	_, _ = r.rand.Read(b)
	return b
}

// Lines returns n newline-terminated lines of printable text, each at most
// width characters long. This mimics the ClassAd-style status files that
// daemons persist.
func (r *RNG) Lines(n, width int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 =:.<>\"_-"
	var buf []byte
	for range n {
		w := r.rand.Intn(width + 1)
		for range w {
			buf = append(buf, alphabet[r.rand.Intn(len(alphabet))])
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// Contents returns count random contents with sizes in [0, maxSize]. The
// first element is always empty.
func (r *RNG) Contents(count, maxSize int) [][]byte {
	out := make([][]byte, 0, count)
	if count > 0 {
		out = append(out, []byte{})
	}
	for len(out) < count {
		out = append(out, r.Bytes(r.Intn(maxSize+1)))
	}
	return out
}
