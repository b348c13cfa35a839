package service

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the source of randomness for game outcomes. Injecting it lets
// tests script exact draws.
type Rand interface {
	Intn(n int) int
	Int63n(n int64) int64
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// lockedRand wraps math/rand for concurrent use from multiple command
// handlers.
type lockedRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

// NewRand returns a process-seeded Rand
func NewRand() Rand {
	return &lockedRand{src: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(n)
}

func (r *lockedRand) Int63n(n int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Int63n(n)
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

func (r *lockedRand) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.src.Shuffle(n, swap)
}
