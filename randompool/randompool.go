// Package randompool holds the seeded, indexed stream of random numbers that
// every art piece draws from.
//
// A Pool is created once per seed and is read-only from the pieces' point of
// view: asking for index i always returns the same value for the life of the
// pool, no matter who asked first or how often.
package randompool

import (
	"hash/crc64"
	"math/rand"
	"sync"

	"github.com/rs/zerolog/log"
)

var crcTable = crc64.MakeTable(crc64.ECMA)

// Pool is a memoized stream of pseudo-random floats in [0,1).
type Pool struct {
	seed string

	mu   sync.Mutex
	rng  *rand.Rand
	pool []float64
}

// New returns a pool seeded from an arbitrary string.
func New(seed string) *Pool {
	return &Pool{
		seed: seed,
		rng:  rand.New(rand.NewSource(seedToInt(seed))),
	}
}

func seedToInt(seed string) int64 {
	return int64(crc64.Checksum([]byte(seed), crcTable))
}

// Seed returns the seed the pool was created with.
func (p *Pool) Seed() string {
	return p.seed
}

// Get returns value i. Negative indexes are logged and yield 0 since this is
// called from per-cell loops.
func (p *Pool) Get(i int) float64 {
	if i < 0 {
		log.Error().Int("index", i).Str("seed", p.seed).Msg("can't get negative random pool index")
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fill(i)
	return p.pool[i]
}

// fill materializes indexes 0..i. Callers hold mu.
func (p *Pool) fill(i int) {
	for i >= len(p.pool) {
		p.pool = append(p.pool, p.rng.Float64())
	}
}

// Len returns how many values have been materialized so far.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pool)
}

// Values returns a copy of the first n values.
func (p *Pool) Values(n int) []float64 {
	if n <= 0 {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fill(n - 1)
	out := make([]float64, n)
	copy(out, p.pool[:n])
	return out
}

// Stream returns a fresh cursor starting at index 0.
func (p *Pool) Stream() *Stream {
	return &Stream{pool: p}
}

// StreamAt returns a cursor starting at index start.
func (p *Pool) StreamAt(start int) *Stream {
	if start < 0 {
		start = 0
	}
	return &Stream{pool: p, next: start}
}

// Stream is a private, monotonically increasing index into a Pool. Each
// generator owns its own Stream so pieces never consume each other's draws.
type Stream struct {
	pool *Pool
	next int
}

// Next returns the value at the cursor and advances it.
func (s *Stream) Next() float64 {
	v := s.pool.Get(s.next)
	s.next++
	return v
}

// Index returns the index the next call to Next will read.
func (s *Stream) Index() int {
	return s.next
}
