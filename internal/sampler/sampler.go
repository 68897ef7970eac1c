// Package sampler draws reproducible random hands from the catalog.
package sampler

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/handscore/internal/catalog"
	"github.com/lox/handscore/internal/scoring"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// ErrInvalidConstraint is returned when a constrained draw cannot be satisfied.
var ErrInvalidConstraint = errors.New("invalid draw constraint")

// NewRand returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG seeds are derived from it so every call site gets the same sequence.
func NewRand(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// SeedFor derives the seed of the n-th item of a run from the run's seed.
func SeedFor(seed int64, n int) int64 {
	return int64(mix(uint64(seed) + uint64(n+1)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Sampler draws hands. It is not safe for concurrent use.
type Sampler struct {
	rng *rand.Rand
}

// New returns a sampler seeded with seed
func New(seed int64) *Sampler {
	return &Sampler{rng: NewRand(seed)}
}

// NewWithRand wraps an existing random source
func NewWithRand(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Hand draws scoring.HandSize distinct cards from the whole catalog.
func (s *Sampler) Hand(cat *catalog.Catalog) scoring.Hand {
	pool := make([]catalog.Index, cat.Len())
	for i := range pool {
		pool[i] = catalog.Index(i)
	}
	return scoring.Hand(s.draw(pool, scoring.HandSize))
}

// Group asks for Count cards of one rank.
type Group struct {
	Rank  catalog.Rank
	Count int
}

// Constrained draws the requested rank groups first, then fills the hand
// with cards of ranks not named by any group. Groups appear in the hand in
// the order given, followed by the filler cards.
func (s *Sampler) Constrained(cat *catalog.Catalog, groups []Group) (scoring.Hand, error) {
	named := make(map[catalog.Rank]bool, len(groups))
	total := 0
	for _, g := range groups {
		if g.Rank < catalog.Two || g.Rank > catalog.Ace {
			return nil, fmt.Errorf("%w: rank %d out of range", ErrInvalidConstraint, g.Rank)
		}
		if g.Count < 1 || g.Count > len(catalog.Suits) {
			return nil, fmt.Errorf("%w: cannot draw %d cards of rank %s", ErrInvalidConstraint, g.Count, g.Rank)
		}
		if named[g.Rank] {
			return nil, fmt.Errorf("%w: rank %s named twice", ErrInvalidConstraint, g.Rank)
		}
		named[g.Rank] = true
		total += g.Count
	}
	if total > scoring.HandSize {
		return nil, fmt.Errorf("%w: groups ask for %d cards, hand holds %d", ErrInvalidConstraint, total, scoring.HandSize)
	}

	hand := make(scoring.Hand, 0, scoring.HandSize)
	for _, g := range groups {
		var pool []catalog.Index
		for _, suit := range catalog.Suits {
			idx, _ := cat.IndexOf(g.Rank, suit)
			pool = append(pool, idx)
		}
		hand = append(hand, s.draw(pool, g.Count)...)
	}

	var rest []catalog.Index
	for _, c := range cat.Cards() {
		if !named[c.Rank] {
			rest = append(rest, c.Index)
		}
	}
	hand = append(hand, s.draw(rest, scoring.HandSize-total)...)
	return hand, nil
}

// draw takes n cards from pool with a partial Fisher-Yates shuffle. pool is
// reordered in place.
func (s *Sampler) draw(pool []catalog.Index, n int) []catalog.Index {
	n = min(n, len(pool))
	for i := 0; i < n; i++ {
		j := i + s.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	out := make([]catalog.Index, n)
	copy(out, pool[:n])
	return out
}
