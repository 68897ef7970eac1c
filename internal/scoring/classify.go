package scoring

import (
	"slices"

	"github.com/lox/handscore/internal/catalog"
)

// Lookup resolves catalog indices to cards.
type Lookup interface {
	Card(i catalog.Index) catalog.Card
}

// shape is the per-subset analysis the emission rules branch on.
type shape struct {
	cards    [SubsetSize]catalog.Card // ascending by rank, stable
	flush    bool
	straight bool
	counts   map[catalog.Rank]int
	maxGroup int
}

func analyze(subset Subset, cat Lookup) shape {
	var s shape
	for i, idx := range subset {
		s.cards[i] = cat.Card(idx)
	}
	slices.SortStableFunc(s.cards[:], func(a, b catalog.Card) int {
		return int(a.Rank) - int(b.Rank)
	})

	s.flush = true
	s.straight = true
	for i := 1; i < len(s.cards); i++ {
		if s.cards[i].Suit != s.cards[0].Suit {
			s.flush = false
		}
		if s.cards[i].Rank != s.cards[i-1].Rank+1 {
			s.straight = false
		}
	}

	s.counts = make(map[catalog.Rank]int, len(s.cards))
	for _, c := range s.cards {
		s.counts[c.Rank]++
		s.maxGroup = max(s.maxGroup, s.counts[c.Rank])
	}
	return s
}

// withCount returns, in sorted order, the cards whose rank occurs exactly n times.
func (s *shape) withCount(n int) []catalog.Card {
	var out []catalog.Card
	for _, c := range s.cards {
		if s.counts[c.Rank] == n {
			out = append(out, c)
		}
	}
	return out
}

// pairRanks counts the distinct ranks that occur exactly twice.
func (s *shape) pairRanks() int {
	n := 0
	for _, count := range s.counts {
		if count == 2 {
			n++
		}
	}
	return n
}

// Classify returns every pattern a 5-card subset can be played as. A single
// subset usually yields several overlapping candidates; it always yields one
// HighCard per card.
func Classify(subset Subset, cat Lookup) []Candidate {
	s := analyze(subset, cat)
	all := s.cards[:]
	var out []Candidate

	switch {
	case s.flush && s.straight:
		if s.cards[0].Rank == catalog.Ten {
			out = append(out, newCandidate(RoyalFlush, all...))
		} else {
			out = append(out, newCandidate(StraightFlush, all...))
		}
	case s.flush:
		out = append(out, newCandidate(Flush, all...))
	}

	switch s.maxGroup {
	case 4:
		quad := s.withCount(4)
		out = append(out,
			newCandidate(FourOfAKind, quad...),
			newCandidate(ThreeOfAKind, quad[:3]...),
			newCandidate(Pair, quad[:2]...),
		)
	case 3:
		trips := s.withCount(3)
		if pair := s.withCount(2); len(pair) == 2 {
			out = append(out,
				newCandidate(FullHouse, all...),
				newCandidate(ThreeOfAKind, trips...),
				newCandidate(Pair, pair...),
			)
		} else {
			// Any two cards of a triple can be played as a pair.
			out = append(out,
				newCandidate(ThreeOfAKind, trips...),
				newCandidate(Pair, trips[0], trips[1]),
				newCandidate(Pair, trips[1], trips[2]),
				newCandidate(Pair, trips[0], trips[2]),
			)
		}
	}

	if s.straight && !s.flush {
		out = append(out, newCandidate(Straight, all...))
	}

	if s.maxGroup == 2 {
		pairs := s.withCount(2)
		if s.pairRanks() == 2 {
			out = append(out, newCandidate(TwoPair, pairs...))
		} else {
			out = append(out, newCandidate(Pair, pairs...))
		}
	}

	for _, c := range all {
		out = append(out, newCandidate(HighCard, c))
	}
	return out
}
