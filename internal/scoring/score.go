package scoring

import "github.com/lox/handscore/internal/catalog"

// ChipLookup resolves the chip value of a card.
type ChipLookup interface {
	Chips(i catalog.Index) int
}

// Scored is a candidate with its score breakdown.
type Scored struct {
	Candidate
	Base  int
	Mult  int
	Chips int
	Score int
}

// Score computes (chips + base) * mult for each candidate.
func Score(cands []Candidate, chips ChipLookup, table Table) []Scored {
	out := make([]Scored, len(cands))
	for i, c := range cands {
		base, mult := table.Lookup(c.Label)

		sum := 0
		for _, idx := range c.Cards {
			if idx == catalog.NoCard {
				continue
			}
			sum += chips.Chips(idx)
		}

		out[i] = Scored{
			Candidate: c,
			Base:      base,
			Mult:      mult,
			Chips:     sum,
			Score:     (sum + base) * mult,
		}
	}
	return out
}

// Best returns the highest scoring entry, preferring the earliest on ties.
func Best(scored []Scored) (Scored, bool) {
	if len(scored) == 0 {
		return Scored{}, false
	}
	best := scored[0]
	for _, s := range scored[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	return best, true
}
