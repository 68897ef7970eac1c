package scoring

import (
	"errors"
	"fmt"
	"iter"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/lox/handscore/internal/catalog"
)

const (
	// HandSize is the number of cards in an evaluated hand.
	HandSize = 8
	// SubsetSize is the number of cards in each classified subset.
	SubsetSize = 5
	// SubsetCount is C(HandSize, SubsetSize).
	SubsetCount = 56
)

// ErrInvalidHand is returned when a hand is not exactly 8 distinct cards.
var ErrInvalidHand = errors.New("invalid hand")

// Hand is an 8-card selection of catalog indices.
type Hand []catalog.Index

// Subset is a 5-card combination drawn from a Hand.
type Subset [SubsetSize]catalog.Index

// Validate checks that the hand holds exactly 8 distinct catalog cards.
func (h Hand) Validate() error {
	if len(h) != HandSize {
		return fmt.Errorf("%w: need %d cards, got %d", ErrInvalidHand, HandSize, len(h))
	}

	var seen [catalog.DeckSize]bool
	for pos, idx := range h {
		if !idx.Valid() {
			return fmt.Errorf("%w: card %d has index %d outside the catalog", ErrInvalidHand, pos+1, idx)
		}
		if seen[idx] {
			return fmt.Errorf("%w: duplicate card index %d", ErrInvalidHand, idx)
		}
		seen[idx] = true
	}
	return nil
}

// Enumerate returns the 56 five-card subsets of hand in lexicographic order
// over the hand's input order. The sequence yields each subset with its
// position. The hand is validated before anything is yielded.
func Enumerate(hand Hand) (iter.Seq2[int, Subset], error) {
	if err := hand.Validate(); err != nil {
		return nil, err
	}

	cards := make(Hand, len(hand))
	copy(cards, hand)

	return func(yield func(int, Subset) bool) {
		gen := combin.NewCombinationGenerator(HandSize, SubsetSize)
		positions := make([]int, SubsetSize)

		for n := 0; gen.Next(); n++ {
			gen.Combination(positions)

			var s Subset
			for i, p := range positions {
				s[i] = cards[p]
			}
			if !yield(n, s) {
				return
			}
		}
	}, nil
}

// Subsets collects the output of Enumerate into a slice.
func Subsets(hand Hand) ([]Subset, error) {
	seq, err := Enumerate(hand)
	if err != nil {
		return nil, err
	}

	out := make([]Subset, 0, SubsetCount)
	for _, s := range seq {
		out = append(out, s)
	}
	return out, nil
}
