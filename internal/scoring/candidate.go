package scoring

import (
	"fmt"
	"slices"

	"github.com/lox/handscore/internal/catalog"
)

// Candidate is one playable pattern found in a hand: a label and the 1-5
// cards that make it up.
type Candidate struct {
	Label Label
	Cards []catalog.Index
}

// Slots returns the cards padded to five slots with catalog.NoCard.
func (c Candidate) Slots() [SubsetSize]catalog.Index {
	slots := [SubsetSize]catalog.Index{catalog.NoCard, catalog.NoCard, catalog.NoCard, catalog.NoCard, catalog.NoCard}
	copy(slots[:], c.Cards)
	return slots
}

// Key identifies a candidate independent of card order.
type Key struct {
	Label Label
	Slots [SubsetSize]catalog.Index
}

// Key returns the order-insensitive identity of the candidate.
func (c Candidate) Key() Key {
	sorted := slices.Clone(c.Cards)
	slices.Sort(sorted)
	return Key{Label: c.Label, Slots: Candidate{Cards: sorted}.Slots()}
}

func (c Candidate) String() string {
	return fmt.Sprintf("%s %v", c.Label, c.Cards)
}

func newCandidate(label Label, cards ...catalog.Card) Candidate {
	c := Candidate{Label: label, Cards: make([]catalog.Index, len(cards))}
	for i, card := range cards {
		c.Cards[i] = card.Index
	}
	return c
}
