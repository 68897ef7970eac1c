// Package catalog provides the fixed 52-card table every other package refers
// to by index.
//
// Index order is load-bearing: suits run Hearts, Diamonds, Clubs, Spades and
// within a suit ranks run 2 through 10 then J, Q, K, A. Index 0 is 2H and
// index 51 is AS.
package catalog

import "fmt"

// DeckSize is the number of cards in a standard catalog.
const DeckSize = 52

// Catalog is a read-only card table. It is safe for concurrent use.
type Catalog struct {
	cards [DeckSize]Card
}

// Build returns the standard 52-card catalog.
func Build() *Catalog {
	c := &Catalog{}
	i := 0
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			c.cards[i] = Card{
				Index: Index(i),
				Rank:  rank,
				Suit:  suit,
				Chips: rank.Chips(),
			}
			i++
		}
	}
	return c
}

// Len returns the number of cards in the catalog
func (c *Catalog) Len() int {
	return len(c.cards)
}

// Card returns the card at index i. It panics if i is out of range, so
// callers holding untrusted indices should check Index.Valid first.
func (c *Catalog) Card(i Index) Card {
	if !i.Valid() {
		panic(fmt.Sprintf("catalog: index %d out of range", i))
	}
	return c.cards[i]
}

// Chips returns the chip value of the card at index i, or 0 for NoCard.
func (c *Catalog) Chips(i Index) int {
	if !i.Valid() {
		return 0
	}
	return c.cards[i].Chips
}

// Cards returns a copy of every card in index order
func (c *Catalog) Cards() []Card {
	out := make([]Card, len(c.cards))
	copy(out, c.cards[:])
	return out
}

// IndexOf returns the index of the card with the given rank and suit.
func (c *Catalog) IndexOf(rank Rank, suit Suit) (Index, bool) {
	if rank < Two || rank > Ace || suit > Spades {
		return NoCard, false
	}
	return Index(int(suit)*13 + int(rank-Two)), true
}

// Format renders the given indices as space separated card text.
func (c *Catalog) Format(indices []Index) string {
	var out []byte
	for n, i := range indices {
		if n > 0 {
			out = append(out, ' ')
		}
		if !i.Valid() {
			out = append(out, '-')
			continue
		}
		out = append(out, c.cards[i].String()...)
	}
	return string(out)
}
