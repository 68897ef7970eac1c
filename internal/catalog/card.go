package catalog

import "fmt"

// Suit represents a card suit
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists the suits in catalog order.
var Suits = [4]Suit{Hearts, Diamonds, Clubs, Spades}

// String returns the single-letter suit code used in card text (e.g. "H")
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Symbol returns the unicode suit symbol
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank is the rank value of a card, 2 through 14 with aces high.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the rank as it appears in card text
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Chips returns the chip value printed on a card of this rank.
// Number cards are worth their face value, J/Q/K are worth 10 and the ace 11.
func (r Rank) Chips() int {
	switch {
	case r == Ace:
		return 11
	case r >= Jack && r <= King:
		return 10
	case r >= Two && r <= Ten:
		return int(r)
	default:
		return 0
	}
}

// Index is a card's stable position in the catalog.
type Index int

// NoCard marks an empty card slot. It never collides with a real index.
const NoCard Index = -1

// Valid reports whether i addresses a card in a standard catalog.
func (i Index) Valid() bool {
	return i >= 0 && i < DeckSize
}

// Card is an immutable catalog entry.
type Card struct {
	Index Index
	Rank  Rank
	Suit  Suit
	Chips int
}

// String returns the card text, e.g. "10H" or "AS"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Pretty returns the card with its suit symbol, e.g. "10♥"
func (c Card) Pretty() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// IsFaceCard returns true if the card is a face card (J, Q, K)
func (c Card) IsFaceCard() bool {
	return c.Rank >= Jack && c.Rank <= King
}
