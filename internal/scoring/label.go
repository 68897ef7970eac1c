package scoring

import (
	"fmt"
	"strings"
)

// Label names a playable hand pattern.
type Label uint8

const (
	HighCard Label = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Labels lists every known label from weakest to strongest.
var Labels = []Label{
	HighCard, Pair, TwoPair, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
}

// String returns the display name of a label
func (l Label) String() string {
	switch l {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return fmt.Sprintf("Label(%d)", uint8(l))
	}
}

// ParseLabel accepts a display name ("Three of a Kind") or its compact form
// ("ThreeOfAKind"), case-insensitively.
func ParseLabel(s string) (Label, error) {
	key := normalizeLabel(s)
	for _, l := range Labels {
		if normalizeLabel(l.String()) == key {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown hand label %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Label) UnmarshalText(text []byte) error {
	parsed, err := ParseLabel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func normalizeLabel(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "_", "")
}
