package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidCard is returned when card text cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// Parse converts card text such as "10H", "TH", "qd" or "As" into a catalog index.
func (c *Catalog) Parse(s string) (Index, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return NoCard, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rankText, suitChar := s[:len(s)-1], s[len(s)-1]

	rank, err := ParseRank(rankText)
	if err != nil {
		return NoCard, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}

	suit, err := parseSuit(suitChar)
	if err != nil {
		return NoCard, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}

	idx, _ := c.IndexOf(rank, suit)
	return idx, nil
}

// ParseList parses a whitespace or comma separated list of cards
func (c *Catalog) ParseList(s string) ([]Index, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	out := make([]Index, 0, len(fields))
	for pos, f := range fields {
		idx, err := c.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", pos+1, err)
		}
		out = append(out, idx)
	}
	return out, nil
}

// MustParseList parses cards and panics on error (for tests)
func (c *Catalog) MustParseList(s string) []Index {
	out, err := c.ParseList(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return out
}

// ParseRank converts rank text ("2"-"10", "T", "J", "Q", "K", "A") to a Rank.
func ParseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "2", "3", "4", "5", "6", "7", "8", "9":
		return Rank(s[0] - '0'), nil
	case "10", "T":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	default:
		return 0, fmt.Errorf("unknown rank %q", s)
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'H':
		return Hearts, nil
	case 'D':
		return Diamonds, nil
	case 'C':
		return Clubs, nil
	case 'S':
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit %q", c)
	}
}
