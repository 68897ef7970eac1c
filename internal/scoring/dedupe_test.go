package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/handscore/internal/catalog"
)

func TestDedupe(t *testing.T) {
	t.Parallel()
	in := []Candidate{
		{Label: Pair, Cards: []catalog.Index{0, 13}},
		{Label: HighCard, Cards: []catalog.Index{0}},
		{Label: Pair, Cards: []catalog.Index{13, 0}}, // same set, other order
		{Label: Pair, Cards: []catalog.Index{1, 14}}, // different pair
		{Label: HighCard, Cards: []catalog.Index{0}},
		{Label: ThreeOfAKind, Cards: []catalog.Index{0, 13}}, // same cards, other label
	}

	got := Dedupe(in)
	assert.Equal(t, []Candidate{
		{Label: Pair, Cards: []catalog.Index{0, 13}},
		{Label: HighCard, Cards: []catalog.Index{0}},
		{Label: Pair, Cards: []catalog.Index{1, 14}},
		{Label: ThreeOfAKind, Cards: []catalog.Index{0, 13}},
	}, got)
}

func TestDedupeIsIdempotent(t *testing.T) {
	t.Parallel()
	hand := mustHand(t, "2H 2D 2C 3H 3D 3C 9S KD")

	var raw []Candidate
	subsets, err := Subsets(hand)
	if !assert.NoError(t, err) {
		return
	}
	for _, s := range subsets {
		raw = append(raw, Classify(s, testCatalog)...)
	}

	once := Dedupe(raw)
	twice := Dedupe(once)
	assert.Equal(t, once, twice)
	assert.Less(t, len(once), len(raw))
}

func TestDedupeEmpty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Dedupe(nil))
}

func TestCandidateSlots(t *testing.T) {
	t.Parallel()
	c := Candidate{Label: Pair, Cards: []catalog.Index{13, 0}}
	assert.Equal(t, [SubsetSize]catalog.Index{13, 0, catalog.NoCard, catalog.NoCard, catalog.NoCard}, c.Slots())
	assert.Equal(t, Key{Label: Pair, Slots: [SubsetSize]catalog.Index{0, 13, catalog.NoCard, catalog.NoCard, catalog.NoCard}}, c.Key())

	// Key must not reorder the stored cards.
	assert.Equal(t, []catalog.Index{13, 0}, c.Cards)
}
