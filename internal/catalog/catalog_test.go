package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrder(t *testing.T) {
	t.Parallel()
	cat := Build()
	require.Equal(t, DeckSize, cat.Len())

	tests := []struct {
		index Index
		text  string
		chips int
	}{
		{0, "2H", 2},
		{8, "10H", 10},
		{9, "JH", 10},
		{12, "AH", 11},
		{13, "2D", 2},
		{26, "2C", 2},
		{39, "2S", 2},
		{51, "AS", 11},
	}

	for _, tt := range tests {
		card := cat.Card(tt.index)
		assert.Equal(t, tt.index, card.Index)
		assert.Equal(t, tt.text, card.String())
		assert.Equal(t, tt.chips, card.Chips)
	}
}

func TestBuildIsComplete(t *testing.T) {
	t.Parallel()
	cat := Build()

	seen := make(map[string]bool)
	for i, card := range cat.Cards() {
		assert.Equal(t, Index(i), card.Index)
		assert.False(t, seen[card.String()], "duplicate card %s", card)
		seen[card.String()] = true

		idx, ok := cat.IndexOf(card.Rank, card.Suit)
		require.True(t, ok)
		assert.Equal(t, card.Index, idx)
	}
	assert.Len(t, seen, DeckSize)
}

func TestRankChips(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 2, Two.Chips())
	assert.Equal(t, 9, Nine.Chips())
	assert.Equal(t, 10, Ten.Chips())
	assert.Equal(t, 10, Jack.Chips())
	assert.Equal(t, 10, Queen.Chips())
	assert.Equal(t, 10, King.Chips())
	assert.Equal(t, 11, Ace.Chips())
	assert.Equal(t, 0, Rank(1).Chips())
}

func TestChipsForNoCard(t *testing.T) {
	t.Parallel()
	cat := Build()
	assert.Equal(t, 0, cat.Chips(NoCard))
	assert.False(t, NoCard.Valid())
	assert.Panics(t, func() { cat.Card(NoCard) })
}

func TestParse(t *testing.T) {
	t.Parallel()
	cat := Build()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "ten as digits", input: "10H", want: "10H"},
		{name: "ten as T", input: "TH", want: "10H"},
		{name: "lower case", input: "qd", want: "QD"},
		{name: "ace of spades", input: "AS", want: "AS"},
		{name: "two of clubs", input: "2c", want: "2C"},
		{name: "padded", input: " kS ", want: "KS"},
		{name: "invalid rank", input: "XS", wantErr: true},
		{name: "invalid suit", input: "AX", wantErr: true},
		{name: "one is not a rank", input: "1H", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := cat.Parse(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCard)
				assert.Equal(t, NoCard, idx)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cat.Card(idx).String())
		})
	}
}

func TestParseList(t *testing.T) {
	t.Parallel()
	cat := Build()

	got, err := cat.ParseList("10H JH, QH\tKH AH")
	require.NoError(t, err)
	assert.Equal(t, []Index{8, 9, 10, 11, 12}, got)
	assert.Equal(t, "10H JH QH KH AH", cat.Format(got))

	_, err = cat.ParseList("10H ZZ")
	require.ErrorIs(t, err, ErrInvalidCard)
	assert.Contains(t, err.Error(), "card 2")

	empty, err := cat.ParseList("")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMustParseList(t *testing.T) {
	t.Parallel()
	cat := Build()
	assert.Equal(t, []Index{0, 51}, cat.MustParseList("2H AS"))
	assert.Panics(t, func() { cat.MustParseList("invalid") })
}

func TestFormatMarksMissingSlots(t *testing.T) {
	t.Parallel()
	cat := Build()
	assert.Equal(t, "2H - AS", cat.Format([]Index{0, NoCard, 51}))
}

func TestPretty(t *testing.T) {
	t.Parallel()
	cat := Build()
	assert.Equal(t, "10♥", cat.Card(8).Pretty())
	assert.Equal(t, "A♠", cat.Card(51).Pretty())
	assert.True(t, cat.Card(8).Suit.IsRed())
	assert.True(t, cat.Card(9).IsFaceCard())
}

func TestParseRank(t *testing.T) {
	t.Parallel()
	for text, want := range map[string]Rank{"2": Two, "9": Nine, "10": Ten, "t": Ten, "j": Jack, "Q": Queen, "K": King, "a": Ace} {
		got, err := ParseRank(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got, text)
	}
	_, err := ParseRank("11")
	assert.Error(t, err)
}
