package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/handscore/internal/catalog"
)

var testCatalog = catalog.Build()

func mustHand(t *testing.T, cards string) Hand {
	t.Helper()
	idx, err := testCatalog.ParseList(cards)
	require.NoError(t, err)
	return Hand(idx)
}

func mustSubset(t *testing.T, cards string) Subset {
	t.Helper()
	idx, err := testCatalog.ParseList(cards)
	require.NoError(t, err)
	require.Len(t, idx, SubsetSize)

	var s Subset
	copy(s[:], idx)
	return s
}

func cards(t *testing.T, text string) []catalog.Index {
	t.Helper()
	return testCatalog.MustParseList(text)
}

func byLabel[T any](items []T, label Label, get func(T) Label) []T {
	var out []T
	for _, it := range items {
		if get(it) == label {
			out = append(out, it)
		}
	}
	return out
}

func candidatesWith(cands []Candidate, label Label) []Candidate {
	return byLabel(cands, label, func(c Candidate) Label { return c.Label })
}

func scoredWith(scored []Scored, label Label) []Scored {
	return byLabel(scored, label, func(s Scored) Label { return s.Label })
}
