package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handscore/internal/catalog"
	"github.com/lox/handscore/internal/report"
	"github.com/lox/handscore/internal/sampler"
	"github.com/lox/handscore/internal/scoring"
)

func noConfig(t *testing.T) CommonFlags {
	t.Helper()
	return CommonFlags{Config: filepath.Join(t.TempDir(), "missing.hcl")}
}

func TestParseGroups(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []sampler.Group
		hasError bool
	}{
		{name: "none", input: nil, expected: []sampler.Group{}},
		{
			name:     "twos and threes",
			input:    []string{"2=2", "3=3"},
			expected: []sampler.Group{{Rank: catalog.Two, Count: 2}, {Rank: catalog.Three, Count: 3}},
		},
		{name: "face rank", input: []string{"k = 4"}, expected: []sampler.Group{{Rank: catalog.King, Count: 4}}},
		{name: "missing count", input: []string{"2"}, hasError: true},
		{name: "bad rank", input: []string{"X=1"}, hasError: true},
		{name: "bad count", input: []string{"2=two"}, hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups, err := parseGroups(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, groups)
		})
	}
}

func TestCLIParsesEvaluate(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)

	_, err = parser.Parse([]string{
		"evaluate", "10H", "JH", "QH", "KH", "AH", "2C", "2D", "3S",
		"--format", "toml", "-w", "4", "--hide-empty", "-c", "custom.hcl",
	})
	require.NoError(t, err)
	assert.Len(t, cli.Evaluate.Cards, 8)
	assert.Equal(t, "toml", cli.Evaluate.Format)
	assert.Equal(t, 4, cli.Evaluate.Workers)
	assert.True(t, cli.Evaluate.HideEmpty)
	assert.Equal(t, "custom.hcl", cli.Evaluate.Config)
}

func TestCLIParsesSimulate(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)

	_, err = parser.Parse([]string{"simulate", "-n", "20", "--seed", "9", "-g", "2=2"})
	require.NoError(t, err)
	assert.Equal(t, 20, cli.Simulate.Hands)
	require.NotNil(t, cli.Simulate.Seed)
	assert.Equal(t, int64(9), *cli.Simulate.Seed)
	assert.Equal(t, []string{"2=2"}, cli.Simulate.Group)
}

func TestEvaluateText(t *testing.T) {
	var out bytes.Buffer
	cmd := &EvaluateCmd{
		CommonFlags: noConfig(t),
		Cards:       []string{"10H JH QH KH AH", "2C", "2D", "3S"},
		Workers:     2,
		out:         &out,
	}
	require.NoError(t, cmd.Run())

	assert.Contains(t, out.String(), "Royal Flush")
	assert.Contains(t, out.String(), "1208")
}

func TestEvaluateTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hand.toml")
	seed := int64(11)
	cmd := &EvaluateCmd{
		CommonFlags: noConfig(t),
		Seed:        &seed,
		Group:       []string{"7=4"},
		Format:      "toml",
		Output:      path,
	}
	require.NoError(t, cmd.Run())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	doc, err := report.DecodeTOML(f)
	require.NoError(t, err)
	require.NotNil(t, doc.Seed)
	assert.Equal(t, seed, *doc.Seed)
	assert.Len(t, doc.Hand, scoring.HandSize)
	assert.Equal(t, []string{"7H", "7D", "7C", "7S"}, sortedSevens(doc.Hand[:4]))

	quads := 0
	for _, row := range doc.Candidates {
		if row.Label == scoring.FourOfAKind {
			quads++
			assert.Equal(t, 28, row.Chips)
		}
	}
	assert.Equal(t, 1, quads)
}

func sortedSevens(cards []string) []string {
	order := map[string]int{"7H": 0, "7D": 1, "7C": 2, "7S": 3}
	out := make([]string, 4)
	for _, c := range cards {
		if i, ok := order[c]; ok {
			out[i] = c
		}
	}
	return out
}

func TestEvaluateUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "handscore.hcl")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
evaluate {
  format = "toml"
}
`), 0o644))

	var out bytes.Buffer
	cmd := &EvaluateCmd{
		CommonFlags: CommonFlags{Config: cfgPath},
		Cards:       []string{"5H", "5D", "5C", "9S", "9H", "2C", "3D", "KS"},
		out:         &out,
	}
	require.NoError(t, cmd.Run())

	doc, err := report.DecodeTOML(&out)
	require.NoError(t, err)
	require.NotNil(t, doc.Best)
	assert.Equal(t, scoring.FullHouse, doc.Best.Label)
	assert.Equal(t, 292, doc.Best.Score)
	assert.Nil(t, doc.Seed)
}

func TestEvaluateErrors(t *testing.T) {
	seed := int64(1)
	tests := []struct {
		name string
		cmd  EvaluateCmd
		is   error
	}{
		{name: "too few cards", cmd: EvaluateCmd{Cards: []string{"2H", "3H"}}, is: scoring.ErrInvalidHand},
		{name: "duplicate card", cmd: EvaluateCmd{Cards: []string{"2H", "2H", "3H", "4H", "5H", "6H", "7H", "8H"}}, is: scoring.ErrInvalidHand},
		{name: "unparsable card", cmd: EvaluateCmd{Cards: []string{"ZZ"}}, is: catalog.ErrInvalidCard},
		{name: "seed with explicit cards", cmd: EvaluateCmd{Cards: []string{"2H"}, Seed: &seed}},
		{name: "impossible group", cmd: EvaluateCmd{Seed: &seed, Group: []string{"2=5"}}, is: sampler.ErrInvalidConstraint},
		{name: "unknown format", cmd: EvaluateCmd{Seed: &seed, Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.cmd
			cmd.CommonFlags = noConfig(t)
			cmd.out = &bytes.Buffer{}
			err := cmd.Run()
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestSimulate(t *testing.T) {
	var out bytes.Buffer
	seed := int64(5)
	cmd := &SimulateCmd{
		CommonFlags: noConfig(t),
		Hands:       40,
		Seed:        &seed,
		Workers:     2,
		out:         &out,
	}
	require.NoError(t, cmd.Run())

	s := out.String()
	assert.Contains(t, s, "High Card")
	assert.Contains(t, s, "40 hands, ")
	assert.Contains(t, s, "seed 5")
	assert.Contains(t, s, "best ")
}

func TestTable(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&TableCmd{out: &out}).Run())
	assert.Contains(t, out.String(), "Four of a Kind")
}
