package report

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/lox/handscore/internal/catalog"
	"github.com/lox/handscore/internal/scoring"
)

// Document is the file form of one evaluated hand.
type Document struct {
	RunID      string   `toml:"run_id"`
	Seed       *int64   `toml:"seed,omitempty"`
	Hand       []string `toml:"hand"`
	Best       *Row     `toml:"best,omitempty"`
	Candidates []Row    `toml:"candidate"`
}

// Row is one scored candidate. Slots holds the five catalog indices padded
// with -1 for unused positions.
type Row struct {
	Label scoring.Label `toml:"label"`
	Cards []string      `toml:"cards"`
	Slots []int         `toml:"slots"`
	Chips int           `toml:"chips"`
	Base  int           `toml:"base"`
	Mult  int           `toml:"mult"`
	Score int           `toml:"score"`
}

// NewDocument builds a document with a fresh run id. seed may be nil when
// the hand was given explicitly.
func NewDocument(cat *catalog.Catalog, hand scoring.Hand, scored []scoring.Scored, seed *int64) *Document {
	doc := &Document{
		RunID:      uuid.NewString(),
		Seed:       seed,
		Hand:       cardStrings(cat, hand),
		Candidates: make([]Row, len(scored)),
	}
	for i, s := range scored {
		doc.Candidates[i] = newRow(cat, s)
	}
	if best, ok := scoring.Best(scored); ok {
		row := newRow(cat, best)
		doc.Best = &row
	}
	return doc
}

func newRow(cat *catalog.Catalog, s scoring.Scored) Row {
	slots := s.Slots()
	row := Row{
		Label: s.Label,
		Cards: cardStrings(cat, s.Cards),
		Slots: make([]int, len(slots)),
		Chips: s.Chips,
		Base:  s.Base,
		Mult:  s.Mult,
		Score: s.Score,
	}
	for i, idx := range slots {
		row.Slots[i] = int(idx)
	}
	return row
}

func cardStrings(cat *catalog.Catalog, cards []catalog.Index) []string {
	out := make([]string, len(cards))
	for i, idx := range cards {
		out[i] = cat.Card(idx).String()
	}
	return out
}

// EncodeTOML writes the document to w.
func EncodeTOML(w io.Writer, doc *Document) error {
	if doc == nil {
		return fmt.Errorf("report: document is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(doc)
}

// DecodeTOML reads a document written by EncodeTOML.
func DecodeTOML(r io.Reader) (*Document, error) {
	var doc Document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("report: decoding document: %w", err)
	}
	return &doc, nil
}
