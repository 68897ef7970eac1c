package scoring

import (
	"context"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handscore/internal/catalog"
)

// Evaluator runs the full pipeline for a hand: enumerate subsets, classify
// them, dedupe the candidates and score what is left.
type Evaluator struct {
	catalog *catalog.Catalog
	table   Table
	workers int
	logger  zerolog.Logger
}

// Option configures an Evaluator
type Option func(*Evaluator)

// WithWorkers sets how many subsets are classified concurrently. Values
// below 1 select sequential classification.
func WithWorkers(n int) Option {
	return func(e *Evaluator) {
		e.workers = n
	}
}

// WithTable replaces the scoring table
func WithTable(t Table) Option {
	return func(e *Evaluator) {
		e.table = t
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// NewEvaluator creates an evaluator over the given catalog. By default it
// uses the fixed scoring table and one worker per CPU, capped at 8.
func NewEvaluator(cat *catalog.Catalog, opts ...Option) *Evaluator {
	e := &Evaluator{
		catalog: cat,
		table:   DefaultTable(),
		workers: min(runtime.NumCPU(), 8),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate returns every deduplicated, scored candidate for hand. Output
// order is the same for any worker count.
func (e *Evaluator) Evaluate(ctx context.Context, hand Hand) ([]Scored, error) {
	subsets, err := Subsets(hand)
	if err != nil {
		return nil, err
	}

	// One slot per subset keeps the merge in enumeration order.
	perSubset := make([][]Candidate, len(subsets))

	if e.workers <= 1 {
		for i, s := range subsets {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			perSubset[i] = Classify(s, e.catalog)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(e.workers)
		for i, s := range subsets {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				perSubset[i] = Classify(s, e.catalog)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	var raw []Candidate
	for _, cands := range perSubset {
		raw = append(raw, cands...)
	}
	cands := Dedupe(raw)
	scored := Score(cands, e.catalog, e.table)

	e.logger.Debug().
		Str("hand", e.catalog.Format(hand)).
		Int("subsets", len(subsets)).
		Int("raw_candidates", len(raw)).
		Int("candidates", len(cands)).
		Int("workers", e.workers).
		Msg("Evaluated hand")

	return scored, nil
}

// Candidates enumerates, classifies and dedupes hand without scoring.
func Candidates(hand Hand, cat Lookup) ([]Candidate, error) {
	seq, err := Enumerate(hand)
	if err != nil {
		return nil, err
	}

	var raw []Candidate
	for _, s := range seq {
		raw = append(raw, Classify(s, cat)...)
	}
	return Dedupe(raw), nil
}

// EvaluateHand runs the pipeline sequentially with the fixed scoring table.
func EvaluateHand(hand Hand, cat *catalog.Catalog) ([]Scored, error) {
	cands, err := Candidates(hand, cat)
	if err != nil {
		return nil, err
	}
	return Score(cands, cat, DefaultTable()), nil
}
