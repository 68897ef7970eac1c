// Package simulate evaluates many seeded random hands and aggregates what
// they offer per label.
package simulate

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handscore/internal/catalog"
	"github.com/lox/handscore/internal/sampler"
	"github.com/lox/handscore/internal/scoring"
)

// Options configures a simulation run
type Options struct {
	Hands   int
	Seed    int64
	Workers int             // defaults to one per CPU, capped at 8
	Groups  []sampler.Group // optional rank constraints for every hand
	Clock   quartz.Clock    // defaults to the real clock
	Logger  zerolog.Logger
}

// BestHand is the highest scoring candidate seen in a run
type BestHand struct {
	Index  int   // position of the hand in the run
	Seed   int64 // seed that reproduces the hand
	Hand   scoring.Hand
	Scored scoring.Scored
}

// Summary is the aggregate of a run. It is deterministic for a given seed
// apart from Elapsed.
type Summary struct {
	Hands      int
	Seed       int64
	Candidates int
	Labels     []LabelStats // one per scoring.Labels entry, same order
	Best       *BestHand
	Elapsed    time.Duration
}

// Label returns the stats for l
func (s *Summary) Label(l scoring.Label) LabelStats {
	for _, ls := range s.Labels {
		if ls.Label == l {
			return ls
		}
	}
	return LabelStats{Label: l}
}

type handResult struct {
	seed   int64
	hand   scoring.Hand
	labels map[scoring.Label]*LabelStats
	best   scoring.Scored
	count  int
}

// Run evaluates opts.Hands hands. Hand i is drawn from a sampler seeded with
// sampler.SeedFor(opts.Seed, i), so any hand can be replayed on its own.
func Run(ctx context.Context, cat *catalog.Catalog, opts Options) (*Summary, error) {
	if opts.Hands < 0 {
		return nil, fmt.Errorf("hands must not be negative, got %d", opts.Hands)
	}
	if opts.Workers <= 0 {
		opts.Workers = min(runtime.NumCPU(), 8)
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}

	start := opts.Clock.Now()
	results := make([]handResult, opts.Hands)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range results {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := runHand(cat, sampler.SeedFor(opts.Seed, i), opts.Groups)
			if err != nil {
				return fmt.Errorf("hand %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{
		Hands:  opts.Hands,
		Seed:   opts.Seed,
		Labels: make([]LabelStats, len(scoring.Labels)),
	}
	for i, l := range scoring.Labels {
		summary.Labels[i].Label = l
	}

	for i, res := range results {
		summary.Candidates += res.count
		for j := range summary.Labels {
			if ls, ok := res.labels[summary.Labels[j].Label]; ok {
				summary.Labels[j].merge(*ls)
			}
		}
		if summary.Best == nil || res.best.Score > summary.Best.Scored.Score {
			summary.Best = &BestHand{Index: i, Seed: res.seed, Hand: res.hand, Scored: res.best}
		}
	}
	summary.Elapsed = opts.Clock.Now().Sub(start)

	opts.Logger.Debug().
		Int("hands", summary.Hands).
		Int64("seed", summary.Seed).
		Int("candidates", summary.Candidates).
		Dur("elapsed", summary.Elapsed).
		Msg("Simulation complete")

	return summary, nil
}

func runHand(cat *catalog.Catalog, seed int64, groups []sampler.Group) (handResult, error) {
	s := sampler.New(seed)

	var hand scoring.Hand
	if len(groups) > 0 {
		var err error
		if hand, err = s.Constrained(cat, groups); err != nil {
			return handResult{}, err
		}
	} else {
		hand = s.Hand(cat)
	}

	scored, err := scoring.EvaluateHand(hand, cat)
	if err != nil {
		return handResult{}, err
	}

	res := handResult{
		seed:   seed,
		hand:   hand,
		labels: make(map[scoring.Label]*LabelStats),
		count:  len(scored),
	}
	for _, sc := range scored {
		ls, ok := res.labels[sc.Label]
		if !ok {
			ls = &LabelStats{Label: sc.Label, Hands: 1}
			res.labels[sc.Label] = ls
		}
		ls.add(sc.Score)
	}
	res.best, _ = scoring.Best(scored)
	return res, nil
}
