package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lox/handscore/cmd/handscore/shared"
	"github.com/lox/handscore/internal/catalog"
	"github.com/lox/handscore/internal/simulate"
)

// SimulateCmd evaluates a batch of random hands.
type SimulateCmd struct {
	CommonFlags `embed:""`

	Hands   int      `short:"n" help:"Number of hands to evaluate (default from config)"`
	Seed    *int64   `help:"Base seed for the run (default from config, else random)"`
	Workers int      `short:"w" help:"Hands evaluated concurrently (default one per CPU)"`
	Group   []string `short:"g" help:"Constrain every hand as RANK=COUNT, e.g. -g 2=2 -g 3=3"`

	out io.Writer `kong:"-"`
}

func (c *SimulateCmd) Run() error {
	cfg, logger, err := c.load()
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandlerWithLogger(logger)
	defer cancel()

	opts := simulate.Options{
		Hands:   cfg.Simulate.Hands,
		Seed:    cfg.Simulate.Seed,
		Workers: cfg.Simulate.Workers,
		Logger:  logger,
	}
	if c.Hands > 0 {
		opts.Hands = c.Hands
	}
	if c.Workers > 0 {
		opts.Workers = c.Workers
	}
	switch {
	case c.Seed != nil:
		opts.Seed = *c.Seed
	case opts.Seed == 0:
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Groups, err = parseGroups(c.Group); err != nil {
		return err
	}
	if len(opts.Groups) == 0 {
		if opts.Groups, err = cfg.Evaluate.SampleGroups(); err != nil {
			return err
		}
	}

	logger.Info().
		Int("hands", opts.Hands).
		Int64("seed", opts.Seed).
		Int("workers", opts.Workers).
		Msg("Starting simulation")

	cat := catalog.Build()
	summary, err := simulate.Run(ctx, cat, opts)
	if err != nil {
		return err
	}

	out := c.out
	if out == nil {
		out = os.Stdout
	}
	return writeSummary(out, cat, summary)
}

func writeSummary(w io.Writer, cat *catalog.Catalog, s *simulate.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "hand\thands\trate\tcandidates\tmean\tstddev\tmax\n")
	for _, ls := range s.Labels {
		fmt.Fprintf(tw, "%s\t%d\t%.1f%%\t%d\t%.1f\t%.1f\t%d\n",
			ls.Label, ls.Hands, ls.HandRate(s.Hands)*100, ls.Candidates,
			ls.MeanScore(), ls.StdDev(), ls.MaxScore)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d hands, %d candidates, seed %d\n", s.Hands, s.Candidates, s.Seed)
	if s.Best != nil {
		fmt.Fprintf(w, "best %s %s scoring %d in hand %d (%s, seed %d)\n",
			s.Best.Scored.Label,
			cat.Format(s.Best.Scored.Cards),
			s.Best.Scored.Score,
			s.Best.Index+1,
			cat.Format(s.Best.Hand),
			s.Best.Seed)
	}
	_, err := fmt.Fprintf(w, "%d hands in %v\n", s.Hands, s.Elapsed.Truncate(time.Millisecond))
	return err
}
