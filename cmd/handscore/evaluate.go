package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lox/handscore/cmd/handscore/shared"
	"github.com/lox/handscore/internal/catalog"
	"github.com/lox/handscore/internal/config"
	"github.com/lox/handscore/internal/report"
	"github.com/lox/handscore/internal/sampler"
	"github.com/lox/handscore/internal/scoring"
)

// EvaluateCmd scores one hand, given on the command line or drawn at random.
type EvaluateCmd struct {
	CommonFlags `embed:""`

	Cards     []string `arg:"" optional:"" help:"Eight cards, e.g. '10H JH QH KH AH 2C 2D 3S'. Omit to draw a random hand."`
	Seed      *int64   `help:"Seed for the random hand (optional)"`
	Group     []string `short:"g" help:"Constrain the random hand as RANK=COUNT, e.g. -g 2=2 -g 3=3"`
	Format    string   `short:"f" help:"Output format: text or toml (default from config)"`
	Output    string   `short:"o" help:"Write the report to this file instead of stdout"`
	Workers   int      `short:"w" help:"Subsets classified concurrently (default from config, else one per CPU)"`
	Symbols   bool     `help:"Print suits as symbols"`
	HideEmpty bool     `name:"hide-empty" help:"Skip labels with no candidates"`

	out io.Writer `kong:"-"`
}

func (c *EvaluateCmd) Run() error {
	cfg, logger, err := c.load()
	if err != nil {
		return err
	}
	c.applyConfig(cfg.Evaluate)

	ctx, cancel := shared.SetupSignalHandlerWithLogger(logger)
	defer cancel()

	cat := catalog.Build()
	hand, seed, err := c.resolveHand(cat, cfg.Evaluate, logger)
	if err != nil {
		return err
	}

	opts := []scoring.Option{scoring.WithLogger(logger)}
	if c.Workers > 0 {
		opts = append(opts, scoring.WithWorkers(c.Workers))
	}
	scored, err := scoring.NewEvaluator(cat, opts...).Evaluate(ctx, hand)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch c.Format {
	case config.FormatText:
		err = report.Render(&buf, cat, hand, scored, report.RenderOptions{Symbols: c.Symbols, HideEmpty: c.HideEmpty})
	case config.FormatTOML:
		err = report.EncodeTOML(&buf, report.NewDocument(cat, hand, scored, seed))
	default:
		err = fmt.Errorf("unknown format %q", c.Format)
	}
	if err != nil {
		return err
	}

	if c.Output != "" {
		if err := report.WriteFileAtomic(c.Output, buf.Bytes(), 0o644); err != nil {
			return err
		}
		logger.Info().Str("file", c.Output).Int("candidates", len(scored)).Msg("Wrote report")
		return nil
	}

	out := c.out
	if out == nil {
		out = os.Stdout
	}
	_, err = out.Write(buf.Bytes())
	return err
}

// applyConfig fills flags left unset from the config file.
func (c *EvaluateCmd) applyConfig(s *config.EvaluateSettings) {
	if c.Format == "" {
		c.Format = s.Format
	}
	if c.Workers == 0 {
		c.Workers = s.Workers
	}
	c.Symbols = c.Symbols || s.Symbols
	c.HideEmpty = c.HideEmpty || s.HideEmpty
}

// resolveHand parses the given cards or draws a hand. The returned seed is
// nil for explicit hands.
func (c *EvaluateCmd) resolveHand(cat *catalog.Catalog, s *config.EvaluateSettings, logger zerolog.Logger) (scoring.Hand, *int64, error) {
	if len(c.Cards) > 0 {
		if c.Seed != nil || len(c.Group) > 0 {
			return nil, nil, fmt.Errorf("--seed and --group only apply to random hands")
		}
		idx, err := cat.ParseList(strings.Join(c.Cards, " "))
		if err != nil {
			return nil, nil, fmt.Errorf("parsing hand: %w", err)
		}
		hand := scoring.Hand(idx)
		if err := hand.Validate(); err != nil {
			return nil, nil, err
		}
		return hand, nil, nil
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		logger.Info().Int64("seed", seed).Msg("Using deterministic seed")
	} else {
		seed = time.Now().UnixNano()
		logger.Info().Int64("seed", seed).Msg("Using random seed")
	}

	groups, err := parseGroups(c.Group)
	if err != nil {
		return nil, nil, err
	}
	if len(groups) == 0 {
		if groups, err = s.SampleGroups(); err != nil {
			return nil, nil, err
		}
	}

	smp := sampler.New(seed)
	if len(groups) == 0 {
		return smp.Hand(cat), &seed, nil
	}
	hand, err := smp.Constrained(cat, groups)
	if err != nil {
		return nil, nil, err
	}
	return hand, &seed, nil
}

func parseGroups(specs []string) ([]sampler.Group, error) {
	groups := make([]sampler.Group, 0, len(specs))
	for _, spec := range specs {
		rankText, countText, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("group %q: want RANK=COUNT", spec)
		}
		rank, err := catalog.ParseRank(strings.TrimSpace(rankText))
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", spec, err)
		}
		count, err := strconv.Atoi(strings.TrimSpace(countText))
		if err != nil {
			return nil, fmt.Errorf("group %q: invalid count: %w", spec, err)
		}
		groups = append(groups, sampler.Group{Rank: rank, Count: count})
	}
	return groups, nil
}
