package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/handscore/internal/catalog"
	"github.com/lox/handscore/internal/scoring"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// RenderOptions controls the text view
type RenderOptions struct {
	// Symbols prints suits as ♥♦♣♠ instead of letters.
	Symbols bool
	// HideEmpty skips labels with no candidates.
	HideEmpty bool
}

// Render writes the hand followed by one table per label.
func Render(w io.Writer, cat *catalog.Catalog, hand scoring.Hand, scored []scoring.Scored, opts RenderOptions) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n\n", headerStyle.Render("hand"), handStyle.Render(formatCards(cat, hand, opts.Symbols))); err != nil {
		return err
	}

	for _, g := range GroupByLabel(scored) {
		if len(g.Entries) == 0 {
			if opts.HideEmpty {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s %s\n\n", labelStyle.Render(g.Label.String()), emptyStyle.Render("(none)")); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "%s\n", labelStyle.Render(g.Label.String())); err != nil {
			return err
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			headerStyle.Render("cards"),
			headerStyle.Render("chips"),
			headerStyle.Render("base"),
			headerStyle.Render("mult"),
			headerStyle.Render("score"))
		for _, s := range g.Entries {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n",
				formatCards(cat, s.Cards, opts.Symbols),
				s.Chips, s.Base, s.Mult,
				scoreStyle.Render(fmt.Sprintf("%d", s.Score)))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if best, ok := scoring.Best(scored); ok {
		_, err := fmt.Fprintf(w, "%d candidates, best %s %s scoring %s\n",
			len(scored),
			best.Label,
			formatCards(cat, best.Cards, opts.Symbols),
			scoreStyle.Render(fmt.Sprintf("%d", best.Score)))
		return err
	}
	return nil
}

// RenderTable writes the label scoring table.
func RenderTable(w io.Writer, table scoring.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("base"),
		headerStyle.Render("mult"))
	for _, l := range scoring.Labels {
		base, mult := table.Lookup(l)
		fmt.Fprintf(tw, "%s\t%d\t%d\n", labelStyle.Render(l.String()), base, mult)
	}
	return tw.Flush()
}

func formatCards(cat *catalog.Catalog, cards []catalog.Index, symbols bool) string {
	parts := make([]string, 0, len(cards))
	for _, idx := range cards {
		if !idx.Valid() {
			parts = append(parts, "-")
			continue
		}
		card := cat.Card(idx)
		if symbols {
			parts = append(parts, card.Pretty())
		} else {
			parts = append(parts, card.String())
		}
	}
	return strings.Join(parts, " ")
}
