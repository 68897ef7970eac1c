// Package report presents evaluated hands: grouped text tables for the
// terminal and TOML documents for files.
package report

import "github.com/lox/handscore/internal/scoring"

// Group holds the scored candidates sharing one label.
type Group struct {
	Label   scoring.Label
	Entries []scoring.Scored
}

// GroupByLabel buckets scored candidates by label, weakest label first.
// Every known label gets a group even when empty. Labels missing from
// scoring.Labels are appended in first-seen order. Entries keep input order.
func GroupByLabel(scored []scoring.Scored) []Group {
	groups := make([]Group, 0, len(scoring.Labels))
	pos := make(map[scoring.Label]int, len(scoring.Labels))
	for _, l := range scoring.Labels {
		pos[l] = len(groups)
		groups = append(groups, Group{Label: l})
	}

	for _, s := range scored {
		i, ok := pos[s.Label]
		if !ok {
			i = len(groups)
			pos[s.Label] = i
			groups = append(groups, Group{Label: s.Label})
		}
		groups[i].Entries = append(groups[i].Entries, s)
	}
	return groups
}
