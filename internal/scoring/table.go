package scoring

// Entry is the base score and multiplier awarded for a label.
type Entry struct {
	Base int
	Mult int
}

// Table maps labels to their base score and multiplier.
type Table map[Label]Entry

// DefaultTable returns the fixed scoring table.
func DefaultTable() Table {
	return Table{
		HighCard:      {Base: 5, Mult: 1},
		Pair:          {Base: 10, Mult: 2},
		TwoPair:       {Base: 20, Mult: 2},
		ThreeOfAKind:  {Base: 30, Mult: 3},
		Straight:      {Base: 30, Mult: 4},
		Flush:         {Base: 35, Mult: 4},
		FullHouse:     {Base: 40, Mult: 4},
		FourOfAKind:   {Base: 60, Mult: 7},
		StraightFlush: {Base: 100, Mult: 8},
		RoyalFlush:    {Base: 100, Mult: 8},
	}
}

// Lookup returns the base and multiplier for a label. Labels missing from
// the table score (0, 0).
func (t Table) Lookup(l Label) (base, mult int) {
	e, ok := t[l]
	if !ok {
		return 0, 0
	}
	return e.Base, e.Mult
}
