package main

import (
	"io"
	"os"

	"github.com/lox/handscore/internal/report"
	"github.com/lox/handscore/internal/scoring"
)

// TableCmd prints the scoring table.
type TableCmd struct {
	out io.Writer `kong:"-"`
}

func (c *TableCmd) Run() error {
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	return report.RenderTable(out, scoring.DefaultTable())
}
