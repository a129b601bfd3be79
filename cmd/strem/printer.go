package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/strem-org/strem/pkg/matcher"
)

// printer writes one line per match: FILE:START-END, with the interval
// half-open. Colors are enabled only on a terminal, grep-style.
type printer struct {
	out      io.Writer
	file     *color.Color
	sep      *color.Color
	interval *color.Color
}

func newPrinter(out io.Writer) *printer {
	p := &printer{
		out:      out,
		file:     color.New(color.FgMagenta),
		sep:      color.New(color.FgCyan),
		interval: color.New(color.Bold),
	}

	if !isTerminal(out) {
		p.file.DisableColor()
		p.sep.DisableColor()
		p.interval.DisableColor()
	}

	return p
}

func (p *printer) match(stream string, m matcher.Interval) {
	fmt.Fprintf(p.out, "%s%s%s\n",
		p.file.Sprint(stream),
		p.sep.Sprint(":"),
		p.interval.Sprintf("%d-%d", m.Start, m.End),
	)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
