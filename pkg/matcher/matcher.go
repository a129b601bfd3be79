// Package matcher drives perception streams through a compiled SpRE:
// every frame is abstracted into the set of satisfied symbols, the
// automaton advances one transition per satisfied symbol per active
// path, and match intervals fall out under grep semantics (leftmost,
// longest, non-overlapping).
package matcher

import (
	"io"

	"github.com/strem-org/strem/pkg/automaton"
	"github.com/strem-org/strem/pkg/datastream"
	"github.com/strem-org/strem/pkg/monitor"
	"github.com/strem-org/strem/pkg/spre"
	"github.com/strem-org/strem/pkg/symbol"
)

// Interval is a half-open frame range [Start, End) relative to stream
// position. End is always greater than Start: zero-width matches are
// never emitted.
type Interval struct {
	Start int
	End   int
}

// Pattern is a compiled SpRE: the interned symbol table plus the
// automaton over its alphabet. A Pattern is immutable and safe to
// share across concurrent streams; per-stream state lives in the
// Iterator.
type Pattern struct {
	source string
	table  *symbol.Table
	dfa    *automaton.DFA
}

// Compile parses and compiles a SpRE with default configuration.
func Compile(pattern string) (*Pattern, error) {
	return CompileConfig(pattern, automaton.Config{})
}

// CompileConfig parses and compiles a SpRE with explicit automaton
// configuration.
func CompileConfig(pattern string, cfg automaton.Config) (*Pattern, error) {
	ast, err := spre.Parse(pattern)
	if err != nil {
		return nil, err
	}

	table, expr := symbol.Compile(ast)
	return &Pattern{
		source: pattern,
		table:  table,
		dfa:    automaton.Compile(expr, table.Len(), cfg),
	}, nil
}

// Source returns the pattern text the Pattern was compiled from.
func (p *Pattern) Source() string {
	return p.source
}

// AlphabetSize reports how many distinct spatial formulas the pattern
// interned.
func (p *Pattern) AlphabetSize() int {
	return p.table.Len()
}

// Match returns a lazy iterator over the pattern's match intervals in
// the stream. Frames are pulled from src one at a time; intervals are
// yielded as soon as no earlier still-extensible candidate could
// outvote them.
func (p *Pattern) Match(src datastream.Source, opts Options) *Iterator {
	return &Iterator{
		pattern: p,
		src:     src,
		opts:    opts,
		paths:   make(map[path]struct{}),
		cands:   make(map[int]int),
	}
}

// FindAll collects every match interval in the stream.
func (p *Pattern) FindAll(src datastream.Source, opts Options) ([]Interval, error) {
	var out []Interval

	it := p.Match(src, opts)
	for {
		m, err := it.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, m)
	}
}

// path is one active automaton thread: the current state plus the
// frame position where the thread began consuming.
type path struct {
	state int
	start int
}

// Iterator streams match intervals for one stream. Not safe for
// concurrent use; create one per stream.
type Iterator struct {
	pattern *Pattern
	src     datastream.Source
	opts    Options

	paths   map[path]struct{}
	cands   map[int]int // candidate start -> best (largest) end
	pos     int
	emitted int
	pending []Interval
	done    bool
}

// Next returns the next finalized match interval, or io.EOF once the
// stream is exhausted (or MaxCount matches have been emitted).
func (it *Iterator) Next() (Interval, error) {
	for {
		if len(it.pending) > 0 {
			m := it.pending[0]
			it.pending = it.pending[1:]
			return m, nil
		}
		if it.done {
			return Interval{}, io.EOF
		}

		frame, err := it.src.Next()
		if err == io.EOF {
			it.done = true
			it.resolve(true)
			continue
		}
		if err != nil {
			it.done = true
			return Interval{}, err
		}

		it.consume(frame)
		it.resolve(false)
	}
}

// consume advances every active path by every satisfied symbol and
// spawns a fresh path at the current position.
func (it *Iterator) consume(frame *datastream.Frame) {
	k := it.pos
	it.pos++

	sample := frame.Sample(it.opts.Channel)

	var truthy []automaton.Symbol
	for id, formula := range it.pattern.table.Formulas() {
		if monitor.Evaluate(sample, formula) {
			truthy = append(truthy, automaton.Symbol(id))
		}
	}

	dfa := it.pattern.dfa
	next := make(map[path]struct{}, len(it.paths)+len(truthy))

	for pt := range it.paths {
		for _, sym := range truthy {
			if ns := dfa.Step(pt.state, sym); ns != automaton.Dead {
				next[path{state: ns, start: pt.start}] = struct{}{}
			}
		}
	}
	for _, sym := range truthy {
		if ns := dfa.Step(dfa.Start(), sym); ns != automaton.Dead {
			next[path{state: ns, start: k}] = struct{}{}
		}
	}

	it.paths = next

	for pt := range it.paths {
		if dfa.Accepting(pt.state) {
			if end, ok := it.cands[pt.start]; !ok || k+1 > end {
				it.cands[pt.start] = k + 1
			}
		}
	}
}

// resolve emits candidates under leftmost-longest, non-overlapping
// selection. A candidate is final once no active path could produce or
// extend an earlier-starting match; at end of stream every survivor
// resolves.
func (it *Iterator) resolve(eof bool) {
	for len(it.cands) > 0 {
		start, end := it.leftmostCandidate()
		if !eof && it.minAliveStart() <= start {
			return
		}

		it.pending = append(it.pending, Interval{Start: start, End: end})
		it.emitted++
		it.discardBefore(end)

		if it.opts.MaxCount > 0 && it.emitted >= it.opts.MaxCount {
			it.done = true
			it.paths = make(map[path]struct{})
			it.cands = make(map[int]int)
			return
		}
	}
}

func (it *Iterator) leftmostCandidate() (int, int) {
	start := -1
	for s := range it.cands {
		if start == -1 || s < start {
			start = s
		}
	}
	return start, it.cands[start]
}

func (it *Iterator) minAliveStart() int {
	min := int(^uint(0) >> 1)
	for pt := range it.paths {
		if pt.start < min {
			min = pt.start
		}
	}
	return min
}

// discardBefore drops candidates and paths overlapping an emitted
// match.
func (it *Iterator) discardBefore(end int) {
	for s := range it.cands {
		if s < end {
			delete(it.cands, s)
		}
	}
	for pt := range it.paths {
		if pt.start < end {
			delete(it.paths, pt)
		}
	}
}
