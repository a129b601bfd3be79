package automaton

import (
	"strconv"
	"strings"
	"sync"
)

// Dead is the sink state: no suffix from here can ever match.
const Dead = -1

// DefaultDFAThreshold bounds the number of determinized states built
// eagerly at compile time. Beyond it, the NFA is retained and subsets
// are materialized on demand.
const DefaultDFAThreshold = 65536

// Config tunes automaton construction.
type Config struct {
	// DFAThreshold caps eager determinization; 0 uses the default.
	DFAThreshold int
}

// DFA is the determinized automaton over symbol ids. States are dense
// integers; transitions are materialized either eagerly (small
// automata) or lazily under a lock. Either way the transition
// function, and therefore the match set, is identical.
type DFA struct {
	nfa      *NFA
	alphabet int

	mu     sync.Mutex
	subset [][]int        // dense id -> NFA state subset
	ids    map[string]int // subset key -> dense id
	trans  [][]int        // dense id -> per-symbol successor (lazily filled, noTrans when unset)
	accept []bool
	start  int
}

const noTrans = -2 // transition not yet materialized

// Compile builds the automaton for expr over an alphabet of the given
// size.
func Compile(expr Expr, alphabet int, cfg Config) *DFA {
	threshold := cfg.DFAThreshold
	if threshold <= 0 {
		threshold = DefaultDFAThreshold
	}

	d := &DFA{
		nfa:      BuildNFA(expr),
		alphabet: alphabet,
		ids:      make(map[string]int),
	}
	d.start = d.intern(d.nfa.closure([]int{d.nfa.start}))

	// Eager determinization while the subset space stays small.
	for frontier := 0; frontier < len(d.subset) && len(d.subset) <= threshold; frontier++ {
		for sym := 0; sym < alphabet; sym++ {
			d.step(frontier, Symbol(sym))
		}
	}

	return d
}

// Start returns the initial state.
func (d *DFA) Start() int {
	return d.start
}

// Accepting reports whether state is a match state.
func (d *DFA) Accepting(state int) bool {
	if state == Dead {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.accept[state]
}

// Step consumes one symbol, returning the successor state or Dead.
func (d *DFA) Step(state int, sym Symbol) int {
	if state == Dead || int(sym) >= d.alphabet || sym < 0 {
		return Dead
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.step(state, sym)
}

// Len reports the number of determinized states materialized so far.
func (d *DFA) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subset)
}

// step materializes the transition if needed. Callers hold d.mu except
// during eager construction, which is single-threaded.
func (d *DFA) step(state int, sym Symbol) int {
	if next := d.trans[state][sym]; next != noTrans {
		return next
	}

	moved := d.nfa.move(d.subset[state], sym)
	if len(moved) == 0 {
		d.trans[state][sym] = Dead
		return Dead
	}

	next := d.intern(d.nfa.closure(moved))
	d.trans[state][sym] = next
	return next
}

// intern maps an NFA subset to its dense id, allocating on first
// sight.
func (d *DFA) intern(subset []int) int {
	key := subsetKey(subset)
	if id, ok := d.ids[key]; ok {
		return id
	}

	id := len(d.subset)
	d.ids[key] = id
	d.subset = append(d.subset, subset)
	d.accept = append(d.accept, d.nfa.accepting(subset))

	row := make([]int, d.alphabet)
	for i := range row {
		row[i] = noTrans
	}
	d.trans = append(d.trans, row)

	return id
}

func subsetKey(subset []int) string {
	var b strings.Builder
	for i, s := range subset {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(s))
	}
	return b.String()
}
