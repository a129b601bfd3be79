// Package symbol builds the abstract alphabet bridging the two layers
// of a SpRE: each distinct inner spatial formula is canonicalized and
// interned to a dense symbol id, and the outer regex is rewritten into
// a pattern over those ids.
package symbol

import (
	"github.com/strem-org/strem/pkg/automaton"
	"github.com/strem-org/strem/pkg/spre"
)

// ID names a canonicalized spatial formula. IDs are dense and 0-based;
// they are the automaton's alphabet.
type ID = automaton.Symbol

// Table maps canonical formula fingerprints to symbol ids.
// Structurally-equal formulas share an id. A Table is immutable once
// its pattern has been compiled and safe for concurrent readers.
type Table struct {
	formulas []*spre.Formula
	ids      map[string]ID
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{ids: make(map[string]ID)}
}

// Intern canonicalizes f and returns its symbol id, allocating the
// next dense id on first sight.
func (t *Table) Intern(f *spre.Formula) ID {
	canon := Canonicalize(f)
	key := Fingerprint(canon)

	if id, ok := t.ids[key]; ok {
		return id
	}

	id := ID(len(t.formulas))
	t.ids[key] = id
	t.formulas = append(t.formulas, canon)
	return id
}

// Formula returns the canonical formula behind a symbol id.
func (t *Table) Formula(id ID) *spre.Formula {
	return t.formulas[id]
}

// Formulas returns all interned formulas in id order.
func (t *Table) Formulas() []*spre.Formula {
	return t.formulas
}

// Len reports the alphabet size.
func (t *Table) Len() int {
	return len(t.formulas)
}

// Compile walks the outer AST, interning every symbol group into the
// returned table and lowering the regex structure into an expression
// over symbol ids ready for automaton construction.
func Compile(ast spre.Regex) (*Table, automaton.Expr) {
	table := NewTable()
	expr := lower(ast, table)
	return table, expr
}

func lower(node spre.Regex, table *Table) automaton.Expr {
	switch n := node.(type) {
	case *spre.Symbol:
		return &automaton.Sym{ID: table.Intern(n.Formula)}
	case *spre.Concat:
		return &automaton.Cat{Left: lower(n.Left, table), Right: lower(n.Right, table)}
	case *spre.Alt:
		return &automaton.Or{Left: lower(n.Left, table), Right: lower(n.Right, table)}
	case *spre.Star:
		return &automaton.Star{Child: lower(n.Child, table)}
	case *spre.Repeat:
		return &automaton.Repeat{
			Child:   lower(n.Child, table),
			Min:     n.Min,
			Max:     n.Max,
			Bounded: n.Bounded,
		}
	default:
		return nil
	}
}
