package spre

import (
	"fmt"
	"strings"
)

// FormulaOp distinguishes the node kinds of the inner spatial language.
//
// OpAnd/OpOr/OpNot are boolean connectives of the symbol-group top
// level; OpInter/OpUnion are the set-valued connectives that appear
// only under <nonempty>. The split mirrors the grammar: negation over
// box sets is ill-defined without a universe, so the two sublanguages
// never mix.
type FormulaOp int

const (
	OpClass FormulaOp = iota
	OpNot
	OpAnd
	OpOr
	OpNonEmpty
	OpInter
	OpUnion
)

// Formula is a node of the inner spatial language. Class is set for
// OpClass leaves; unary nodes use Left only.
type Formula struct {
	Op    FormulaOp
	Class string
	Left  *Formula
	Right *Formula
}

// String renders the formula in pattern syntax.
func (f *Formula) String() string {
	switch f.Op {
	case OpClass:
		return "[:" + f.Class + ":]"
	case OpNot:
		return "!" + f.Left.String()
	case OpAnd:
		return "(" + f.Left.String() + "&" + f.Right.String() + ")"
	case OpOr:
		return "(" + f.Left.String() + "|" + f.Right.String() + ")"
	case OpInter:
		return "(" + f.Left.String() + "&" + f.Right.String() + ")"
	case OpUnion:
		return "(" + f.Left.String() + "|" + f.Right.String() + ")"
	case OpNonEmpty:
		return "<nonempty>" + f.Left.String()
	default:
		return "<invalid>"
	}
}

// Regex is a node of the outer regular expression layer.
type Regex interface {
	fmt.Stringer
	isRegex()
}

// Symbol is a symbol group: one spatial formula acting as a single
// alphabet letter.
type Symbol struct {
	Formula *Formula
}

// Concat matches Left followed by Right.
type Concat struct {
	Left  Regex
	Right Regex
}

// Alt matches either Left or Right.
type Alt struct {
	Left  Regex
	Right Regex
}

// Star matches zero or more repetitions of Child.
type Star struct {
	Child Regex
}

// Repeat matches Min..Max repetitions of Child. Bounded is false for
// the open-ended {n,} form, in which case Max is ignored.
type Repeat struct {
	Child   Regex
	Min     int
	Max     int
	Bounded bool
}

func (*Symbol) isRegex() {}
func (*Concat) isRegex() {}
func (*Alt) isRegex()    {}
func (*Star) isRegex()   {}
func (*Repeat) isRegex() {}

func (s *Symbol) String() string {
	return "[" + s.Formula.String() + "]"
}

func (c *Concat) String() string {
	return c.Left.String() + c.Right.String()
}

func (a *Alt) String() string {
	return "(" + a.Left.String() + "|" + a.Right.String() + ")"
}

func (s *Star) String() string {
	return "(" + s.Child.String() + ")*"
}

func (r *Repeat) String() string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(r.Child.String())
	b.WriteString(")")
	if !r.Bounded {
		fmt.Fprintf(&b, "{%d,}", r.Min)
	} else if r.Min == r.Max {
		fmt.Fprintf(&b, "{%d}", r.Min)
	} else {
		fmt.Fprintf(&b, "{%d,%d}", r.Min, r.Max)
	}
	return b.String()
}
