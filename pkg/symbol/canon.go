package symbol

import (
	"sort"
	"strconv"
	"strings"

	"github.com/strem-org/strem/pkg/spre"
)

// Canonicalize rewrites a spatial formula into its canonical form:
// double negation folded, operands of commutative-associative
// connectives flattened, sorted by fingerprint, and deduplicated.
//
// Canonicalization is purely syntactic. Formulas equal up to
// commutativity and idempotence intern to the same symbol; full
// semantic equivalence would need SAT and is deliberately out of
// scope.
func Canonicalize(f *spre.Formula) *spre.Formula {
	switch f.Op {
	case spre.OpClass:
		return f

	case spre.OpNot:
		child := Canonicalize(f.Left)
		if child.Op == spre.OpNot {
			return child.Left
		}
		return &spre.Formula{Op: spre.OpNot, Left: child}

	case spre.OpNonEmpty:
		return &spre.Formula{Op: spre.OpNonEmpty, Left: Canonicalize(f.Left)}

	case spre.OpAnd, spre.OpOr, spre.OpInter, spre.OpUnion:
		operands := flatten(f.Op, f)
		for i, op := range operands {
			operands[i] = Canonicalize(op)
		}
		sort.SliceStable(operands, func(i, j int) bool {
			return Fingerprint(operands[i]) < Fingerprint(operands[j])
		})
		operands = dedupe(operands)
		return rebuild(f.Op, operands)

	default:
		return f
	}
}

// Fingerprint returns a stable textual key for a formula. Formulas
// with equal fingerprints are structurally equal after
// canonicalization.
func Fingerprint(f *spre.Formula) string {
	var b strings.Builder
	fingerprint(f, &b)
	return b.String()
}

func fingerprint(f *spre.Formula, b *strings.Builder) {
	b.WriteString(strconv.Itoa(int(f.Op)))
	b.WriteByte('(')
	if f.Op == spre.OpClass {
		b.WriteString(f.Class)
	}
	if f.Left != nil {
		fingerprint(f.Left, b)
	}
	if f.Right != nil {
		b.WriteByte(',')
		fingerprint(f.Right, b)
	}
	b.WriteByte(')')
}

// flatten collects the operand list of an associative chain of op.
func flatten(op spre.FormulaOp, f *spre.Formula) []*spre.Formula {
	if f.Op != op {
		return []*spre.Formula{f}
	}
	return append(flatten(op, f.Left), flatten(op, f.Right)...)
}

func dedupe(operands []*spre.Formula) []*spre.Formula {
	out := operands[:1]
	for _, op := range operands[1:] {
		if Fingerprint(op) != Fingerprint(out[len(out)-1]) {
			out = append(out, op)
		}
	}
	return out
}

func rebuild(op spre.FormulaOp, operands []*spre.Formula) *spre.Formula {
	node := operands[0]
	for _, operand := range operands[1:] {
		node = &spre.Formula{Op: op, Left: node, Right: operand}
	}
	return node
}
