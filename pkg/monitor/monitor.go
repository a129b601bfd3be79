// Package monitor evaluates spatial formulas against the annotations
// of a single frame sample.
//
// The symbol-group top level is boolean; under <nonempty> evaluation
// switches to set semantics over bounding boxes, and truth is
// non-emptiness of the resulting box set.
package monitor

import (
	"github.com/strem-org/strem/pkg/datastream"
	"github.com/strem-org/strem/pkg/geometry"
	"github.com/strem-org/strem/pkg/spre"
)

// Evaluate computes the truth of a spatial formula against one sample.
// A nil sample satisfies no class predicate.
func Evaluate(sample *datastream.Sample, f *spre.Formula) bool {
	switch f.Op {
	case spre.OpClass:
		if sample == nil {
			return false
		}
		for _, a := range sample.Annotations {
			if a.Class == f.Class {
				return true
			}
		}
		return false

	case spre.OpNot:
		return !Evaluate(sample, f.Left)

	case spre.OpAnd:
		return Evaluate(sample, f.Left) && Evaluate(sample, f.Right)

	case spre.OpOr:
		return Evaluate(sample, f.Left) || Evaluate(sample, f.Right)

	case spre.OpNonEmpty:
		return len(EvaluateSet(sample, f.Left)) > 0

	default:
		return false
	}
}

// EvaluateSet computes the box-set denotation of an s4 formula:
// classes denote their annotation boxes, intersection denotes the
// pairwise non-empty intersections, and union concatenates. Empty
// boxes never enter a denotation.
func EvaluateSet(sample *datastream.Sample, f *spre.Formula) []geometry.Box {
	switch f.Op {
	case spre.OpClass:
		if sample == nil {
			return nil
		}
		var out []geometry.Box
		for _, a := range sample.Annotations {
			if a.Class == f.Class && !a.BBox.Empty() {
				out = append(out, a.BBox)
			}
		}
		return out

	case spre.OpInter:
		left := EvaluateSet(sample, f.Left)
		if len(left) == 0 {
			return nil
		}
		right := EvaluateSet(sample, f.Right)

		var out []geometry.Box
		for _, l := range left {
			for _, r := range right {
				if b, ok := geometry.Intersect(l, r); ok {
					out = append(out, b)
				}
			}
		}
		return out

	case spre.OpUnion:
		return append(EvaluateSet(sample, f.Left), EvaluateSet(sample, f.Right)...)

	default:
		return nil
	}
}
