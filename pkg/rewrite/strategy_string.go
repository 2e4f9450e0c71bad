package rewrite

import (
	"iter"

	"github.com/gitrdm/rewrite/pkg/term"
	"github.com/gitrdm/rewrite/pkg/trs"
)

// binding records the segment matched for a variable position during a
// string-pattern split (SPEC_FULL.md §4.7).
type binding struct {
	v   *term.Var
	seg []term.Atom
}

func lookupBinding(bindings []binding, v *term.Var) ([]term.Atom, bool) {
	for _, b := range bindings {
		if b.v.Equal(*v) {
			return b.seg, true
		}
	}
	return nil, false
}

func segmentsEqual(a, b []term.Atom) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// matchStringPattern generates every way to split input into len(pattern)
// contiguous segments (start 0, end len(input)): operator positions must
// get a length-1 segment equal to that operator atom; variable positions
// bind on first occurrence and must reproduce an identical segment on reuse.
func matchStringPattern(pattern, input []term.Atom) [][]binding {
	var results [][]binding
	var rec func(pi, ii int, bindings []binding)
	rec = func(pi, ii int, bindings []binding) {
		if pi == len(pattern) {
			if ii == len(input) {
				results = append(results, append([]binding(nil), bindings...))
			}
			return
		}
		atom := pattern[pi]
		if v, isVar := atom.Variable(); isVar {
			if existing, ok := lookupBinding(bindings, v); ok {
				L := len(existing)
				if ii+L <= len(input) && segmentsEqual(existing, input[ii:ii+L]) {
					rec(pi+1, ii+L, bindings)
				}
				return
			}
			for L := 0; ii+L <= len(input); L++ {
				rec(pi+1, ii+L, append(bindings, binding{v: v, seg: input[ii : ii+L]}))
			}
			return
		}
		if ii < len(input) && atom.Equal(input[ii]) {
			rec(pi+1, ii+1, bindings)
		}
	}
	rec(0, 0, nil)
	return results
}

// instantiateString substitutes bound variable atoms with their matched
// segments and concatenates the result.
func instantiateString(rhsAtoms []term.Atom, bindings []binding) []term.Atom {
	var out []term.Atom
	for _, a := range rhsAtoms {
		if v, isVar := a.Variable(); isVar {
			if seg, ok := lookupBinding(bindings, v); ok {
				out = append(out, seg...)
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// stringRewrite flattens t and every rule's LHS/RHS into atom sequences
// (ToString), splits the input against each rule's LHS pattern, and
// reassembles every RHS instantiation as a left-leaning "." tree
// (FromString). Every rewrite of every rule is yielded, in TRS order.
func stringRewrite(sig term.Signature, trsv *trs.TRS, t term.Term) iter.Seq[term.Term] {
	return func(yield func(term.Term) bool) {
		input, ok := ToString(sig, t)
		if !ok {
			return
		}
		for _, r := range trsv.Rules() {
			patternAtoms, ok := ToString(sig, r.LHS)
			if !ok {
				continue
			}
			for _, bindings := range matchStringPattern(patternAtoms, input) {
				for _, rhs := range r.RHS {
					rhsAtoms, ok := ToString(sig, rhs)
					if !ok {
						continue
					}
					instantiated := instantiateString(rhsAtoms, bindings)
					if len(instantiated) == 0 {
						continue
					}
					newTerm, ok := FromString(sig, instantiated)
					if !ok {
						continue
					}
					if !yield(newTerm) {
						return
					}
				}
			}
		}
	}
}
