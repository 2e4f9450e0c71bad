package rewrite

import (
	"iter"

	"github.com/gitrdm/rewrite/pkg/term"
	"github.com/gitrdm/rewrite/pkg/trs"
)

// normalRewrite implements leftmost-outermost selection: a redex at the
// current node wins outright; otherwise the search descends into the first
// argument (left to right) that itself contains a redex. Modeled on
// SPEC_FULL.md §9's explicit-stack description, phrased here recursively —
// Go's call stack plays the role of the "stack of (operator, child-index,
// siblings) frames" the design note calls for.
func normalRewrite(sig term.Signature, trsv *trs.TRS, t term.Term) iter.Seq[term.Term] {
	return func(yield func(term.Term) bool) {
		if seq, found := firstMatchingRule(trsv, t); found {
			for rhs := range seq {
				if !yield(rhs) {
					return
				}
			}
			return
		}

		app, ok := t.(*term.Application)
		if !ok {
			return
		}
		for i, arg := range app.Args {
			found := false
			for rewritten := range normalRewrite(sig, trsv, arg) {
				found = true
				if !yield(withArgReplaced(app, i, rewritten)) {
					return
				}
			}
			if found {
				return
			}
		}
	}
}
